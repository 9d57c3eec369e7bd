package models

import (
	"encoding/json"
)

// UserRecord is a student record owned by the user-management service.
// TotalTimeSpent is not part of the upstream payload; it is merged in from
// the time-tracking service when the record is enriched.
type UserRecord struct {
	ID             string  `json:"_id"`
	FirstName      string  `json:"firstName"`
	SecondName     string  `json:"secondName"`
	Email          string  `json:"email"`
	Course         string  `json:"course,omitempty"`
	CourseID       string  `json:"courseId,omitempty"`
	TotalTimeSpent Minutes `json:"totalTimeSpent"`
}

// Minutes is an enriched time-spent value. Unavailable marks a failed
// lookup; it renders as "N/A" so a failed lookup can never be mistaken
// for zero usage.
type Minutes struct {
	Value       int
	Unavailable bool
}

// MinutesOf returns a known time-spent value.
func MinutesOf(v int) Minutes { return Minutes{Value: v} }

// MinutesUnavailable returns the sentinel for a failed lookup.
func MinutesUnavailable() Minutes { return Minutes{Unavailable: true} }

// MarshalJSON renders the value as a number, or the string "N/A" when the
// lookup failed.
func (m Minutes) MarshalJSON() ([]byte, error) {
	if m.Unavailable {
		return json.Marshal("N/A")
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON accepts either a number or the "N/A" sentinel.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err == nil {
		*m = Minutes{Value: v}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = Minutes{Unavailable: true}
	return nil
}

// UserInput is the create/update payload accepted by the dashboard. The
// course id is resolved from the display name before the record is sent
// upstream.
type UserInput struct {
	FirstName  string `json:"firstName"`
	SecondName string `json:"secondName"`
	Email      string `json:"email"`
	Course     string `json:"course"`
	CourseID   string `json:"courseId,omitempty"`
}

// UserList is an enriched user collection together with its derived total.
// Total is always the length of the collection it accompanies, never a
// separately maintained counter.
type UserList struct {
	Users []UserRecord `json:"users"`
	Total int          `json:"total"`
}
