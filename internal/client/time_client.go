package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/elearn-admin-gateway/internal/models"
	"github.com/go-resty/resty/v2"
)

// TimeClient talks to the time-tracking service. Records are read-only
// from the dashboard's perspective except for the per-user cascade delete.
type TimeClient struct {
	http *resty.Client
}

// NewTimeClient creates a TimeClient for the given base URL.
func NewTimeClient(baseURL string, timeout time.Duration) *TimeClient {
	return &TimeClient{http: newHTTPClient(baseURL, timeout)}
}

// ListTimeSpent fetches every time-spent record, each carrying a course id
// and a duration string.
func (c *TimeClient) ListTimeSpent(ctx context.Context, token string) ([]models.TimeSpentRecord, error) {
	const op = "list time spent"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/time-spent/")
	if err != nil {
		return nil, transportErr(op, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, statusErr(op, resp.StatusCode())
	}
	var records []models.TimeSpentRecord
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, decodeErr(op, err)
	}
	return records, nil
}

// UserTotal fetches one user's accumulated minutes.
func (c *TimeClient) UserTotal(ctx context.Context, token, userID string) (int, error) {
	const op = "user time total"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/api/time-spent/" + userID)
	if err != nil {
		return 0, transportErr(op, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return 0, statusErr(op, resp.StatusCode())
	}
	var body struct {
		TotalTimeSpent int `json:"totalTimeSpent"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return 0, decodeErr(op, err)
	}
	return body.TotalTimeSpent, nil
}

// DeleteUserTime removes a user's time-spent record. Part of the cascade
// that precedes deleting the user itself.
func (c *TimeClient) DeleteUserTime(ctx context.Context, token, userID string) error {
	const op = "delete user time"
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		Delete("/api/time-spent/" + userID)
	if err != nil {
		return transportErr(op, err)
	}
	if !resp.IsSuccess() {
		return statusErr(op, resp.StatusCode())
	}
	return nil
}
