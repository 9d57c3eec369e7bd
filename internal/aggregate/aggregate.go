package aggregate

import (
	"github.com/elearn-admin-gateway/internal/models"
)

// ByCourse reduces raw time-spent records into per-course minute totals.
// Buckets appear in first-seen order of their resolved name, and the sum of
// all bucket totals equals the sum of the parsed input durations: records
// with an unknown course id keep the raw id as their bucket name instead of
// being dropped.
func ByCourse(records []models.TimeSpentRecord) []models.CourseAggregate {
	index := make(map[string]int)
	out := make([]models.CourseAggregate, 0, len(records))

	for _, rec := range records {
		course := ResolveCourse(rec.CourseID)
		minutes := ParseDuration(rec.TimeSpent)

		i, ok := index[course.Name]
		if !ok {
			i = len(out)
			index[course.Name] = i
			out = append(out, models.CourseAggregate{
				Name:  course.Name,
				Color: course.Color,
			})
		}
		out[i].TimeSpent += minutes
	}
	return out
}

// TotalMinutes sums the bucket totals of an aggregate.
func TotalMinutes(aggs []models.CourseAggregate) int {
	total := 0
	for _, a := range aggs {
		total += a.TimeSpent
	}
	return total
}

// UserDistribution counts users per course display name. A user with no
// course lands in the Unidentified bucket; this fallback applies only to
// user records, not to time-spent records.
func UserDistribution(users []models.UserRecord) []models.CourseCount {
	index := make(map[string]int)
	out := make([]models.CourseCount, 0, len(users))

	for _, u := range users {
		name := u.Course
		if name == "" {
			name = UnidentifiedCourse
		}

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, models.CourseCount{
				Name:  name,
				Color: colorForName(name),
			})
		}
		out[i].Value++
	}
	return out
}
