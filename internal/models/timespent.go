package models

// TimeSpentRecord is a reading-time record owned by the time-tracking
// service. TimeSpent is a compact duration string such as "2h 15m"; either
// token may be absent.
type TimeSpentRecord struct {
	UserID    string `json:"userId"`
	CourseID  string `json:"courseId"`
	TimeSpent string `json:"timeSpent"`
}

// CourseAggregate is a per-course total of parsed minutes, derived fresh on
// every load. It is never persisted.
type CourseAggregate struct {
	Name      string `json:"name"`
	TimeSpent int    `json:"timeSpent"`
	Color     string `json:"color"`
}

// CourseCount is the number of users enrolled in one course, for the
// distribution chart.
type CourseCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// DashboardStats is the aggregate view rendered on the dashboard landing
// page. Every total is derived from the collection fetched in the same
// request.
type DashboardStats struct {
	CourseTime   []CourseAggregate `json:"courseTime"`
	TotalMinutes int               `json:"totalMinutes"`
	TotalTime    string            `json:"totalTime"`
	TotalUsers   int               `json:"totalUsers"`
	TotalBooks   int               `json:"totalBooks"`
}
