package aggregate

// Course is a display name and chart color for a known course id.
type Course struct {
	Name  string
	Color string
}

// UnidentifiedCourse is the bucket for user records that carry no course.
// It is distinct from an unknown course id on a time-spent record, which
// passes through verbatim.
const UnidentifiedCourse = "Unidentified"

const (
	// defaultAggregateColor is used for time-spent buckets whose course id
	// has no catalog entry.
	defaultAggregateColor = "#8884d8"
	// defaultDistributionColor is used for user-distribution slices whose
	// course name has no catalog entry.
	defaultDistributionColor = "#94A3B8"
	unidentifiedColor        = "#F59E0B"
)

var catalog = map[string]Course{
	"C01": {Name: "Information Technology", Color: "#6366F1"},
	"C02": {Name: "Education", Color: "#EC4899"},
	"C03": {Name: "Accountancy", Color: "#10B981"},
}

// ResolveCourse maps a course id to its catalog entry. Unknown ids keep
// their raw id as the display name so no records are dropped from charts.
func ResolveCourse(courseID string) Course {
	if c, ok := catalog[courseID]; ok {
		return c
	}
	return Course{Name: courseID, Color: defaultAggregateColor}
}

// CourseIDForName maps a display name back to its course id for upstream
// writes. Names outside the catalog map to "C00".
func CourseIDForName(name string) string {
	for id, c := range catalog {
		if c.Name == name {
			return id
		}
	}
	return "C00"
}

// CourseNames lists the catalog display names, for input validation.
func CourseNames() []string {
	names := make([]string, 0, len(catalog))
	for _, c := range catalog {
		names = append(names, c.Name)
	}
	return names
}

func colorForName(name string) string {
	for _, c := range catalog {
		if c.Name == name {
			return c.Color
		}
	}
	if name == UnidentifiedCourse {
		return unidentifiedColor
	}
	return defaultDistributionColor
}
