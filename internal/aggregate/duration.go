package aggregate

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	hourToken   = regexp.MustCompile(`(\d+)h`)
	minuteToken = regexp.MustCompile(`(\d+)m`)
)

// ParseDuration converts a compact duration string such as "2h 15m" into
// total minutes. Either token may be absent or appear alone; a string
// matching neither parses to 0 so malformed upstream data degrades to a
// zero contribution instead of aborting aggregation.
func ParseDuration(s string) int {
	total := 0
	if m := hourToken.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m := minuteToken.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		total += v
	}
	return total
}

// FormatMinutes renders total minutes back into the "2h 15m" form shown on
// the dashboard stat cards.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
