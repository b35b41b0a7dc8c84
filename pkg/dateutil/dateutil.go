package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// acceptedLayouts lists the date formats case files and flags may use.
var acceptedLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01",
	"01/02/2006",
}

// ParseDate parses a calendar date in any of the accepted layouts.
func ParseDate(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// CalendarMonthsBetween counts whole calendar months from one date to
// another, ignoring the day of month. The result is negative when to is
// earlier than from.
func CalendarMonthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
