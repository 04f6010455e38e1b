package market

import (
	"fmt"
	"strings"
	"time"
)

// SecondsPerDay is the distance between two consecutive day keys.
const SecondsPerDay int64 = 86400

// DateLayout is the calendar-day layout used by data files and the CLI.
const DateLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a UTC midnight.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

// Day truncates t to its calendar day in t's own location and returns the
// same wall date at UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayEpoch returns the day key for t.
func DayEpoch(t time.Time) int64 {
	return Day(t).Unix()
}
