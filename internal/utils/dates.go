package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the YYYY-MM-DD format used for deadlines and --today.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// DayNumber returns the number of days between 1970-01-01 and the calendar
// date of t in t's own location. Time of day is ignored.
func DayNumber(t time.Time) int {
	y, m, d := t.Date()
	secs := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
	day := secs / secondsPerDay
	if secs%secondsPerDay < 0 {
		day--
	}
	return int(day)
}

// Today returns the day number of the current local date.
func Today() int {
	return DayNumber(time.Now())
}

// ParseDay parses a YYYY-MM-DD date into a day number.
func ParseDay(s string) (int, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("improper date %q, want YYYY-MM-DD", s)
	}
	return DayNumber(t), nil
}

// FormatDay formats a day number as YYYY-MM-DD.
func FormatDay(day int) string {
	return time.Unix(int64(day)*secondsPerDay, 0).UTC().Format(DateLayout)
}
