package utils

import (
	"fmt"
	"time"

	"github.com/daygrid/daygrid/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local wall-clock day.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// Timestamp returns the current instant as a fixed-width RFC3339 string
// suitable for lexicographic ordering.
func Timestamp() string {
	return time.Now().UTC().Format(constants.TimestampFormat)
}

// ParseDate parses a calendar-day string (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// ParseTimeToMinutes parses a time string (HH:MM) and returns the number of
// minutes from midnight.
func ParseTimeToMinutes(timeStr string) (int, error) {
	t, err := ParseTime(timeStr)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ValidateDateFormat checks if the string matches the standard date format.
func ValidateDateFormat(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// WeekdayMon0 returns the Monday-indexed weekday (Mon=0 .. Sun=6) of a
// calendar-day string.
func WeekdayMon0(dateStr string) (int, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return (int(d.Weekday()) + 6) % 7, nil
}

// AddDays returns the date n days after (or before, for negative n) the
// given calendar-day string.
func AddDays(dateStr string, n int) (string, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return d.AddDate(0, 0, n).Format(constants.DateFormat), nil
}

// WeekStartMonday returns the Monday on or before the given date.
func WeekStartMonday(dateStr string) (string, error) {
	dow, err := WeekdayMon0(dateStr)
	if err != nil {
		return "", err
	}
	return AddDays(dateStr, -dow)
}

// RangeDays returns n consecutive calendar-day strings starting at startDate.
func RangeDays(startDate string, n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		d, err := AddDays(startDate, i)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
