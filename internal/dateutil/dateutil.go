// Package dateutil provides date parsing and date-key derivation.
package dateutil

import (
	"errors"
	"time"
)

// ErrInvalidDateFormat is returned for dates not in YYYY-MM-DD format.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a date string in YYYY-MM-DD format using the local
// calendar. If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateKey derives the storage key for a calendar date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDateKey validates a raw date argument and returns its key.
// Empty input yields today's key.
func ParseDateKey(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return DateKey(t), nil
}
