package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate_Valid(t *testing.T) {
	got, err := ParseDate("2025-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDate_EmptyReturnsToday(t *testing.T) {
	got, err := ParseDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := TruncateToDay(time.Now())
	if !got.Equal(want) {
		t.Errorf("ParseDate(\"\") = %v, want today %v", got, want)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	inputs := []string{"15-01-2025", "2025/01/15", "not-a-date", "2025-13-40"}
	for _, input := range inputs {
		if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("ParseDate(%q) error = %v, want ErrInvalidDateFormat", input, err)
		}
	}
}

func TestDateKey(t *testing.T) {
	date := time.Date(2025, 6, 3, 17, 45, 0, 0, time.Local)
	if got := DateKey(date); got != "2025-06-03" {
		t.Errorf("DateKey = %q, want 2025-06-03", got)
	}
}

func TestParseDateKey(t *testing.T) {
	got, err := ParseDateKey("2025-06-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-06-03" {
		t.Errorf("ParseDateKey = %q, want 2025-06-03", got)
	}

	if _, err := ParseDateKey("junk"); !errors.Is(err, ErrInvalidDateFormat) {
		t.Errorf("error = %v, want ErrInvalidDateFormat", err)
	}
}
