package plan

import (
	"fmt"
	"strconv"
	"strings"

	"dayslice/internal/timegrid"
)

// ClampToSlot snaps a user-entered time onto a slot boundary. The
// minute component rounds down to :00 if below 30, otherwise to :30,
// and the hour is clamped to [0,23], so "23:45" becomes "23:30"
// rather than wrapping into the next day. Out-of-range components are
// never an error; ErrInvalidFormat is returned only when the hour or
// minute cannot be parsed as integers at all.
func ClampToSlot(t string) (string, error) {
	hour, minute, err := parseLoose(t)
	if err != nil {
		return "", err
	}

	if hour < 0 {
		hour = 0
	}
	if hour > 23 {
		hour = 23
	}
	if minute < 30 {
		minute = 0
	} else {
		minute = 30
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// NormalizeInterval coerces a raw (start, end) pair into a valid,
// slot-aligned, ordered task interval. Both times are clamped to slot
// boundaries and swapped if start is after end, so the returned pair
// always satisfies start <= end. Applying it twice yields the same
// pair as once.
func NormalizeInterval(rawStart, rawEnd string) (start, end string, err error) {
	start, err = ClampToSlot(rawStart)
	if err != nil {
		return "", "", fmt.Errorf("start time: %w", err)
	}
	end, err = ClampToSlot(rawEnd)
	if err != nil {
		return "", "", fmt.Errorf("end time: %w", err)
	}

	// Zero-padded HH:MM strings order lexicographically.
	if start > end {
		start, end = end, start
	}
	return start, end, nil
}

// parseLoose splits a time string into hour and minute integers.
// Unlike timegrid.ToMinutes it accepts unpadded and out-of-range
// components; only unparseable input is rejected.
func parseLoose(t string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(strings.TrimSpace(t), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", timegrid.ErrInvalidFormat, t)
	}

	hour, err1 := strconv.Atoi(strings.TrimSpace(h))
	minute, err2 := strconv.Atoi(strings.TrimSpace(m))
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("%w: %q", timegrid.ErrInvalidFormat, t)
	}
	return hour, minute, nil
}

// minutesOf converts a normalized "HH:MM" string to minutes since
// midnight. Returns 0 for strings that are not valid times; callers
// only pass values that already went through normalization.
func minutesOf(t string) int {
	m, err := timegrid.ToMinutes(t)
	if err != nil {
		return 0
	}
	return m
}
