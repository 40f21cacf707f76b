// Package timegrid defines the fixed 48-slot partition of a day and
// conversions between "HH:MM" time strings and slot indices.
package timegrid

import (
	"errors"
	"fmt"
)

// Grid dimensions. Slot i spans minute i*SlotMinutes to i*SlotMinutes+29.
const (
	SlotMinutes   = 30
	SlotsPerDay   = 24 * 60 / SlotMinutes
	MinutesPerDay = 24 * 60
)

// ErrInvalidFormat is returned for strings that cannot be parsed as a
// valid HH:MM time of day.
var ErrInvalidFormat = errors.New("time must be in HH:MM format")

// slotTimes is computed once at startup and never mutated.
var slotTimes = buildSlotTimes()

func buildSlotTimes() [SlotsPerDay]string {
	var times [SlotsPerDay]string
	for i := range times {
		times[i] = MinutesToTime(i * SlotMinutes)
	}
	return times
}

// SlotTimes returns the ordered start times of all slots,
// "00:00" through "23:30".
func SlotTimes() []string {
	times := make([]string, SlotsPerDay)
	copy(times, slotTimes[:])
	return times
}

// SlotStart returns the start time of slot i.
// Out-of-range indices clamp to the first or last slot.
func SlotStart(i int) string {
	if i < 0 {
		i = 0
	}
	if i >= SlotsPerDay {
		i = SlotsPerDay - 1
	}
	return slotTimes[i]
}

// SlotIndex returns the slot containing the given minute of the day.
// Out-of-range minutes clamp to the first or last slot.
func SlotIndex(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes >= MinutesPerDay {
		return SlotsPerDay - 1
	}
	return minutes / SlotMinutes
}

// ToMinutes converts "HH:MM" to minutes since midnight.
// Returns ErrInvalidFormat unless the string is a zero-padded 24-hour
// time with hour in [0,23] and minute in [0,59].
func ToMinutes(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, t)
	}
	hour, ok1 := twoDigits(t[0], t[1])
	minute, ok2 := twoDigits(t[3], t[4])
	if !ok1 || !ok2 || hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, t)
	}
	return hour*60 + minute, nil
}

// MinutesToTime converts minutes since midnight to "HH:MM" format.
// Out-of-range values clamp to "00:00" or "23:59".
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	if m >= MinutesPerDay {
		m = MinutesPerDay - 1
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// To12Hour converts a 24-hour time string to a 12-hour display form,
// e.g. "09:00" becomes "9:00 AM". Hours 0 and 12 both render as 12.
// Strings that fail to parse are returned unchanged.
func To12Hour(t string) string {
	minutes, err := ToMinutes(t)
	if err != nil {
		return t
	}
	hour := minutes / 60
	minute := minutes % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
