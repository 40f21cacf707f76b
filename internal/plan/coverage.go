package plan

import "dayslice/internal/timegrid"

// Coverage maps each slot of the day to the set of task IDs that
// occupy it for rendering. Both endpoints are inclusive: a slot is
// covered when its start time falls within [start, end], so a task
// from 09:00 to 10:00 covers the 09:00, 09:30 and 10:00 slots, and a
// zero-length task covers exactly one slot. Statistics deliberately
// use the half-open rule instead (see stats.go); the two must not be
// unified or user-visible totals change.
type Coverage struct {
	slots [timegrid.SlotsPerDay][]string
}

// BuildCoverage computes the slot-to-task index for a task set. It is
// a pure function of the task list; Day memoizes the result and
// rebuilds only after a mutation.
func BuildCoverage(tasks []*Task) *Coverage {
	var c Coverage
	for s := range c.slots {
		slotStart := s * timegrid.SlotMinutes
		for _, t := range tasks {
			if slotStart >= minutesOf(t.Start) && slotStart <= minutesOf(t.End) {
				c.slots[s] = append(c.slots[s], t.ID)
			}
		}
	}
	return &c
}

// TaskIDs returns the IDs of tasks covering slot s, in task-list
// order. Returns nil for out-of-range slots.
func (c *Coverage) TaskIDs(s int) []string {
	if s < 0 || s >= timegrid.SlotsPerDay {
		return nil
	}
	ids := make([]string, len(c.slots[s]))
	copy(ids, c.slots[s])
	return ids
}

// Covers reports whether the task with the given ID covers slot s.
func (c *Coverage) Covers(s int, id string) bool {
	if s < 0 || s >= timegrid.SlotsPerDay {
		return false
	}
	for _, covered := range c.slots[s] {
		if covered == id {
			return true
		}
	}
	return false
}

// SlotCount returns how many tasks cover slot s.
func (c *Coverage) SlotCount(s int) int {
	if s < 0 || s >= timegrid.SlotsPerDay {
		return 0
	}
	return len(c.slots[s])
}
