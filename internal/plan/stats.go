package plan

import (
	"slices"

	"dayslice/internal/timegrid"
)

// Stats holds de-overlapped time totals for one day's task set.
// Minutes are counted over the union of occupied slots, so overlapping
// tasks never double count. Priority buckets are independent de-overlap
// domains: a slot shared by an urgent and a normal task counts fully
// toward both, and the bucket sum may exceed ScheduledMinutes.
type Stats struct {
	ScheduledMinutes int
	FreeMinutes      int
	ByPriority       map[Priority]int
	Durations        []TaskDuration
}

// TaskDuration is one row of the per-task durations listing.
type TaskDuration struct {
	ID      string
	Title   string
	Start   string
	End     string
	Minutes int
}

// ScheduledMinutes returns the total minutes claimed by at least one
// task. A slot counts only when time strictly inside it is claimed:
// intervals are half-open [start, end), so a task ending exactly on a
// slot boundary does not occupy the boundary slot and a zero-length
// task contributes nothing. This intentionally differs from the
// inclusive coverage rule used for rendering.
func ScheduledMinutes(tasks []*Task) int {
	return countOccupiedSlots(tasks) * timegrid.SlotMinutes
}

// FreeMinutes returns the unscheduled remainder of the day.
func FreeMinutes(tasks []*Task) int {
	free := timegrid.MinutesPerDay - ScheduledMinutes(tasks)
	if free < 0 {
		return 0
	}
	return free
}

// ByPriorityMinutes computes the de-overlapped minutes for each
// priority independently. Every priority appears in the result, at
// zero when it has no tasks.
func ByPriorityMinutes(tasks []*Task) map[Priority]int {
	result := make(map[Priority]int, len(priorityTable))
	for _, p := range Priorities() {
		var subset []*Task
		for _, t := range tasks {
			if t.Priority == p {
				subset = append(subset, t)
			}
		}
		result[p] = ScheduledMinutes(subset)
	}
	return result
}

// PerTaskDurations returns the raw (not de-overlapped) duration of
// each task, ordered by start time ascending with insertion order
// breaking ties.
func PerTaskDurations(tasks []*Task) []TaskDuration {
	durations := make([]TaskDuration, 0, len(tasks))
	for _, t := range tasks {
		durations = append(durations, TaskDuration{
			ID:      t.ID,
			Title:   t.Title,
			Start:   t.Start,
			End:     t.End,
			Minutes: t.Duration(),
		})
	}

	slices.SortStableFunc(durations, func(a, b TaskDuration) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})
	return durations
}

// ComputeStats runs all four aggregations over the task list.
func ComputeStats(tasks []*Task) Stats {
	return Stats{
		ScheduledMinutes: ScheduledMinutes(tasks),
		FreeMinutes:      FreeMinutes(tasks),
		ByPriority:       ByPriorityMinutes(tasks),
		Durations:        PerTaskDurations(tasks),
	}
}

// countOccupiedSlots counts slots with at least one task claiming time
// strictly inside them, across the union of all task intervals.
func countOccupiedSlots(tasks []*Task) int {
	var occupied [timegrid.SlotsPerDay]bool
	for _, t := range tasks {
		start := minutesOf(t.Start)
		end := minutesOf(t.End)
		for s := range occupied {
			slotStart := s * timegrid.SlotMinutes
			if slotStart < end && slotStart+timegrid.SlotMinutes > start {
				occupied[s] = true
			}
		}
	}

	count := 0
	for _, taken := range occupied {
		if taken {
			count++
		}
	}
	return count
}
