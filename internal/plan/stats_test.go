package plan

import (
	"testing"

	"dayslice/internal/timegrid"
)

func TestScheduledMinutes_DeOverlap(t *testing.T) {
	// 09:00-10:00 and 09:30-10:30 share the 09:30 slot: union is 90
	// minutes, not 120.
	tasks := []*Task{
		newTask(t, "First", "09:00", "10:00", "normal"),
		newTask(t, "Second", "09:30", "10:30", "normal"),
	}

	if got := ScheduledMinutes(tasks); got != 90 {
		t.Errorf("ScheduledMinutes = %d, want 90", got)
	}
}

func TestScheduledMinutes_HalfOpenEnd(t *testing.T) {
	// The 10:00 slot is shown in coverage but not counted: the task
	// claims no time strictly inside it.
	tasks := []*Task{newTask(t, "Morning", "09:00", "10:00", "normal")}

	if got := ScheduledMinutes(tasks); got != 60 {
		t.Errorf("ScheduledMinutes = %d, want 60", got)
	}
}

func TestScheduledMinutes_ZeroLengthTask(t *testing.T) {
	tasks := []*Task{newTask(t, "Marker", "12:00", "12:00", "urgent")}

	if got := ScheduledMinutes(tasks); got != 0 {
		t.Errorf("zero-length task contributed %d minutes, want 0", got)
	}
	if got := PerTaskDurations(tasks)[0].Minutes; got != 0 {
		t.Errorf("zero-length task duration = %d, want 0", got)
	}

	// But it still covers its slot for rendering.
	cov := BuildCoverage(tasks)
	if !cov.Covers(24, tasks[0].ID) {
		t.Error("zero-length task must still cover the 12:00 slot")
	}
}

func TestFreeMinutes_Complement(t *testing.T) {
	tests := []struct {
		name  string
		tasks []*Task
	}{
		{name: "empty day", tasks: nil},
		{name: "single task", tasks: []*Task{newTask(t, "One", "09:00", "10:00", "normal")}},
		{name: "overlapping tasks", tasks: []*Task{
			newTask(t, "One", "09:00", "12:00", "high"),
			newTask(t, "Two", "10:00", "14:00", "low"),
		}},
		{name: "full day", tasks: []*Task{newTask(t, "All", "00:00", "23:30", "normal")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduled := ScheduledMinutes(tt.tasks)
			free := FreeMinutes(tt.tasks)
			if scheduled+free != timegrid.MinutesPerDay {
				t.Errorf("scheduled %d + free %d != %d", scheduled, free, timegrid.MinutesPerDay)
			}
		})
	}
}

func TestByPriorityMinutes_IndependentDomains(t *testing.T) {
	// Overlapping tasks of different priorities both count in full;
	// bucket totals may exceed the global de-overlapped figure.
	tasks := []*Task{
		newTask(t, "Incident", "09:00", "11:00", "urgent"),
		newTask(t, "Email", "09:00", "11:00", "normal"),
	}

	byPriority := ByPriorityMinutes(tasks)
	if byPriority[PriorityUrgent] != 120 {
		t.Errorf("urgent minutes = %d, want 120", byPriority[PriorityUrgent])
	}
	if byPriority[PriorityNormal] != 120 {
		t.Errorf("normal minutes = %d, want 120", byPriority[PriorityNormal])
	}

	scheduled := ScheduledMinutes(tasks)
	if scheduled != 120 {
		t.Errorf("ScheduledMinutes = %d, want 120", scheduled)
	}
	if byPriority[PriorityUrgent]+byPriority[PriorityNormal] <= scheduled {
		t.Error("expected bucket sum to exceed the de-overlapped total")
	}
}

func TestByPriorityMinutes_SamePriorityDeOverlaps(t *testing.T) {
	tasks := []*Task{
		newTask(t, "One", "09:00", "10:00", "high"),
		newTask(t, "Two", "09:30", "10:30", "high"),
	}

	if got := ByPriorityMinutes(tasks)[PriorityHigh]; got != 90 {
		t.Errorf("high minutes = %d, want 90", got)
	}
}

func TestByPriorityMinutes_AllBucketsPresent(t *testing.T) {
	byPriority := ByPriorityMinutes(nil)
	if len(byPriority) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(byPriority))
	}
	for _, p := range Priorities() {
		if minutes, ok := byPriority[p]; !ok || minutes != 0 {
			t.Errorf("bucket %s = %d (present %v), want 0", p, minutes, ok)
		}
	}
}

func TestPerTaskDurations_Ordering(t *testing.T) {
	// Ordered by start ascending, insertion order breaking ties.
	first := newTask(t, "Late", "14:00", "15:00", "normal")
	second := newTask(t, "Early", "09:00", "10:00", "normal")
	third := newTask(t, "AlsoEarly", "09:00", "09:30", "low")

	durations := PerTaskDurations([]*Task{first, second, third})
	if len(durations) != 3 {
		t.Fatalf("expected 3 durations, got %d", len(durations))
	}

	wantOrder := []string{"Early", "AlsoEarly", "Late"}
	for i, want := range wantOrder {
		if durations[i].Title != want {
			t.Errorf("position %d = %q, want %q", i, durations[i].Title, want)
		}
	}
	if durations[0].Minutes != 60 || durations[1].Minutes != 30 || durations[2].Minutes != 60 {
		t.Errorf("unexpected durations: %+v", durations)
	}
}

func TestComputeStats_EmptyDay(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.ScheduledMinutes != 0 {
		t.Errorf("scheduled = %d, want 0", stats.ScheduledMinutes)
	}
	if stats.FreeMinutes != timegrid.MinutesPerDay {
		t.Errorf("free = %d, want %d", stats.FreeMinutes, timegrid.MinutesPerDay)
	}
	if len(stats.Durations) != 0 {
		t.Errorf("expected no durations, got %d", len(stats.Durations))
	}
}
