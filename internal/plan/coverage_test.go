package plan

import (
	"testing"

	"dayslice/internal/timegrid"
)

// newTask builds a normalized task or fails the test.
func newTask(t *testing.T, title, start, end, priority string) *Task {
	t.Helper()
	task, err := NewTask(title, "", start, end, "", priority)
	if err != nil {
		t.Fatalf("failed to create task %q: %v", title, err)
	}
	return task
}

func TestBuildCoverage_InclusiveEndpoints(t *testing.T) {
	// A 09:00-10:00 task touches three slots: 09:00, 09:30 and 10:00.
	task := newTask(t, "Standup", "09:00", "10:00", "normal")
	cov := BuildCoverage([]*Task{task})

	covered := []int{18, 19, 20} // 09:00, 09:30, 10:00
	for _, s := range covered {
		if !cov.Covers(s, task.ID) {
			t.Errorf("expected slot %d (%s) covered", s, timegrid.SlotStart(s))
		}
	}
	if cov.Covers(17, task.ID) {
		t.Error("slot before start must not be covered")
	}
	if cov.Covers(21, task.ID) {
		t.Error("slot after end must not be covered")
	}
}

func TestBuildCoverage_ZeroLengthTask(t *testing.T) {
	task := newTask(t, "Checkpoint", "12:00", "12:00", "normal")
	cov := BuildCoverage([]*Task{task})

	total := 0
	for s := 0; s < timegrid.SlotsPerDay; s++ {
		if cov.Covers(s, task.ID) {
			total++
			if timegrid.SlotStart(s) != "12:00" {
				t.Errorf("zero-length task covered slot %s, want 12:00", timegrid.SlotStart(s))
			}
		}
	}
	if total != 1 {
		t.Errorf("zero-length task covered %d slots, want exactly 1", total)
	}
}

func TestBuildCoverage_OverlappingTasks(t *testing.T) {
	first := newTask(t, "First", "09:00", "10:00", "urgent")
	second := newTask(t, "Second", "09:30", "10:30", "low")
	cov := BuildCoverage([]*Task{first, second})

	// Slot 09:30 belongs to both, in task-list order.
	ids := cov.TaskIDs(19)
	if len(ids) != 2 {
		t.Fatalf("expected 2 tasks at 09:30, got %d", len(ids))
	}
	if ids[0] != first.ID || ids[1] != second.ID {
		t.Error("expected task-list order preserved in slot membership")
	}

	if cov.SlotCount(18) != 1 {
		t.Errorf("expected 1 task at 09:00, got %d", cov.SlotCount(18))
	}
	if cov.SlotCount(21) != 1 {
		t.Errorf("expected 1 task at 10:30, got %d", cov.SlotCount(21))
	}
}

func TestBuildCoverage_EmptyTaskSet(t *testing.T) {
	cov := BuildCoverage(nil)
	for s := 0; s < timegrid.SlotsPerDay; s++ {
		if cov.SlotCount(s) != 0 {
			t.Fatalf("empty task set covered slot %d", s)
		}
	}
}

func TestCoverage_OutOfRangeSlots(t *testing.T) {
	cov := BuildCoverage([]*Task{newTask(t, "Any", "00:00", "23:30", "normal")})

	if cov.TaskIDs(-1) != nil {
		t.Error("negative slot must return nil")
	}
	if cov.TaskIDs(timegrid.SlotsPerDay) != nil {
		t.Error("slot past end must return nil")
	}
	if cov.Covers(-1, "x") || cov.SlotCount(99) != 0 {
		t.Error("out-of-range queries must be empty")
	}
}
