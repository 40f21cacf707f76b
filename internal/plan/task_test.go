package plan

import (
	"errors"
	"testing"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Priority
		wantErr bool
	}{
		{name: "urgent", input: "urgent", want: PriorityUrgent},
		{name: "high", input: "high", want: PriorityHigh},
		{name: "normal", input: "normal", want: PriorityNormal},
		{name: "low", input: "low", want: PriorityLow},
		{name: "case insensitive", input: "URGENT", want: PriorityUrgent},
		{name: "trims whitespace", input: " high ", want: PriorityHigh},
		{name: "empty defaults to normal", input: "", want: PriorityNormal},
		{name: "unknown", input: "critical", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPriority) {
					t.Fatalf("ParsePriority(%q) error = %v, want ErrInvalidPriority", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePriority(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePriority(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPriorities_DisplayOrder(t *testing.T) {
	want := []Priority{PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow}
	got := Priorities()

	if len(got) != len(want) {
		t.Fatalf("expected %d priorities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewTask(t *testing.T) {
	task, err := NewTask("Review PR", "look at the diff", "09:10", "10:50", "#ff0000", "high")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.ID == "" {
		t.Error("expected a generated ID")
	}
	if task.Start != "09:00" || task.End != "10:30" {
		t.Errorf("expected normalized interval 09:00-10:30, got %s-%s", task.Start, task.End)
	}
	if task.Priority != PriorityHigh {
		t.Errorf("expected high priority, got %s", task.Priority)
	}
	if task.Duration() != 90 {
		t.Errorf("expected duration 90, got %d", task.Duration())
	}
}

func TestNewTask_SwapsReversedInterval(t *testing.T) {
	task, err := NewTask("Backwards", "", "15:00", "09:00", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Start != "09:00" || task.End != "15:00" {
		t.Errorf("expected swapped interval 09:00-15:00, got %s-%s", task.Start, task.End)
	}
}

func TestNewTask_Validation(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		if _, err := NewTask("  ", "", "09:00", "10:00", "", ""); !errors.Is(err, ErrEmptyTitle) {
			t.Errorf("error = %v, want ErrEmptyTitle", err)
		}
	})

	t.Run("bad priority", func(t *testing.T) {
		if _, err := NewTask("X", "", "09:00", "10:00", "", "whenever"); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("error = %v, want ErrInvalidPriority", err)
		}
	})

	t.Run("unparseable time", func(t *testing.T) {
		if _, err := NewTask("X", "", "soon", "10:00", "", ""); err == nil {
			t.Error("expected an error for unparseable start time")
		}
	})
}

func TestNewNote(t *testing.T) {
	note, err := NewNote("Call dentist", "14:40", "urgent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.ID == "" {
		t.Error("expected a generated ID")
	}
	if note.Time != "14:30" {
		t.Errorf("expected time clamped to 14:30, got %s", note.Time)
	}
	if note.Slot() != 29 {
		t.Errorf("expected slot 29, got %d", note.Slot())
	}
}

func TestNewNote_EmptyTitle(t *testing.T) {
	if _, err := NewNote("", "09:00", ""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("error = %v, want ErrEmptyTitle", err)
	}
}
