// Package plan defines the core domain types for dayslice: prioritized
// tasks and notes attached to the half-hour slots of a single day.
package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dayslice/internal/timegrid"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("priority must be urgent, high, normal or low")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNoteNotFound = errors.New("note not found")
)

// Priority tags a task or note. The set is closed; the associated
// display order matters for grouping but never for computation.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// priorityMeta holds display metadata for one priority value.
type priorityMeta struct {
	Label string
	Order int
}

var priorityTable = map[Priority]priorityMeta{
	PriorityUrgent: {Label: "Urgent", Order: 0},
	PriorityHigh:   {Label: "High", Order: 1},
	PriorityNormal: {Label: "Normal", Order: 2},
	PriorityLow:    {Label: "Low", Order: 3},
}

// Priorities returns the closed priority set in display order.
func Priorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityNormal, PriorityLow}
}

// Valid returns true if the priority is one of the closed set.
func (p Priority) Valid() bool {
	_, ok := priorityTable[p]
	return ok
}

// Label returns the display label, e.g. "Urgent".
func (p Priority) Label() string {
	return priorityTable[p].Label
}

// ParsePriority parses a priority string. An empty string defaults to
// normal priority.
func ParsePriority(s string) (Priority, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PriorityNormal, nil
	}
	p := Priority(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Task is a time-bounded entry occupying part of the day. Start and
// End are slot-aligned "HH:MM" strings with Start <= End. Tasks are
// immutable after creation except for deletion.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Color       string   `json:"color"`
	Priority    Priority `json:"priority"`
}

// NewTask creates a task with a fresh ID and a normalized interval.
// Raw times are snapped onto slot boundaries and swapped if start is
// after end; a zero-length interval is allowed.
func NewTask(title, description, start, end, color, priority string) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	normStart, normEnd, err := NormalizeInterval(start, end)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Start:       normStart,
		End:         normEnd,
		Color:       color,
		Priority:    p,
	}, nil
}

// Duration returns the task's nominal length in minutes, end minus
// start. This is the raw per-task figure, not the de-overlapped one.
func (t *Task) Duration() int {
	d := minutesOf(t.End) - minutesOf(t.Start)
	if d < 0 {
		return 0
	}
	return d
}

// Note is a zero-duration marker attached to exactly one slot.
type Note struct {
	ID       string   `json:"id"`
	Time     string   `json:"time"`
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
}

// NewNote creates a note with a fresh ID at the slot containing the
// given time.
func NewNote(title, at, priority string) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	p, err := ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	aligned, err := ClampToSlot(at)
	if err != nil {
		return nil, err
	}

	return &Note{
		ID:       uuid.NewString(),
		Time:     aligned,
		Title:    title,
		Priority: p,
	}, nil
}

// Slot returns the index of the slot the note is attached to.
func (n *Note) Slot() int {
	return timegrid.SlotIndex(minutesOf(n.Time))
}
