package plan

import (
	"maps"
	"slices"
)

// Day holds the tasks and notes for a single calendar date during a
// session. Mutations go through the add/remove operations only; the
// derived coverage index and statistics are pure functions of the task
// list, memoized against a version token that every mutation bumps.
// Switching dates replaces the Day wholesale, so no two dates' data
// coexist in working state.
type Day struct {
	Key string // "YYYY-MM-DD" date key

	tasks []*Task // insertion order
	notes []*Note // insertion order

	version    int
	coverage   *Coverage
	coverageAt int
	stats      *Stats
	statsAt    int
}

// NewDay creates an empty Day for the given date key.
func NewDay(key string) *Day {
	return &Day{Key: key}
}

// NewDayFromRecord creates a Day from a loaded record.
func NewDayFromRecord(key string, rec *DayRecord) *Day {
	d := NewDay(key)
	if rec == nil {
		return d
	}
	for _, t := range rec.Tasks {
		d.AddTask(t)
	}
	for _, n := range rec.Notes {
		d.AddNote(n)
	}
	return d
}

// Record returns a persistable snapshot of the day.
func (d *Day) Record() *DayRecord {
	rec := EmptyRecord()
	rec.Tasks = append(rec.Tasks, d.tasks...)
	rec.Notes = append(rec.Notes, d.notes...)
	return rec
}

// Tasks returns a copy of the task list in insertion order.
func (d *Day) Tasks() []*Task {
	tasks := make([]*Task, len(d.tasks))
	copy(tasks, d.tasks)
	return tasks
}

// Notes returns a copy of the note list in insertion order.
func (d *Day) Notes() []*Note {
	notes := make([]*Note, len(d.notes))
	copy(notes, d.notes)
	return notes
}

// AddTask appends a task to the day. Nil tasks are ignored.
func (d *Day) AddTask(t *Task) {
	if t == nil {
		return
	}
	d.tasks = append(d.tasks, t)
	d.version++
}

// AddNote appends a note to the day. Nil notes are ignored.
func (d *Day) AddNote(n *Note) {
	if n == nil {
		return
	}
	d.notes = append(d.notes, n)
	d.version++
}

// RemoveTask deletes the task with the given ID.
// Returns ErrTaskNotFound if no task matches.
func (d *Day) RemoveTask(id string) error {
	for i, t := range d.tasks {
		if t.ID == id {
			d.tasks = append(d.tasks[:i], d.tasks[i+1:]...)
			d.version++
			return nil
		}
	}
	return ErrTaskNotFound
}

// RemoveNote deletes the note with the given ID.
// Returns ErrNoteNotFound if no note matches.
func (d *Day) RemoveNote(id string) error {
	for i, n := range d.notes {
		if n.ID == id {
			d.notes = append(d.notes[:i], d.notes[i+1:]...)
			d.version++
			return nil
		}
	}
	return ErrNoteNotFound
}

// Task returns the task with the given ID, or nil.
func (d *Day) Task(id string) *Task {
	for _, t := range d.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Len returns the number of tasks in the day.
func (d *Day) Len() int {
	return len(d.tasks)
}

// Version returns the mutation counter. Derived views built at the
// same version are current.
func (d *Day) Version() int {
	return d.version
}

// Coverage returns the slot-to-task index for the current task set,
// rebuilt at most once per mutation.
func (d *Day) Coverage() *Coverage {
	if d.coverage == nil || d.coverageAt != d.version {
		d.coverage = BuildCoverage(d.tasks)
		d.coverageAt = d.version
	}
	return d.coverage
}

// Stats returns the aggregate statistics for the current task set,
// recomputed at most once per mutation. The map and slice are copies;
// mutating them does not touch the memoized state.
func (d *Day) Stats() Stats {
	if d.stats == nil || d.statsAt != d.version {
		stats := ComputeStats(d.tasks)
		d.stats = &stats
		d.statsAt = d.version
	}
	out := *d.stats
	out.ByPriority = maps.Clone(d.stats.ByPriority)
	out.Durations = slices.Clone(d.stats.Durations)
	return out
}
