package plan

// DayRecord is the persisted {tasks, notes} pair for one calendar
// date. It is the unit of persistence; stores save and load it whole,
// never merging.
type DayRecord struct {
	Tasks []*Task `json:"tasks"`
	Notes []*Note `json:"notes"`
}

// EmptyRecord returns the canonical empty record. Slices are non-nil
// so the record marshals as {"tasks":[],"notes":[]}.
func EmptyRecord() *DayRecord {
	return &DayRecord{
		Tasks: []*Task{},
		Notes: []*Note{},
	}
}

// Canonicalize replaces nil slices with empty ones so a record decoded
// from arbitrary JSON round-trips to the canonical shape.
func (r *DayRecord) Canonicalize() {
	if r.Tasks == nil {
		r.Tasks = []*Task{}
	}
	if r.Notes == nil {
		r.Notes = []*Note{}
	}
}
