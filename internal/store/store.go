// Package store persists day records keyed by calendar date.
package store

import (
	"context"

	"dayslice/internal/plan"
)

// Store loads and saves the {tasks, notes} record for a date key
// ("YYYY-MM-DD"). Load never surfaces malformed data: a missing or
// unparseable record yields the canonical empty record, and only real
// I/O failures return an error. Save overwrites the whole record; there
// are no partial or merge semantics.
type Store interface {
	Load(ctx context.Context, dateKey string) (*plan.DayRecord, error)
	Save(ctx context.Context, dateKey string, rec *plan.DayRecord) error
	Close() error
}
