package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"dayslice/internal/plan"
)

// FileStore keeps one JSON file per date key under a base directory,
// e.g. 2025-06-01.json.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a
// file-backed store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load returns the record for dateKey. A missing file or a payload
// that does not parse as the expected shape silently resets to the
// empty record.
func (s *FileStore) Load(_ context.Context, dateKey string) (*plan.DayRecord, error) {
	data, err := os.ReadFile(s.path(dateKey))
	if err != nil {
		if os.IsNotExist(err) {
			return plan.EmptyRecord(), nil
		}
		return nil, fmt.Errorf("reading day record: %w", err)
	}

	var rec plan.DayRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return plan.EmptyRecord(), nil
	}
	rec.Canonicalize()
	return &rec, nil
}

// Save persists the full record for dateKey, overwriting any prior
// value. The write is atomic so a crash never leaves a torn file.
func (s *FileStore) Save(_ context.Context, dateKey string, rec *plan.DayRecord) error {
	if rec == nil {
		rec = plan.EmptyRecord()
	}
	rec.Canonicalize()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling day record: %w", err)
	}

	if err := atomic.WriteFile(s.path(dateKey), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing day record: %w", err)
	}
	return nil
}

// Close releases resources; the file store holds none.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(dateKey string) string {
	return filepath.Join(s.dir, dateKey+".json")
}
