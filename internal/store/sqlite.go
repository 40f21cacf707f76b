package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"dayslice/internal/plan"
)

// SQLite implements Store on a SQLite database, one row per task or
// note keyed by day. A position column preserves insertion order,
// which the statistics tie-break depends on.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the database at path and runs
// migrations.
func NewSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Load returns the record for dateKey. A day with no rows yields the
// canonical empty record.
func (s *SQLite) Load(ctx context.Context, dateKey string) (*plan.DayRecord, error) {
	rec := plan.EmptyRecord()

	taskQuery := `
		SELECT id, title, description, start_time, end_time, color, priority
		FROM tasks
		WHERE day = ?
		ORDER BY position
	`
	rows, err := s.db.QueryContext(ctx, taskQuery, dateKey)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var t plan.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Start, &t.End, &t.Color, &t.Priority); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		rec.Tasks = append(rec.Tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	noteQuery := `
		SELECT id, note_time, title, priority
		FROM notes
		WHERE day = ?
		ORDER BY position
	`
	noteRows, err := s.db.QueryContext(ctx, noteQuery, dateKey)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer func() { _ = noteRows.Close() }()

	for noteRows.Next() {
		var n plan.Note
		if err := noteRows.Scan(&n.ID, &n.Time, &n.Title, &n.Priority); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		rec.Notes = append(rec.Notes, &n)
	}
	if err := noteRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return rec, nil
}

// Save replaces the whole record for dateKey in one transaction.
func (s *SQLite) Save(ctx context.Context, dateKey string, rec *plan.DayRecord) error {
	if rec == nil {
		rec = plan.EmptyRecord()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE day = ?`, dateKey); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM notes WHERE day = ?`, dateKey); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}

	taskStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (day, id, title, description, start_time, end_time, color, priority, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing task insert: %w", err)
	}
	defer func() { _ = taskStmt.Close() }()

	for i, t := range rec.Tasks {
		if _, err := taskStmt.ExecContext(ctx, dateKey, t.ID, t.Title, t.Description, t.Start, t.End, t.Color, t.Priority, i); err != nil {
			return fmt.Errorf("inserting task %q: %w", t.Title, err)
		}
	}

	noteStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notes (day, id, note_time, title, priority, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing note insert: %w", err)
	}
	defer func() { _ = noteStmt.Close() }()

	for i, n := range rec.Notes {
		if _, err := noteStmt.ExecContext(ctx, dateKey, n.ID, n.Time, n.Title, n.Priority, i); err != nil {
			return fmt.Errorf("inserting note %q: %w", n.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS tasks (
			day         TEXT NOT NULL,
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start_time  TEXT NOT NULL,
			end_time    TEXT NOT NULL,
			color       TEXT NOT NULL DEFAULT '',
			priority    TEXT CHECK(priority IN ('urgent', 'high', 'normal', 'low')),
			position    INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS notes (
			day       TEXT NOT NULL,
			id        TEXT PRIMARY KEY,
			note_time TEXT NOT NULL,
			title     TEXT NOT NULL,
			priority  TEXT CHECK(priority IN ('urgent', 'high', 'normal', 'low')),
			position  INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_day ON tasks(day);
		CREATE INDEX IF NOT EXISTS idx_notes_day ON notes(day);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
