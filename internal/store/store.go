// Package store persists solver runs in SQLite so timings and results
// can be compared across invocations.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrNoRuns is returned when a query matches no recorded runs.
var ErrNoRuns = errors.New("no runs recorded")

// Run is one recorded solver execution.
type Run struct {
	ID      string
	Day     int
	Part    int
	Name    string
	Result  string
	Elapsed time.Duration
	Created time.Time
}

// Store is the SQLite-backed run history.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open initializes the database at the given path, creating the
// directory and schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			day        INTEGER NOT NULL,
			part       INTEGER NOT NULL,
			name       TEXT NOT NULL,
			result     TEXT NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			created_at TIMESTAMP NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_day_part ON runs(day, part);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists a run, assigning it an ID and timestamp.
func (s *Store) Record(run Run) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run.ID = uuid.NewString()
	run.Created = time.Now().UTC()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, day, part, name, result, elapsed_ns, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Day, run.Part, run.Name, run.Result, run.Elapsed.Nanoseconds(), run.Created,
	)
	if err != nil {
		return Run{}, fmt.Errorf("failed to record run: %w", err)
	}
	return run, nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		`SELECT id, day, part, name, result, elapsed_ns, created_at
		 FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

// Fastest returns the quickest recorded run for a day and part.
func (s *Store) Fastest(day, part int) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(
		`SELECT id, day, part, name, result, elapsed_ns, created_at
		 FROM runs WHERE day = ? AND part = ?
		 ORDER BY elapsed_ns LIMIT 1`, day, part)

	run, err := scanRun(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("day %d part %d: %w", day, part, ErrNoRuns)
	}
	if err != nil {
		return Run{}, fmt.Errorf("failed to query fastest run: %w", err)
	}
	return run, nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}
	return runs, nil
}

func scanRun(scan func(...any) error) (Run, error) {
	var run Run
	var elapsed int64
	if err := scan(&run.ID, &run.Day, &run.Part, &run.Name, &run.Result, &elapsed, &run.Created); err != nil {
		return Run{}, err
	}
	run.Elapsed = time.Duration(elapsed)
	return run, nil
}
