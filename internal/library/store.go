// Package library stores puzzles in a SQLite database under the data
// directory, replacing ad-hoc save files. It tracks a "last used" pointer so
// the previous puzzle can be picked up again without naming it.
package library

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/genghk79/Sudoku-Solver-2/pkg/board"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created under the data directory.
const dbFileName = "sudoku.db"

// lastUsedKey is the settings key holding the last-used puzzle ID.
const lastUsedKey = "last_used_puzzle"

// Store lifecycle and lookup errors.
var (
	ErrAlreadyAttached = errors.New("library is already attached")
	ErrDetached        = errors.New("library is detached")
	ErrNotFound        = errors.New("puzzle not found")
	ErrNoLastUsed      = errors.New("no last-used puzzle recorded")
)

// Config describes where the library lives.
type Config struct {
	// DataDir is the directory holding the database file. Created if
	// missing; "." when empty.
	DataDir string
}

// Puzzle is a stored puzzle with its full grid.
type Puzzle struct {
	ID        string
	Name      string
	Grid      board.Grid
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Meta is a puzzle listing entry without the grid.
type Meta struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is the SQLite-backed puzzle library. Callers attach it to a data
// directory, operate on it, and detach when done.
type Store struct {
	mu       sync.RWMutex
	attached bool
	db       *sql.DB
}

// NewStore creates a detached store; call Attach before use.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the database under cfg.DataDir and ensures the
// schema exists. Returns ErrAlreadyAttached if called twice.
func (s *Store) Attach(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("initialize schema: %w", err)
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent: detaching a detached store is a
// no-op.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.attached = false
	return err
}

// Save inserts the puzzle, or updates name and grid when a puzzle with the
// same ID already exists. An empty ID gets a fresh one. Returns the ID.
func (s *Store) Save(p Puzzle) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return "", ErrDetached
	}

	id := p.ID
	if id == "" {
		id = newID()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := s.db.Exec(`
		INSERT INTO puzzles (puzzle_id, name, grid, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(puzzle_id) DO UPDATE SET
			name = excluded.name,
			grid = excluded.grid,
			updated_at = excluded.updated_at`,
		id, p.Name, p.Grid.String(), now, now)
	if err != nil {
		return "", fmt.Errorf("save puzzle: %w", err)
	}
	return id, nil
}

// Get returns the puzzle with the given ID, or ErrNotFound.
func (s *Store) Get(id string) (Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return Puzzle{}, ErrDetached
	}
	return s.get(id)
}

// get assumes the caller holds at least a read lock.
func (s *Store) get(id string) (Puzzle, error) {
	row := s.db.QueryRow(`
		SELECT puzzle_id, name, grid, created_at, updated_at
		FROM puzzles WHERE puzzle_id = ?`, id)

	var p Puzzle
	var gridText, createdAt, updatedAt string
	err := row.Scan(&p.ID, &p.Name, &gridText, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Puzzle{}, fmt.Errorf("puzzle %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return Puzzle{}, fmt.Errorf("get puzzle: %w", err)
	}

	p.Grid, err = board.ParseGrid(strings.NewReader(gridText))
	if err != nil {
		return Puzzle{}, fmt.Errorf("stored grid for %q: %w", id, err)
	}
	p.CreatedAt, p.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
	return p, nil
}

// List returns all stored puzzles, newest first, without grids.
func (s *Store) List() ([]Meta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, ErrDetached
	}

	rows, err := s.db.Query(`
		SELECT puzzle_id, name, created_at, updated_at
		FROM puzzles ORDER BY created_at DESC, puzzle_id`)
	if err != nil {
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	defer rows.Close()

	var metas []Meta
	for rows.Next() {
		var m Meta
		var createdAt, updatedAt string
		if err := rows.Scan(&m.ID, &m.Name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan puzzle row: %w", err)
		}
		m.CreatedAt, m.UpdatedAt = parseTime(createdAt), parseTime(updatedAt)
		metas = append(metas, m)
	}
	return metas, rows.Err()
}

// Delete removes the puzzle, and the last-used pointer if it referenced it.
// Returns ErrNotFound when no such puzzle exists.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}

	res, err := s.db.Exec(`DELETE FROM puzzles WHERE puzzle_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete puzzle: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("puzzle %q: %w", id, ErrNotFound)
	}

	_, err = s.db.Exec(`DELETE FROM settings WHERE key = ? AND value = ?`, lastUsedKey, id)
	return err
}

// SetLastUsed records id as the last-used puzzle. The puzzle must exist.
func (s *Store) SetLastUsed(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return ErrDetached
	}

	var exists int
	err := s.db.QueryRow(`SELECT 1 FROM puzzles WHERE puzzle_id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("puzzle %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("check puzzle: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		lastUsedKey, id)
	if err != nil {
		return fmt.Errorf("set last used: %w", err)
	}
	return nil
}

// LastUsed returns the last-used puzzle, or ErrNoLastUsed when none was
// ever recorded.
func (s *Store) LastUsed() (Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return Puzzle{}, ErrDetached
	}

	var id string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, lastUsedKey).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return Puzzle{}, ErrNoLastUsed
	}
	if err != nil {
		return Puzzle{}, fmt.Errorf("last used: %w", err)
	}
	return s.get(id)
}

// newID generates a UUIDv7 (time-ordered), falling back to v4 if the
// system clock refuses.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
