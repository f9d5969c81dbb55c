// Package store archives solve results in a local sqlite database so
// repeated sessions can compare engines on the same positions. The
// engines themselves never read it; each search stays stateless.
package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// ErrNotFound means no archived solve exists for a position.
var ErrNotFound = errors.New("no archived solve for this position")

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id INTEGER PRIMARY KEY,
	position TEXT NOT NULL,
	engine TEXT NOT NULL,
	moves INTEGER NOT NULL,
	expanded INTEGER NOT NULL,
	elapsed_ms INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS solves_position ON solves(position);
`

// Solve is one archived engine run.
type Solve struct {
	Position string // canonical board key
	Engine   string
	Moves    int
	Expanded int
	Elapsed  time.Duration
}

// Store wraps the archive database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one solve result.
func (s *Store) Record(sv Solve) error {
	_, err := s.db.Exec(
		`INSERT INTO solves (position, engine, moves, expanded, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		sv.Position, sv.Engine, sv.Moves, sv.Expanded, sv.Elapsed.Milliseconds())
	if err != nil {
		log.Error().Err(err).Msg("archive-insert-failed")
	}
	return err
}

// Best returns the shortest archived solve for a position.
func (s *Store) Best(position string) (Solve, error) {
	row := s.db.QueryRow(
		`SELECT engine, moves, expanded, elapsed_ms FROM solves
		 WHERE position = ? ORDER BY moves ASC, expanded ASC LIMIT 1`,
		position)
	var sv Solve
	var ms int64
	err := row.Scan(&sv.Engine, &sv.Moves, &sv.Expanded, &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return Solve{}, ErrNotFound
	}
	if err != nil {
		return Solve{}, err
	}
	sv.Position = position
	sv.Elapsed = time.Duration(ms) * time.Millisecond
	return sv, nil
}
