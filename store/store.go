// SPDX-License-Identifier: MIT
//
// File: store.go — SQLite-backed pattern snapshot store.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/weftworks/patterngraph/core"
	"github.com/weftworks/patterngraph/snapshot"
)

// ErrNotFound indicates no pattern is saved under the requested name.
var ErrNotFound = errors.New("store: pattern not found")

// Store keeps named pattern snapshots in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the database at path and migrates the
// schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return s, nil
}

// migrate creates the snapshot table if it does not exist.
func (s *Store) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS patterns (
		name       TEXT PRIMARY KEY,
		snapshot   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`
	_, err := s.db.Exec(schema)

	return err
}

// Save upserts the graph's canonical snapshot under the given name.
func (s *Store) Save(ctx context.Context, name string, g *core.PatternGraph) error {
	data, err := snapshot.EncodeJSON(g)
	if err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}

	const q = `
	INSERT INTO patterns (name, snapshot, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(name) DO UPDATE SET snapshot = excluded.snapshot, updated_at = excluded.updated_at;`
	if _, err := s.db.ExecContext(ctx, q, name, string(data), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("store: save %s: %w", name, err)
	}

	return nil
}

// Load reconstructs the graph saved under the given name.
// Errors: ErrNotFound when the name was never saved; snapshot decode errors
// when the stored payload is corrupt.
func (s *Store) Load(ctx context.Context, name string) (*core.PatternGraph, error) {
	const q = `SELECT snapshot FROM patterns WHERE name = ?;`

	var data string
	err := s.db.QueryRowContext(ctx, q, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: load %s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}

	g, err := snapshot.DecodeJSON([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("store: load %s: %w", name, err)
	}

	return g, nil
}

// List returns every saved pattern name in lexicographic order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	const q = `SELECT name FROM patterns ORDER BY name;`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: list: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return names, nil
}

// Delete removes the pattern saved under the given name. Deleting a name
// that was never saved is a no-op, mirroring RemoveBlock's idempotence.
func (s *Store) Delete(ctx context.Context, name string) error {
	const q = `DELETE FROM patterns WHERE name = ?;`
	if _, err := s.db.ExecContext(ctx, q, name); err != nil {
		return fmt.Errorf("store: delete %s: %w", name, err)
	}

	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
