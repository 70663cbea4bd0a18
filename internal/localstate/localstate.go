// Package localstate is the durable client-local storage behind the demo
// ledger and favorites. Each store owns one named snapshot row, written on
// every mutation and restored on startup. The file is scoped per
// installation, not per account.
package localstate

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/bancotempo/timebank-backend/internal/errs"
)

// Migrations returns the schema statements. Each string is a single SQL
// statement (SQLite executes one at a time).
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			name       TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`,
	}
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errs.NewDatabaseError("open", "failed to open local state", err)
	}
	for _, stmt := range Migrations() {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, errs.NewDatabaseError("migrate", "failed to migrate local state", err)
		}
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the snapshot stored under name, or (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapshots WHERE name = ?`, name).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("read", "failed to read snapshot", err)
	}
	return value, nil
}

// Put replaces the snapshot stored under name.
func (s *Store) Put(ctx context.Context, name string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		name, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return errs.NewDatabaseError("write", "failed to write snapshot", err)
	}
	return nil
}
