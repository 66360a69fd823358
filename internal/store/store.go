// Package store persists pet records in a local SQLite database. The
// record is saved as a single JSON snapshot keyed by slot; the engine
// treats persistence as fire-and-forget.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"regenmon/internal/pet"
)

const schema = `
CREATE TABLE IF NOT EXISTS pets (
	slot       TEXT PRIMARY KEY,
	record     TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);`

// DefaultSlot is the single-pet save slot.
const DefaultSlot = "default"

// Store is a SQLite-backed save file.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// Replace durably stores the record as the current state of the slot.
func (s *Store) Replace(slot string, r pet.Record) error {
	encoded, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	_, err = s.sqlDB.Exec(`
		INSERT INTO pets (slot, record, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET record = excluded.record, updated_at = excluded.updated_at`,
		slot, string(encoded), toMillis(pet.TimeNow()))
	if err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// Load rehydrates the record stored in the slot. The second return is
// false when no pet has been saved yet.
func (s *Store) Load(slot string) (pet.Record, bool, error) {
	var encoded string
	err := s.sqlDB.QueryRow(`SELECT record FROM pets WHERE slot = ?`, slot).Scan(&encoded)
	if err == sql.ErrNoRows {
		return pet.Record{}, false, nil
	}
	if err != nil {
		return pet.Record{}, false, fmt.Errorf("load record: %w", err)
	}

	var r pet.Record
	if err := json.Unmarshal([]byte(encoded), &r); err != nil {
		return pet.Record{}, false, fmt.Errorf("unmarshal record: %w", err)
	}
	return r, true, nil
}

// Delete removes the slot, used when abandoning a pet.
func (s *Store) Delete(slot string) error {
	if _, err := s.sqlDB.Exec(`DELETE FROM pets WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}
