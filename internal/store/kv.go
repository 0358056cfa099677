// Package store provides the flat key-value slot the terminal history
// persists through, backed by the application's sqlite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// KV is a string key-value table on a shared database handle. Values are
// overwritten wholesale; there is no partial update.
type KV struct {
	db *sql.DB
}

// NewKV creates the backing table if needed and returns the slot.
func NewKV(db *sql.DB) (*KV, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &KV{db: db}, nil
}

// Get returns the value stored under key. A key that has never been written
// yields ("", nil): absence is an empty slot, not an error.
func (s *KV) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set writes value under key, replacing any previous value.
func (s *KV) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}
