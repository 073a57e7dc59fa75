package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
)

// Migrations holds the schema for the key-value table
//
//go:embed migrations/*.sql
var Migrations embed.FS

// KVStore implements repository.KeyValueStore on a local SQLite file
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a new key-value repository
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Get returns the value stored under key
func (r *KVStore) Get(key string) ([]byte, bool, error) {
	var value string
	query := `SELECT value FROM kv_store WHERE key = ?`
	err := r.db.QueryRow(query, key).Scan(&value)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}

	return []byte(value), true, nil
}

// Set replaces the value stored under key
func (r *KVStore) Set(key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key)
		DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := r.db.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}
