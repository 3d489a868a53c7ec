package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type KVSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewKVSQLite(db *sql.DB) *KVSQLite {
	return &KVSQLite{db: db, now: time.Now}
}

// Ensure implementation of KVStore interface at compile time.
var _ KVStore = (*KVSQLite)(nil)

const (
	upsertValueSQL = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value=excluded.value,
			updated_at=excluded.updated_at
	`

	selectValueSQL = `SELECT value FROM kv_store WHERE key = ?`

	deleteValueSQL = `DELETE FROM kv_store WHERE key = ?`
)

// Get returns the value stored under key. A missing key is reported as
// ok=false with no error.
func (r *KVSQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, selectValueSQL, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select key %q: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value under key.
func (r *KVSQLite) Set(ctx context.Context, key, value string) error {
	ts := r.now().UTC().Format(sqliteTimeLayout)
	if _, err := r.db.ExecContext(ctx, upsertValueSQL, key, value, ts); err != nil {
		return fmt.Errorf("upsert key %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *KVSQLite) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteValueSQL, key); err != nil {
		return fmt.Errorf("delete key %q: %w", key, err)
	}
	return nil
}
