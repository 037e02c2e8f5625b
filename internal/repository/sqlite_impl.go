package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// --- SQLite Implementation ---

type sqliteKVStore struct {
	db *sqlx.DB
}

func (r *sqliteKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	q := `SELECT value FROM kv_entries WHERE key = ?`
	var value string
	if err := r.db.GetContext(ctx, &value, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *sqliteKVStore) Set(ctx context.Context, key, value string) error {
	q := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

func (r *sqliteKVStore) Delete(ctx context.Context, key string) error {
	q := `DELETE FROM kv_entries WHERE key = ?`
	_, err := r.db.ExecContext(ctx, q, key)
	return err
}
