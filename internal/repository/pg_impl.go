package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// --- PostgreSQL Implementation ---

type pgKVStore struct {
	db *sqlx.DB
}

func (r *pgKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	q := `SELECT value FROM kv_entries WHERE key = $1`
	var value string
	if err := r.db.GetContext(ctx, &value, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *pgKVStore) Set(ctx context.Context, key, value string) error {
	q := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	_, err := r.db.ExecContext(ctx, q, key, value)
	return err
}

func (r *pgKVStore) Delete(ctx context.Context, key string) error {
	q := `DELETE FROM kv_entries WHERE key = $1`
	_, err := r.db.ExecContext(ctx, q, key)
	return err
}
