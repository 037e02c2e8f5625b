package repository

import (
	"context"

	"github.com/alexivanou/skytrip-api/internal/config"
	"github.com/jmoiron/sqlx"
)

// Store is the persistent key-value storage used for the selected locale
// and the auth session. Get reports found=false for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Container holds all repositories
type Container struct {
	KV Store
}

// NewRepositories creates repository implementations based on DB type
func NewRepositories(db *sqlx.DB, dbType config.DBType) *Container {
	if dbType == config.DBTypePostgreSQL {
		return &Container{
			KV: &pgKVStore{db: db},
		}
	}

	// Default to SQLite
	return &Container{
		KV: &sqliteKVStore{db: db},
	}
}
