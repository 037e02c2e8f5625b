package repository

import (
	"context"
	"testing"

	"github.com/alexivanou/skytrip-api/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an in-memory SQLite database with the kv_entries schema
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE kv_entries (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	require.NoError(t, err)

	return db
}

func TestKVStore_SQLite(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db, config.DBTypeMemory)
	ctx := context.Background()

	t.Run("GetMissingKey", func(t *testing.T) {
		value, found, err := repos.KV.Get(ctx, "no_such_key")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repos.KV.Set(ctx, "selectedLocale", "de-DE"))

		value, found, err := repos.KV.Get(ctx, "selectedLocale")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "de-DE", value)
	})

	t.Run("SetOverwritesExisting", func(t *testing.T) {
		require.NoError(t, repos.KV.Set(ctx, "selectedLocale", "de-DE"))
		require.NoError(t, repos.KV.Set(ctx, "selectedLocale", "fr-FR"))

		value, found, err := repos.KV.Get(ctx, "selectedLocale")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "fr-FR", value)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repos.KV.Set(ctx, "user_token", "mock_token_abc"))
		require.NoError(t, repos.KV.Delete(ctx, "user_token"))

		_, found, err := repos.KV.Get(ctx, "user_token")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("DeleteMissingKeyIsNoop", func(t *testing.T) {
		require.NoError(t, repos.KV.Delete(ctx, "never_set"))
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		require.NoError(t, repos.KV.Set(ctx, "user_token", "tok"))
		require.NoError(t, repos.KV.Set(ctx, "user_data", `{"id":"1"}`))
		require.NoError(t, repos.KV.Delete(ctx, "user_token"))

		value, found, err := repos.KV.Get(ctx, "user_data")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"id":"1"}`, value)
	})
}
