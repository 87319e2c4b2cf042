package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"asistanportal/internal/database"
)

// newTestDB opens a fresh in-memory database with the schema applied.
// MaxOpenConns is pinned to one so every statement sees the same in-memory
// store.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}
