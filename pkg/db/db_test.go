package db

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedscope/feedscope/pkg/domain"
)

func setupTestDB(t *testing.T) (db *DB, cleanup func()) {
	t.Helper()

	// create temp file for test database
	tmpFile, err := os.CreateTemp("", "test-*.db")
	require.NoError(t, err)
	tmpFile.Close()

	cfg := Config{
		DSN: "file:" + tmpFile.Name() + "?mode=rwc",
	}

	db, err = New(cfg)
	require.NoError(t, err)

	cleanup = func() {
		db.Close()
		os.Remove(tmpFile.Name())
	}

	return db, cleanup
}

// makeTestUser inserts a user and returns it
func makeTestUser(t *testing.T, db *DB, id, email string) *domain.User {
	t.Helper()
	user := &domain.User{ID: id, Email: email, PasswordHash: "hash", DisplayName: "Test User"}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

// makeTestSource inserts a source for the user and returns its id
func makeTestSource(t *testing.T, db *DB, userID, name string) int64 {
	t.Helper()
	id, err := db.CreateSource(context.Background(), &domain.Source{UserID: userID, Name: name})
	require.NoError(t, err)
	return id
}

func TestDB_InitSchema(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	// schema should already be initialized by New()
	// verify tables exist
	var count int
	err := db.conn.Get(&count, `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name IN ('users', 'sources', 'feedback', 'insights')
	`)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestDB_NewWithDefaults(t *testing.T) {
	// test with empty DSN (should use default)
	cfg := Config{}
	db, err := New(cfg)
	require.NoError(t, err)
	defer func() {
		db.Close()
		// clean up default db file
		os.Remove("feedscope.db")
	}()

	// verify it works
	ctx := context.Background()
	err = db.Ping(ctx)
	assert.NoError(t, err)
}

func TestDB_InTransaction(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	makeTestUser(t, db, "u1", "u1@example.com")

	// failed transaction rolls back
	err := db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO sources (user_id, name) VALUES ('u1', 'tx-source')`); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	sources, err := db.GetSources(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, sources)
}
