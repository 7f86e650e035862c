package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedscope/feedscope/pkg/domain"
)

func TestDB_CreateFeedback(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	makeTestUser(t, db, "u1", "u1@example.com")
	srcID := makeTestSource(t, db, "u1", "Reviews")

	id, err := db.CreateFeedback(ctx, &domain.FeedbackItem{
		SourceID:  srcID,
		UserID:    "u1",
		Content:   "The app crashes on startup",
		Category:  "bug",
		Sentiment: domain.SentimentNegative,
	})
	require.NoError(t, err)
	assert.Positive(t, id)

	items, err := db.GetFeedback(ctx, "u1", srcID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "The app crashes on startup", items[0].Content)
	assert.Equal(t, "bug", items[0].Category)
	assert.Equal(t, domain.SentimentNegative, items[0].Sentiment)
	assert.False(t, items[0].CreatedAt.IsZero())
}

func TestDB_CreateFeedback_ForeignSource(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	makeTestUser(t, db, "owner", "owner@example.com")
	makeTestUser(t, db, "other", "other@example.com")
	srcID := makeTestSource(t, db, "owner", "Private")

	// writing into someone else's source is rejected
	_, err := db.CreateFeedback(ctx, &domain.FeedbackItem{SourceID: srcID, UserID: "other", Content: "sneaky"})
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := db.GetFeedback(ctx, "owner", srcID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDB_GetFeedback_NewestFirst(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	makeTestUser(t, db, "u1", "u1@example.com")
	srcID := makeTestSource(t, db, "u1", "Surveys")

	for _, content := range []string{"first", "second", "third"} {
		_, err := db.CreateFeedback(ctx, &domain.FeedbackItem{SourceID: srcID, UserID: "u1", Content: content})
		require.NoError(t, err)
	}

	items, err := db.GetFeedback(ctx, "u1", srcID)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "third", items[0].Content)
	assert.Equal(t, "first", items[2].Content)
}

func TestDB_CountFeedback(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	makeTestUser(t, db, "u1", "u1@example.com")
	srcID := makeTestSource(t, db, "u1", "Emails")

	count, err := db.CountFeedback(ctx, "u1", srcID)
	require.NoError(t, err)
	assert.Zero(t, count)

	for i := 0; i < 2; i++ {
		_, err := db.CreateFeedback(ctx, &domain.FeedbackItem{SourceID: srcID, UserID: "u1", Content: "item"})
		require.NoError(t, err)
	}

	count, err = db.CountFeedback(ctx, "u1", srcID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestDB_DeleteFeedback(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	makeTestUser(t, db, "u1", "u1@example.com")
	makeTestUser(t, db, "u2", "u2@example.com")
	srcID := makeTestSource(t, db, "u1", "Chat")

	id, err := db.CreateFeedback(ctx, &domain.FeedbackItem{SourceID: srcID, UserID: "u1", Content: "to delete"})
	require.NoError(t, err)

	// wrong owner can't delete
	err = db.DeleteFeedback(ctx, "u2", id)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, db.DeleteFeedback(ctx, "u1", id))
	err = db.DeleteFeedback(ctx, "u1", id)
	assert.ErrorIs(t, err, ErrNotFound)
}
