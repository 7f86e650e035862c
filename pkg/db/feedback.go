package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/feedscope/feedscope/pkg/domain"
)

// feedback-related database operations, all scoped to the owning user

// CreateFeedback inserts a feedback item for an owned source and returns its id.
// Retries on SQLite lock errors, this is the hot write path.
func (db *DB) CreateFeedback(ctx context.Context, item *domain.FeedbackItem) (int64, error) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var id int64
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO feedback (source_id, user_id, content, category, sentiment)
			SELECT ?, ?, ?, ?, ?
			WHERE EXISTS (SELECT 1 FROM sources WHERE id = ? AND user_id = ?)`

		result, err := db.conn.ExecContext(ctx, query,
			item.SourceID, item.UserID, item.Content, item.Category, item.Sentiment,
			item.SourceID, item.UserID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create feedback: %w", err)}
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get rows affected: %w", err)}
		}
		if affected == 0 {
			return &criticalError{err: ErrNotFound} // source missing or not owned
		}

		id, err = result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get feedback id: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetFeedback retrieves all feedback for an owned source, newest first
func (db *DB) GetFeedback(ctx context.Context, userID string, sourceID int64) ([]domain.FeedbackItem, error) {
	query := `
		SELECT * FROM feedback
		WHERE source_id = ? AND user_id = ?
		ORDER BY created_at DESC, id DESC`

	var rows []feedbackSQL
	if err := db.conn.SelectContext(ctx, &rows, query, sourceID, userID); err != nil {
		return nil, fmt.Errorf("get feedback: %w", err)
	}

	items := make([]domain.FeedbackItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

// CountFeedback returns the number of feedback items for an owned source
func (db *DB) CountFeedback(ctx context.Context, userID string, sourceID int64) (int, error) {
	var count int
	err := db.conn.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM feedback WHERE source_id = ? AND user_id = ?", sourceID, userID)
	if err != nil {
		return 0, fmt.Errorf("count feedback: %w", err)
	}
	return count, nil
}

// DeleteFeedback removes an owned feedback item
func (db *DB) DeleteFeedback(ctx context.Context, userID string, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		"DELETE FROM feedback WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
