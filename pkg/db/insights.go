package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/feedscope/feedscope/pkg/domain"
)

// insight-related database operations, all scoped to the owning user

// CreateInsight persists a generated insight and returns its id.
// Retries on SQLite lock errors.
func (db *DB) CreateInsight(ctx context.Context, insight *domain.Insight) (int64, error) {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	var id int64
	err := retrier.Do(ctx, func() error {
		query := `
			INSERT INTO insights (source_id, user_id, title, summary, key_themes, recommendations, feedback_count)
			SELECT ?, ?, ?, ?, ?, ?, ?
			WHERE EXISTS (SELECT 1 FROM sources WHERE id = ? AND user_id = ?)`

		result, err := db.conn.ExecContext(ctx, query,
			insight.SourceID, insight.UserID, insight.Title, insight.Summary,
			marshalStrings(insight.KeyThemes), marshalStrings(insight.Recommendations),
			insight.FeedbackCount,
			insight.SourceID, insight.UserID)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("create insight: %w", err)}
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
			return &criticalError{err: fmt.Errorf("get insight id: %w", err)}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetInsight retrieves a single owned insight
func (db *DB) GetInsight(ctx context.Context, userID string, id int64) (*domain.Insight, error) {
	var insight insightSQL
	err := db.conn.GetContext(ctx, &insight,
		"SELECT * FROM insights WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get insight: %w", err)
	}
	return insight.toDomain(), nil
}

// GetInsights retrieves all insights for an owned source, newest first
func (db *DB) GetInsights(ctx context.Context, userID string, sourceID int64) ([]domain.Insight, error) {
	query := `
		SELECT * FROM insights
		WHERE source_id = ? AND user_id = ?
		ORDER BY created_at DESC, id DESC`

	var rows []insightSQL
	if err := db.conn.SelectContext(ctx, &rows, query, sourceID, userID); err != nil {
		return nil, fmt.Errorf("get insights: %w", err)
	}

	insights := make([]domain.Insight, len(rows))
	for i := range rows {
		insights[i] = *rows[i].toDomain()
	}
	return insights, nil
}

// DeleteInsight removes an owned insight
func (db *DB) DeleteInsight(ctx context.Context, userID string, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		"DELETE FROM insights WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete insight: %w", err)
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
