package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedscope/feedscope/pkg/domain"
)

// source-related database operations, all scoped to the owning user

// CreateSource inserts a new feedback source and returns its id
func (db *DB) CreateSource(ctx context.Context, source *domain.Source) (int64, error) {
	query := `
		INSERT INTO sources (user_id, name, description)
		VALUES (?, ?, ?)`

	result, err := db.conn.ExecContext(ctx, query, source.UserID, source.Name, source.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyExists
		}
		return 0, fmt.Errorf("create source: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get source id: %w", err)
	}
	return id, nil
}

// GetSource retrieves a source owned by the given user
func (db *DB) GetSource(ctx context.Context, userID string, id int64) (*domain.Source, error) {
	var source sourceSQL
	err := db.conn.GetContext(ctx, &source,
		"SELECT * FROM sources WHERE id = ? AND user_id = ?", id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return source.toDomain(), nil
}

// GetSources retrieves all sources owned by the given user with counters
func (db *DB) GetSources(ctx context.Context, userID string) ([]domain.SourceWithStats, error) {
	query := `
		SELECT s.*,
		       (SELECT COUNT(*) FROM feedback f WHERE f.source_id = s.id) AS feedback_count,
		       (SELECT COUNT(*) FROM insights i WHERE i.source_id = s.id) AS insight_count
		FROM sources s
		WHERE s.user_id = ?
		ORDER BY s.created_at DESC`

	var rows []sourceWithStatsSQL
	if err := db.conn.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, fmt.Errorf("get sources: %w", err)
	}

	sources := make([]domain.SourceWithStats, len(rows))
	for i, row := range rows {
		sources[i] = domain.SourceWithStats{
			Source:        *row.sourceSQL.toDomain(),
			FeedbackCount: row.FeedbackCount,
			InsightCount:  row.InsightCount,
		}
	}
	return sources, nil
}

// UpdateSource updates name and description of an owned source
func (db *DB) UpdateSource(ctx context.Context, userID string, id int64, name, description string) error {
	query := `
		UPDATE sources
		SET name = ?, description = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?`

	result, err := db.conn.ExecContext(ctx, query, name, description, id, userID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("update source: %w", err)
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

// DeleteSource removes an owned source and all its feedback and insights
func (db *DB) DeleteSource(ctx context.Context, userID string, id int64) error {
	result, err := db.conn.ExecContext(ctx,
		"DELETE FROM sources WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete source: %w", err)
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
