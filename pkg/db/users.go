package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/feedscope/feedscope/pkg/domain"
)

// user-related database operations

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned on unique constraint violations
var ErrAlreadyExists = errors.New("record already exists")

// CreateUser inserts a new user record
func (db *DB) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, display_name)
		VALUES (?, ?, ?, ?)`

	_, err := db.conn.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.DisplayName)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email, ErrNotFound if absent
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user userSQL
	err := db.conn.GetContext(ctx, &user, "SELECT * FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user.toDomain(), nil
}

// GetUser retrieves a user by id, ErrNotFound if absent
func (db *DB) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user userSQL
	err := db.conn.GetContext(ctx, &user, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user.toDomain(), nil
}

// UpdateUserProfile updates the mutable profile fields, including the
// onboarding wizard position
func (db *DB) UpdateUserProfile(ctx context.Context, id, displayName string, onboardingStep int, onboardingCompleted bool) error {
	query := `
		UPDATE users
		SET display_name = ?,
		    onboarding_step = ?,
		    onboarding_completed = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	result, err := db.conn.ExecContext(ctx, query, displayName, onboardingStep, onboardingCompleted, id)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
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

// isUniqueViolation checks if an error is a SQLite unique constraint error
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
