package db

import (
	"encoding/json"
	"time"

	"github.com/feedscope/feedscope/pkg/domain"
)

// SQL-layer structs for scanning, converted to domain types at the boundary

type userSQL struct {
	ID                  string    `db:"id"`
	Email               string    `db:"email"`
	PasswordHash        string    `db:"password_hash"`
	DisplayName         string    `db:"display_name"`
	OnboardingStep      int       `db:"onboarding_step"`
	OnboardingCompleted bool      `db:"onboarding_completed"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

func (u *userSQL) toDomain() *domain.User {
	return &domain.User{
		ID:                  u.ID,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		DisplayName:         u.DisplayName,
		OnboardingStep:      u.OnboardingStep,
		OnboardingCompleted: u.OnboardingCompleted,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

type sourceSQL struct {
	ID          int64     `db:"id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (s *sourceSQL) toDomain() *domain.Source {
	return &domain.Source{
		ID:          s.ID,
		UserID:      s.UserID,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type sourceWithStatsSQL struct {
	sourceSQL
	FeedbackCount int `db:"feedback_count"`
	InsightCount  int `db:"insight_count"`
}

type feedbackSQL struct {
	ID        int64     `db:"id"`
	SourceID  int64     `db:"source_id"`
	UserID    string    `db:"user_id"`
	Content   string    `db:"content"`
	Category  string    `db:"category"`
	Sentiment string    `db:"sentiment"`
	CreatedAt time.Time `db:"created_at"`
}

func (f *feedbackSQL) toDomain() domain.FeedbackItem {
	return domain.FeedbackItem{
		ID:        f.ID,
		SourceID:  f.SourceID,
		UserID:    f.UserID,
		Content:   f.Content,
		Category:  f.Category,
		Sentiment: f.Sentiment,
		CreatedAt: f.CreatedAt,
	}
}

type insightSQL struct {
	ID              int64     `db:"id"`
	SourceID        int64     `db:"source_id"`
	UserID          string    `db:"user_id"`
	Title           string    `db:"title"`
	Summary         string    `db:"summary"`
	KeyThemes       string    `db:"key_themes"`
	Recommendations string    `db:"recommendations"`
	FeedbackCount   int       `db:"feedback_count"`
	CreatedAt       time.Time `db:"created_at"`
}

func (i *insightSQL) toDomain() *domain.Insight {
	return &domain.Insight{
		ID:              i.ID,
		SourceID:        i.SourceID,
		UserID:          i.UserID,
		Title:           i.Title,
		Summary:         i.Summary,
		KeyThemes:       unmarshalStrings(i.KeyThemes),
		Recommendations: unmarshalStrings(i.Recommendations),
		FeedbackCount:   i.FeedbackCount,
		CreatedAt:       i.CreatedAt,
	}
}

// unmarshalStrings decodes a JSON text column, broken data yields an empty
// slice rather than a nil one
func unmarshalStrings(s string) []string {
	var result []string
	if err := json.Unmarshal([]byte(s), &result); err != nil || result == nil {
		return []string{}
	}
	return result
}

// marshalStrings encodes a string slice for a JSON text column
func marshalStrings(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}
