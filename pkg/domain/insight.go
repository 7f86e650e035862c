package domain

import "time"

// Insight represents a synthesized report derived from a batch of feedback.
// KeyThemes and Recommendations are never nil, empty slices at worst.
type Insight struct {
	ID              int64     `json:"id,omitempty"`
	SourceID        int64     `json:"source_id,omitempty"`
	UserID          string    `json:"-"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	KeyThemes       []string  `json:"key_themes"`
	Recommendations []string  `json:"recommendations"`
	FeedbackCount   int       `json:"feedback_count,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}
