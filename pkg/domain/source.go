package domain

import "time"

// Source represents a named bucket of feedback, e.g. "App Store reviews"
type Source struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SourceWithStats represents a source with aggregate counters
type SourceWithStats struct {
	Source
	FeedbackCount int `json:"feedback_count"`
	InsightCount  int `json:"insight_count"`
}
