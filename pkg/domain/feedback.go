package domain

import "time"

// FeedbackItem represents one user-submitted feedback record,
// optionally tagged with category and sentiment
type FeedbackItem struct {
	ID        int64     `json:"id,omitempty"`
	SourceID  int64     `json:"source_id,omitempty"`
	UserID    string    `json:"-"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Sentiment string    `json:"sentiment,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// known sentiment values, free-form text is still accepted
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)
