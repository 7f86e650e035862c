package domain

import "time"

// User represents a registered account. PasswordHash never leaves the server.
type User struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	DisplayName         string    `json:"display_name"`
	OnboardingStep      int       `json:"onboarding_step"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
