package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/feedscope/feedscope/pkg/config"
	"github.com/feedscope/feedscope/pkg/db"
	"github.com/feedscope/feedscope/pkg/domain"
)

// fakeStore is an in-memory UserStore keyed by email
type fakeStore struct {
	users map[string]*domain.User
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*domain.User{}}
}

func (s *fakeStore) CreateUser(_ context.Context, user *domain.User) error {
	if _, ok := s.users[user.Email]; ok {
		return db.ErrAlreadyExists
	}
	s.users[user.Email] = user
	return nil
}

func (s *fakeStore) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, db.ErrNotFound
	}
	return user, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost}
}

func TestService_Register(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, testAuthConfig())

	user, token, err := svc.Register(context.Background(), " Alice@Example.COM ", "password123", "Alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEmpty(t, token)

	assert.Equal(t, "alice@example.com", user.Email, "email normalized")
	assert.Equal(t, "Alice", user.DisplayName)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// token resolves back to the user
	userID, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestService_Register_Validation(t *testing.T) {
	svc := NewService(newFakeStore(), testAuthConfig())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "not-an-email", "password123", "")
	assert.ErrorContains(t, err, "invalid email")

	_, _, err = svc.Register(ctx, "", "password123", "")
	assert.ErrorContains(t, err, "invalid email")

	_, _, err = svc.Register(ctx, "a@example.com", "short", "")
	assert.ErrorContains(t, err, "at least 8 characters")
}

func TestService_Register_EmailTaken(t *testing.T) {
	svc := NewService(newFakeStore(), testAuthConfig())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "a@example.com", "password123", "")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "A@example.com", "password456", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	svc := NewService(newFakeStore(), testAuthConfig())
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, "bob@example.com", "password123", "Bob")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "BOB@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc := NewService(newFakeStore(), testAuthConfig())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "bob@example.com", "password123", "")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "bob@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeStore(), testAuthConfig())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Validate_BadToken(t *testing.T) {
	svc := NewService(newFakeStore(), testAuthConfig())

	_, err := svc.Validate("garbage")
	assert.Error(t, err)
}
