package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/feedscope/feedscope/pkg/config"
	"github.com/feedscope/feedscope/pkg/db"
	"github.com/feedscope/feedscope/pkg/domain"
)

// Service handles registration, login and token validation
type Service struct {
	store      UserStore
	jwt        *JWTManager
	bcryptCost int
}

// UserStore is the subset of database operations the service needs
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// errors surfaced to the server layer
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

// NewService creates an auth service backed by the given user store
func NewService(store UserStore, cfg config.AuthConfig) *Service {
	return &Service{
		store:      store,
		jwt:        NewJWTManager(cfg.Secret, cfg.TokenTTL),
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new user and returns it with a fresh token
func (s *Service) Register(ctx context.Context, email, password, displayName string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("invalid email address")
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}
	return user, token, nil
}

// Validate checks a bearer token and returns the user id it carries
func (s *Service) Validate(token string) (userID string, err error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return "", fmt.Errorf("validate token: %w", err)
	}
	return claims.Subject, nil
}
