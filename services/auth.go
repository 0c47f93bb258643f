package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roster/models"
	"roster/store"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so login failures never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users store.UserStore
}

func NewAuthService(users store.UserStore) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

type RegisterInput struct {
	FullName string
	Age      int
	Location string
	Username string
	Password string
	Email    string
}

// Register hashes the password and persists a new account row. Uniqueness
// errors from the store pass through unchanged.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     input.FullName,
		Age:          input.Age,
		Location:     input.Location,
		Username:     input.Username,
		PasswordHash: hash,
		Email:        input.Email,
		DateAdded:    time.Now(),
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
