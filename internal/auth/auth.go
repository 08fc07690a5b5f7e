// Package auth implements the credential store: registration with bcrypt
// password hashing and login verification.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tastyrecipes/tastyrecipes/internal/database"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken is returned when registering an already existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials is returned on login failure. It deliberately
	// doesn't distinguish an unknown username from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service verifies and creates user credentials on top of the user store.
type Service struct {
	db *database.Client
}

func New(db *database.Client) *Service {
	return &Service{db: db}
}

// Register creates a new user with a bcrypt hash of the password.
// The username match is case-sensitive and exact.
func (s *Service) Register(ctx context.Context, username, password string) (*database.User, error) {
	if _, err := s.db.GetUserByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, database.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.CreateUser(ctx, username, string(hash))
}

// Authenticate looks the user up by exact username and verifies the password
// against the stored hash.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*database.User, error) {
	user, err := s.db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
