// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"
	"regexp"
	"unicode/utf8"

	"bloglist/internal/auth"
	"bloglist/internal/models"
	"bloglist/internal/repository"
)

const (
	minUsernameLen = 3
	minPasswordLen = 3
)

var usernamePattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// UserService registers new users and lists existing ones.
type UserService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

// RegisterInput carries the fields of a registration request. Password is
// transient: it is hashed immediately and never persisted or logged.
type RegisterInput struct {
	Username string
	Name     string
	Password string
}

func NewUserService(users repository.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{users: users, hasher: hasher}
}

// Register validates the input, hashes the password and persists the user.
// Validation stops at the first violation. Uniqueness is not pre-checked
// here; the storage-level unique index is the race-proof guard and its
// violation surfaces as a validation error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if utf8.RuneCountInString(in.Username) < minUsernameLen {
		return nil, models.NewValidationError("username shorter than the minimum allowed length")
	}
	if !usernamePattern.MatchString(in.Username) {
		return nil, models.NewValidationError("username must contain only letters and digits")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLen {
		return nil, models.NewValidationError("password must be at least 3 characters long")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:     in.Username,
		Name:         in.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all registered users.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
