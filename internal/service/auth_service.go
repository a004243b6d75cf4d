package service

import (
	"context"

	"bloglist/internal/auth"
	"bloglist/internal/models"
	"bloglist/internal/repository"
)

// AuthService exchanges credentials for bearer tokens.
type AuthService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

// LoginResult is a successful credential exchange.
type LoginResult struct {
	Token string
	User  *models.User
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login verifies the credentials and issues a token. An unknown username and
// a wrong password produce the identical error so callers cannot probe which
// part was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return nil, models.NewUnauthorizedError("invalid username or password")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &LoginResult{Token: token, User: user}, nil
}
