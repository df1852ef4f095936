package auth

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
)

// Service implements sign-up and login on top of the credential store and
// the token service.
type Service struct {
	users  repo.UserRepository
	tokens *TokenService
}

func NewService(users repo.UserRepository, tokens *TokenService) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Register stores a new user with a hashed password. A taken username or
// email yields repo.ErrDuplicatedValueUnique.
func (s *Service) Register(ctx context.Context, username, password, email string) (models.User, error) {
	hashed, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.users.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hashed,
		Email:        email,
	})
}

// Login returns a fresh access token, or ErrInvalidCredentials when the user
// is unknown or the password does not match.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil || !CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(ctx, user.Username)
}
