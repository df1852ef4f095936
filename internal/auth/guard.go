package auth

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
)

// Guard resolves a bearer token to the user it was issued for.
type Guard struct {
	tokens *TokenService
	users  repo.UserRepository
}

func NewGuard(tokens *TokenService, users repo.UserRepository) *Guard {
	return &Guard{tokens: tokens, users: users}
}

// Authenticate fails with an error matching ErrUnauthorized when the token
// is invalid or its subject no longer exists. Store failures are returned
// as they are.
func (g *Guard) Authenticate(ctx context.Context, bearerToken string) (models.User, error) {
	username, err := g.tokens.Validate(bearerToken)
	if err != nil {
		return models.User{}, err
	}

	user, err := g.users.GetByUsername(ctx, username)
	if err != nil {
		return models.User{}, fmt.Errorf("resolve token subject: %w", err)
	}
	if user == nil {
		return models.User{}, fmt.Errorf("%w: unknown subject %q", ErrUnauthorized, username)
	}
	return *user, nil
}
