package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rogerio-castellano/noticeboard/internal/auth"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingUsers struct {
	repo.UserRepository
}

func (failingUsers) GetByUsername(context.Context, string) (*models.User, error) {
	return nil, errors.New("connection reset")
}

func TestGuard_Authenticate(t *testing.T) {
	ctx := context.Background()
	users := repo.NewInMemoryUserRepository()
	alice, err := users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h", Email: "alice@example.com"})
	require.NoError(t, err)

	tokens := auth.NewTokenService(testSecret, time.Minute, repo.NewInMemoryTokenRepository())
	guard := auth.NewGuard(tokens, users)

	t.Run("valid token resolves the user", func(t *testing.T) {
		tok, err := tokens.Issue(ctx, "alice")
		require.NoError(t, err)

		user, err := guard.Authenticate(ctx, tok)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("signed token for unknown subject", func(t *testing.T) {
		tok := signed(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
			Subject:   "ghost",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		})

		_, err := guard.Authenticate(ctx, tok)
		require.ErrorIs(t, err, auth.ErrUnauthorized)
		assert.NotErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := guard.Authenticate(ctx, "garbage")
		require.ErrorIs(t, err, auth.ErrUnauthorized)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("store failure is not unauthorized", func(t *testing.T) {
		tok, err := tokens.Issue(ctx, "alice")
		require.NoError(t, err)

		_, err = auth.NewGuard(tokens, failingUsers{}).Authenticate(ctx, tok)
		require.Error(t, err)
		assert.NotErrorIs(t, err, auth.ErrUnauthorized)
	})
}
