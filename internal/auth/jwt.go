package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"github.com/rogerio-castellano/noticeboard/internal/repo"
)

const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and validates HS256 session tokens. Validation is
// stateless: the token log is written on issue and never consulted again.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	tokens repo.TokenRepository
	now    func() time.Time
}

type TokenOption func(*TokenService)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

func NewTokenService(secret []byte, ttl time.Duration, tokens repo.TokenRepository, opts ...TokenOption) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	s := &TokenService{
		secret: secret,
		ttl:    ttl,
		tokens: tokens,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs a token for username and records it in the token log. The
// caller is expected to have verified the credentials already.
func (s *TokenService) Issue(ctx context.Context, username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	_, err = s.tokens.Save(ctx, models.Token{
		Token:     signed,
		Username:  username,
		ExpiresAt: claims.ExpiresAt.Time,
	})
	if err != nil {
		return "", fmt.Errorf("record token: %w", err)
	}

	return signed, nil
}

// Validate verifies signature and expiry and returns the token subject.
// Every failure is reported as ErrInvalidToken.
func (s *TokenService) Validate(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}
