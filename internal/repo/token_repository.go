package repo

import (
	"context"

	"github.com/rogerio-castellano/noticeboard/internal/models"
)

// TokenRepository keeps a write-only log of issued session tokens.
type TokenRepository interface {
	Save(ctx context.Context, t models.Token) (models.Token, error)
}
