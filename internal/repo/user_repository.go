package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
)

var ErrDuplicatedValueUnique = errors.New("unique constraint violation")

// UserRepository is the credential store. Username and email are unique
// across all users.
type UserRepository interface {
	// CreateUser inserts u and returns it with its assigned ID. It fails with
	// ErrDuplicatedValueUnique when the username or the email is taken.
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	// GetByUsername returns nil and no error when no user matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
