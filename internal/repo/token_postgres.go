package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
)

type PostgresTokenRepository struct {
	db *sql.DB
}

func NewPostgresTokenRepository(db *sql.DB) *PostgresTokenRepository {
	return &PostgresTokenRepository{db: db}
}

func (r *PostgresTokenRepository) Save(ctx context.Context, t models.Token) (models.Token, error) {
	query := `INSERT INTO tokens (token, username, expires_at) VALUES ($1, $2, $3) RETURNING id, created_at`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, t.Token, t.Username, t.ExpiresAt.UTC()).Scan(&t.ID, &t.CreatedAt)
	if isUniqueViolation(err) {
		return models.Token{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.Token{}, errors.Wrap(err, "insert token")
	}
	return t, nil
}
