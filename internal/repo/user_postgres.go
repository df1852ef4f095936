package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
)

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, username, password_hash, email, created_at FROM users WHERE username = $1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select user")
	}
	return &u, nil
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	query := `INSERT INTO users (username, password_hash, email) VALUES ($1, $2, $3) RETURNING id, created_at`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.Email).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return models.User{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.User{}, errors.Wrap(err, "insert user")
	}
	return u, nil
}
