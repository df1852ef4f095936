package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		username      VARCHAR(50)  NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		email         VARCHAR(100) NOT NULL UNIQUE,
		created_at    TIMESTAMPTZ  NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS tokens (
		id         SERIAL PRIMARY KEY,
		token      TEXT        NOT NULL UNIQUE,
		username   VARCHAR(50) NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS announcements (
		id         SERIAL PRIMARY KEY,
		title      TEXT        NOT NULL,
		content    TEXT        NOT NULL,
		author_id  INTEGER     NOT NULL,
		views      INTEGER     NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_announcements_author_id ON announcements (author_id)`,
}

// ConnectPostgres opens a pool through the pgx stdlib driver and checks it
// with a ping.
func ConnectPostgres(ctx context.Context, dbURL string) (*sql.DB, error) {
	if dbURL == "" {
		return nil, errors.New("database url is empty")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	return db, nil
}

// MigratePostgres creates the tables if they do not exist yet.
func MigratePostgres(ctx context.Context, db *sql.DB) error {
	for _, stmt := range postgresSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "migrate")
		}
	}
	return nil
}
