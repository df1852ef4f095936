package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

func (r *PostgresMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var m Metrics

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&m.TotalUsers); err != nil {
		return m, errors.Wrap(err, "count users")
	}
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(views), 0) FROM announcements`).
		Scan(&m.TotalAnnouncements, &m.TotalViews)
	if err != nil {
		return m, errors.Wrap(err, "count announcements")
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT u.username, COUNT(*) AS cnt
		FROM announcements a
		JOIN users u ON a.author_id = u.id
		GROUP BY u.id, u.username
		ORDER BY cnt DESC, u.id
		LIMIT 1
	`).Scan(&m.TopAuthor.Username, &m.TopAuthor.AnnouncementCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return m, errors.Wrap(err, "top author")
	}

	return m, nil
}
