package repo

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
)

const announcementColumns = `id, title, content, author_id, views, created_at, updated_at`

type PostgresAnnouncementRepository struct {
	db *sql.DB
}

func NewPostgresAnnouncementRepository(db *sql.DB) *PostgresAnnouncementRepository {
	return &PostgresAnnouncementRepository{db: db}
}

func (r *PostgresAnnouncementRepository) Create(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	query := `INSERT INTO announcements (title, content, author_id) VALUES ($1, $2, $3) RETURNING ` + announcementColumns
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	created, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, a.Title, a.Content, a.AuthorID))
	if err != nil {
		return models.Announcement{}, errors.Wrap(err, "insert announcement")
	}
	return created, nil
}

func (r *PostgresAnnouncementRepository) Update(ctx context.Context, id int, title, content string) (models.Announcement, error) {
	query := `UPDATE announcements SET title = $1, content = $2, updated_at = now() WHERE id = $3 RETURNING ` + announcementColumns
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	updated, err := scanAnnouncement(r.db.QueryRowContext(ctx, query, title, content, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Announcement{}, ErrAnnouncementNotFound
	}
	if err != nil {
		return models.Announcement{}, errors.Wrap(err, "update announcement")
	}
	return updated, nil
}

func (r *PostgresAnnouncementRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM announcements WHERE id = $1`
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return errors.Wrap(err, "delete announcement")
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

func (r *PostgresAnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return r.query(ctx, `SELECT `+announcementColumns+` FROM announcements ORDER BY id`)
}

// Search uses strpos so that % and _ in the query are matched literally.
func (r *PostgresAnnouncementRepository) Search(ctx context.Context, query string) ([]models.Announcement, error) {
	return r.query(ctx, `SELECT `+announcementColumns+` FROM announcements
		WHERE strpos(title, $1) > 0 OR strpos(content, $1) > 0
		ORDER BY id`, query)
}

func (r *PostgresAnnouncementRepository) GetViews(ctx context.Context, id int) (models.AnnouncementViews, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var v models.AnnouncementViews
	err := r.db.QueryRowContext(ctx, `SELECT id, views FROM announcements WHERE id = $1`, id).Scan(&v.AnnouncementID, &v.Views)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AnnouncementViews{}, ErrAnnouncementNotFound
	}
	if err != nil {
		return models.AnnouncementViews{}, errors.Wrap(err, "select views")
	}
	return v, nil
}

func (r *PostgresAnnouncementRepository) GetByAuthor(ctx context.Context, authorID int) ([]models.Announcement, error) {
	return r.query(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE author_id = $1 ORDER BY id`, authorID)
}

func (r *PostgresAnnouncementRepository) query(ctx context.Context, query string, args ...any) ([]models.Announcement, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "select announcements")
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan announcement")
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnnouncement(row rowScanner) (models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.AuthorID, &a.Views, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}
