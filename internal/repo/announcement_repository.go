package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

// AnnouncementRepository defines the announcement store operations.
// Listing methods return an empty, non-nil slice when nothing matches.
type AnnouncementRepository interface {
	Create(ctx context.Context, a models.Announcement) (models.Announcement, error)
	Update(ctx context.Context, id int, title, content string) (models.Announcement, error)
	Delete(ctx context.Context, id int) error
	GetAll(ctx context.Context) ([]models.Announcement, error)
	// Search matches query as a literal, case-sensitive substring of the
	// title or the content.
	Search(ctx context.Context, query string) ([]models.Announcement, error)
	GetViews(ctx context.Context, id int) (models.AnnouncementViews, error)
	GetByAuthor(ctx context.Context, authorID int) ([]models.Announcement, error)
}
