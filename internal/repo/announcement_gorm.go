package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"gorm.io/gorm"
)

type GormAnnouncementRepository struct {
	db *gorm.DB
}

func NewGormAnnouncementRepository(db *gorm.DB) *GormAnnouncementRepository {
	return &GormAnnouncementRepository{db: db}
}

func (r *GormAnnouncementRepository) Create(ctx context.Context, a models.Announcement) (models.Announcement, error) {
	a.ID = 0
	a.Views = 0
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return models.Announcement{}, errors.Wrap(err, "insert announcement")
	}
	return a, nil
}

func (r *GormAnnouncementRepository) Update(ctx context.Context, id int, title, content string) (models.Announcement, error) {
	var updated models.Announcement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Announcement{}).
			Where("id = ?", id).
			Updates(map[string]any{"title": title, "content": content})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAnnouncementNotFound
		}
		return tx.First(&updated, id).Error
	})
	if errors.Is(err, ErrAnnouncementNotFound) {
		return models.Announcement{}, ErrAnnouncementNotFound
	}
	if err != nil {
		return models.Announcement{}, errors.Wrap(err, "update announcement")
	}
	return updated, nil
}

func (r *GormAnnouncementRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete announcement")
	}
	if res.RowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

func (r *GormAnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return r.find(r.db.WithContext(ctx))
}

// Search relies on SQLite's instr, which is case-sensitive and has no
// wildcard characters.
func (r *GormAnnouncementRepository) Search(ctx context.Context, query string) ([]models.Announcement, error) {
	return r.find(r.db.WithContext(ctx).Where("instr(title, ?) > 0 OR instr(content, ?) > 0", query, query))
}

func (r *GormAnnouncementRepository) GetViews(ctx context.Context, id int) (models.AnnouncementViews, error) {
	var a models.Announcement
	err := r.db.WithContext(ctx).Select("id", "views").Where("id = ?", id).Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.AnnouncementViews{}, ErrAnnouncementNotFound
	}
	if err != nil {
		return models.AnnouncementViews{}, errors.Wrap(err, "select views")
	}
	return models.AnnouncementViews{AnnouncementID: a.ID, Views: a.Views}, nil
}

func (r *GormAnnouncementRepository) GetByAuthor(ctx context.Context, authorID int) ([]models.Announcement, error) {
	return r.find(r.db.WithContext(ctx).Where("author_id = ?", authorID))
}

func (r *GormAnnouncementRepository) find(q *gorm.DB) ([]models.Announcement, error) {
	announcements := []models.Announcement{}
	if err := q.Order("id").Find(&announcements).Error; err != nil {
		return nil, errors.Wrap(err, "select announcements")
	}
	return announcements, nil
}
