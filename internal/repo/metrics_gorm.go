package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"gorm.io/gorm"
)

type GormMetricsRepository struct {
	db *gorm.DB
}

func NewGormMetricsRepository(db *gorm.DB) *GormMetricsRepository {
	return &GormMetricsRepository{db: db}
}

func (r *GormMetricsRepository) GetDashboardMetrics(ctx context.Context) (Metrics, error) {
	db := r.db.WithContext(ctx)
	var m Metrics

	var users int64
	if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
		return m, errors.Wrap(err, "count users")
	}
	m.TotalUsers = int(users)

	var totals struct {
		Count int
		Views int
	}
	err := db.Model(&models.Announcement{}).
		Select("COUNT(*) AS count, COALESCE(SUM(views), 0) AS views").
		Scan(&totals).Error
	if err != nil {
		return m, errors.Wrap(err, "count announcements")
	}
	m.TotalAnnouncements = totals.Count
	m.TotalViews = totals.Views

	var top []TopAuthor
	err = db.Table("announcements AS a").
		Select("u.username AS username, COUNT(*) AS announcement_count").
		Joins("JOIN users AS u ON u.id = a.author_id").
		Group("u.id, u.username").
		Order("announcement_count DESC, u.id").
		Limit(1).
		Scan(&top).Error
	if err != nil {
		return m, errors.Wrap(err, "top author")
	}
	if len(top) > 0 {
		m.TopAuthor = top[0]
	}

	return m, nil
}
