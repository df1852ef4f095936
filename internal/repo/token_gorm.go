package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"gorm.io/gorm"
)

type GormTokenRepository struct {
	db *gorm.DB
}

func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

func (r *GormTokenRepository) Save(ctx context.Context, t models.Token) (models.Token, error) {
	t.ID = 0
	t.ExpiresAt = t.ExpiresAt.UTC()
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Token{}, ErrDuplicatedValueUnique
		}
		return models.Token{}, errors.Wrap(err, "insert token")
	}
	return t, nil
}
