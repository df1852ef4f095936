package repo

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rogerio-castellano/noticeboard/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository expects a *gorm.DB opened with TranslateError so that
// unique index violations surface as gorm.ErrDuplicatedKey.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	u.ID = 0
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicatedValueUnique
		}
		return models.User{}, errors.Wrap(err, "insert user")
	}
	return u, nil
}

func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select user")
	}
	return &u, nil
}
