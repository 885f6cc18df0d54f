package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tassili/internal/models/db_models"
)

type FavoriteRepository interface {
	Find(ctx context.Context, accountId string, tripId string) (*db_models.Favorite, error)
	Insert(ctx context.Context, favorite *db_models.Favorite) error
	Delete(ctx context.Context, accountId string, tripId string) error
	ListByAccount(ctx context.Context, accountId string) ([]db_models.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (f *favoriteRepository) Find(ctx context.Context, accountId string, tripId string) (*db_models.Favorite, error) {

	var favorite db_models.Favorite
	err := f.db.WithContext(ctx).
		Where("account_id = ? AND trip_id = ?", accountId, tripId).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

func (f *favoriteRepository) Insert(ctx context.Context, favorite *db_models.Favorite) error {
	return f.db.WithContext(ctx).Create(favorite).Error
}

func (f *favoriteRepository) Delete(ctx context.Context, accountId string, tripId string) error {
	return f.db.WithContext(ctx).
		Where("account_id = ? AND trip_id = ?", accountId, tripId).
		Delete(&db_models.Favorite{}).Error
}

func (f *favoriteRepository) ListByAccount(ctx context.Context, accountId string) ([]db_models.Favorite, error) {

	var favorites []db_models.Favorite
	err := f.db.WithContext(ctx).
		Where("account_id = ?", accountId).
		Preload("Trip").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
