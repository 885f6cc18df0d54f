package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tassili/internal/models/db_models"
)

type TripRepository interface {
	ListTrips(ctx context.Context, page int, pageSize int, category string) ([]db_models.Trip, error)
	ListAgencyPackages(ctx context.Context, page int, pageSize int) ([]db_models.Trip, error)
	GetTripById(ctx context.Context, id string) (*db_models.Trip, error)
	FirstByCategory(ctx context.Context, category db_models.TripCategory) (*db_models.Trip, error)
	CountTrips(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, trips []db_models.Trip) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (t *tripRepository) ListTrips(ctx context.Context, page int, pageSize int, category string) ([]db_models.Trip, error) {

	q := t.db.WithContext(ctx).Model(&db_models.Trip{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var trips []db_models.Trip
	err := q.Order("rating DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (t *tripRepository) ListAgencyPackages(ctx context.Context, page int, pageSize int) ([]db_models.Trip, error) {

	var trips []db_models.Trip
	err := t.db.WithContext(ctx).
		Where("is_agency_package = TRUE").
		Order("rating DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (t *tripRepository) GetTripById(ctx context.Context, id string) (*db_models.Trip, error) {

	var trip db_models.Trip
	err := t.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// FirstByCategory backs the assistant's trip-card replies: the highest rated
// trip in the matched category.
func (t *tripRepository) FirstByCategory(ctx context.Context, category db_models.TripCategory) (*db_models.Trip, error) {

	var trip db_models.Trip
	err := t.db.WithContext(ctx).
		Where("category = ?", category).
		Order("rating DESC").
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (t *tripRepository) CountTrips(ctx context.Context) (int64, error) {
	var count int64
	err := t.db.WithContext(ctx).Model(&db_models.Trip{}).Count(&count).Error
	return count, err
}

func (t *tripRepository) InsertBatch(ctx context.Context, trips []db_models.Trip) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&trips).Error
	})
}
