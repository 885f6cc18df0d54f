package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tassili/internal/models/db_models"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	ListByAccount(ctx context.Context, accountId string) ([]db_models.Booking, error)
	GetById(ctx context.Context, id string) (*db_models.Booking, error)
	UpdateStatus(ctx context.Context, id string, status db_models.BookingStatus, paymentStatus db_models.PaymentStatus) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (b *bookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *bookingRepository) ListByAccount(ctx context.Context, accountId string) ([]db_models.Booking, error) {

	var bookings []db_models.Booking
	err := b.db.WithContext(ctx).
		Where("account_id = ?", accountId).
		Order("booked_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *bookingRepository) GetById(ctx context.Context, id string) (*db_models.Booking, error) {

	var booking db_models.Booking
	err := b.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (b *bookingRepository) UpdateStatus(ctx context.Context, id string, status db_models.BookingStatus, paymentStatus db_models.PaymentStatus) error {
	return b.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"payment_status": paymentStatus,
		}).Error
}
