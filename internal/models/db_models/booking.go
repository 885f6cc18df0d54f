package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentCash        PaymentMethod = "cash"
	PaymentCard        PaymentMethod = "card"
	PaymentMobileMoney PaymentMethod = "mobile_money"
)

// Booking is the finalized record produced by the wizard's confirmation.
// Trip and traveler data are stored as snapshots taken at confirmation time;
// later catalog or roster changes never touch a finalized booking.
type Booking struct {
	BaseModel
	Reference string    `gorm:"uniqueIndex"` // e.g. "BK3F2A9C1D"
	AccountID uuid.UUID `gorm:"index"`
	TripID    uuid.UUID `gorm:"index"`

	TripSnapshot     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	TravelerSnapshot datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	StartDate int64 // unix seconds
	EndDate   int64

	PaymentMethod   PaymentMethod
	SpecialRequests string
	TotalPrice      int64
	BookedAt        int64

	Status        BookingStatus `gorm:"index"`
	PaymentStatus PaymentStatus

	Account Account `gorm:"foreignKey:AccountID"`
}
