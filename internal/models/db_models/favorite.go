package db_models

import "github.com/google/uuid"

type Favorite struct {
	BaseModel
	AccountID uuid.UUID `gorm:"index;uniqueIndex:idx_account_trip"`
	TripID    uuid.UUID `gorm:"index;uniqueIndex:idx_account_trip"`

	Trip Trip `gorm:"foreignKey:TripID"`
}
