package db_models

import "github.com/lib/pq"

type BudgetRange string

const (
	BudgetLow    BudgetRange = "low"
	BudgetMedium BudgetRange = "medium"
	BudgetHigh   BudgetRange = "high"
)

type TravelStyle string

const (
	StyleCultural   TravelStyle = "cultural"
	StyleAdventure  TravelStyle = "adventure"
	StyleRelaxation TravelStyle = "relaxation"
	StyleFamily     TravelStyle = "family"
	StyleRomantic   TravelStyle = "romantic"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	// Travel preferences collected during onboarding
	BudgetRange BudgetRange    `gorm:"default:medium"`
	TravelStyle TravelStyle    `gorm:"default:cultural"`
	Interests   pq.StringArray `gorm:"type:text[]"`

	// PhotoRef is either a storage URL or, after a failed upload,
	// the caller-supplied local reference.
	PhotoRef      string
	PhotoIsLocal  bool

	Bookings  []Booking  `gorm:"foreignKey:AccountID"`
	Favorites []Favorite `gorm:"foreignKey:AccountID"`
}
