package db_models

import "github.com/lib/pq"

type TripCategory string

const (
	CategoryDesert   TripCategory = "Desert"
	CategoryBeach    TripCategory = "Beach"
	CategoryCity     TripCategory = "City"
	CategoryMountain TripCategory = "Mountain"
	CategoryCultural TripCategory = "Cultural"
)

// Trip is a catalog offer. DisplayPrice keeps the agency's formatted string
// ("89,000 DA"); PriceMinor is the canonical amount in dinars and is what
// pricing actually uses.
type Trip struct {
	BaseModel
	Title        string
	DisplayPrice string
	PriceMinor   int64
	Duration     string
	Location     string
	Agency       string
	Rating       float64
	Category     TripCategory `gorm:"index"`
	Description  string
	Images       pq.StringArray `gorm:"type:text[]"`

	// Agency packages come from third-party agencies; once normalized into
	// this shape the rest of the system treats them identically.
	IsAgencyPackage bool `gorm:"index"`
}
