package response_models

type TripResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Price        string   `json:"price"`
	PriceMinor   int64    `json:"price_minor"`
	Duration     string   `json:"duration"`
	Location     string   `json:"location"`
	Agency       string   `json:"agency"`
	Rating       float64  `json:"rating"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Images       []string `json:"images"`
	AgencyOffer  bool     `json:"agency_offer"`
}
