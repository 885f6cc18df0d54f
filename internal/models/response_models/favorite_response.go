package response_models

type ToggleFavoriteResponse struct {
	TripID     string `json:"trip_id"`
	IsFavorite bool   `json:"is_favorite"`
}

// FavoritesSummaryResponse is the stats block on the saved-trips screen.
type FavoritesSummaryResponse struct {
	TotalTrips    int      `json:"total_trips"`
	Categories    []string `json:"categories"`
	TotalPrice    int64    `json:"total_price"`
	TotalDisplay  string   `json:"total_display"`
	AverageRating float64  `json:"average_rating"`
}
