package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	BudgetRange  string   `json:"budget_range"`
	TravelStyle  string   `json:"travel_style"`
	Interests    []string `json:"interests"`
	PhotoRef     string   `json:"photo_ref,omitempty"`
	PhotoIsLocal bool     `json:"photo_is_local"`
}

type PhotoUploadResponse struct {
	PhotoRef string `json:"photo_ref"`
	// Degraded is true when the storage backend was unavailable and only a
	// local reference was recorded.
	Degraded bool `json:"degraded"`
}
