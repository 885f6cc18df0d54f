package request_models

type StartDraftRequest struct {
	TripID string `json:"trip_id" binding:"required,uuid4"`
}

type UpdateTravelerRequest struct {
	Field string `json:"field" binding:"required,oneof=full_name age passport_number"`
	Value string `json:"value"`
}

type UpdateDraftDetailsRequest struct {
	// RFC3339 travel dates; zero values keep the draft's defaults.
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	PaymentMethod   string `json:"payment_method" binding:"omitempty,oneof=cash card mobile_money"`
	SpecialRequests string `json:"special_requests" binding:"max=500"`
}
