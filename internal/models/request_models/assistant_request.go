package request_models

type AssistantMessageRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

type ToggleFavoriteRequest struct {
	TripID string `json:"trip_id" binding:"required,uuid4"`
}
