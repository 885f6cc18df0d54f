package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type RequestForgotPassword struct {
	Email string `json:"email" binding:"required,email"`
}

type RequestVerifyOtpToken struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
	Token       string `json:"token" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName string   `json:"display_name" binding:"omitempty,min=3,max=50"`
	BudgetRange string   `json:"budget_range" binding:"omitempty,oneof=low medium high"`
	TravelStyle string   `json:"travel_style" binding:"omitempty,oneof=cultural adventure relaxation family romantic"`
	Interests   []string `json:"interests" binding:"omitempty,max=8"`
}

type PhotoFallbackRequest struct {
	// LocalRef is the device-side reference recorded when the upload to the
	// storage backend fails.
	LocalRef string `json:"local_ref"`
}
