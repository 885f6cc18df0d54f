package response_models

type TravelerResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Age            int    `json:"age"`
	PassportNumber string `json:"passport_number,omitempty"`
}

// DraftResponse mirrors what the booking wizard renders at every step:
// the step indicator, the roster, and the running total.
type DraftResponse struct {
	ID              string             `json:"id"`
	Step            int                `json:"step"`
	Trip            TripResponse       `json:"trip"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	Travelers       []TravelerResponse `json:"travelers"`
	PaymentMethod   string             `json:"payment_method"`
	SpecialRequests string             `json:"special_requests,omitempty"`
	TotalPrice      int64              `json:"total_price"`
	TotalDisplay    string             `json:"total_display"`
}

type BookingResponse struct {
	ID              string             `json:"id"`
	Reference       string             `json:"reference"`
	Trip            TripResponse       `json:"trip"`
	Travelers       []TravelerResponse `json:"travelers"`
	StartDate       string             `json:"start_date"`
	EndDate         string             `json:"end_date"`
	PaymentMethod   string             `json:"payment_method"`
	SpecialRequests string             `json:"special_requests,omitempty"`
	TotalPrice      int64              `json:"total_price"`
	TotalDisplay    string             `json:"total_display"`
	BookingDate     string             `json:"booking_date"`
	Status          string             `json:"status"`
	PaymentStatus   string             `json:"payment_status"`
}

// GroupedBookingsResponse is the shape the bookings screen tabs over.
type GroupedBookingsResponse struct {
	Upcoming  []BookingResponse `json:"upcoming"`
	Completed []BookingResponse `json:"completed"`
	Cancelled []BookingResponse `json:"cancelled"`
}
