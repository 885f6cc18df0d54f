package utils

import "errors"

var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrDraftNotFound         = errors.New("booking draft not found")
	ErrTravelerNotFound      = errors.New("traveler not found in draft")
	ErrRosterFull            = errors.New("you can book for up to 6 travelers")
	ErrRosterMinimum         = errors.New("at least one traveler is required")
	ErrTravelerNameEmpty     = errors.New("traveler full name is required")
	ErrInvalidTravelerField  = errors.New("invalid traveler field or value")
	ErrInvalidStep           = errors.New("invalid wizard step for this operation")
	ErrDraftNotOwned         = errors.New("draft belongs to another account")
	ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOtpToken    = errors.New("invalid or expired otp token")
	ErrTooManyInterests   = errors.New("you can select up to 8 interests")

	ErrInvalidPage            = errors.New("invalid page parameter")
	ErrInvalidPageSize        = errors.New("invalid page size parameter")
	ErrDatabaseError          = errors.New("database error")
	ErrPersistenceUnavailable = errors.New("booking could not be saved, please try again")
	ErrStorageUnavailable     = errors.New("photo storage unavailable")
)
