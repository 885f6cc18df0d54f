package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service-level sentinel errors onto HTTP statuses.
// Validation errors stay 4xx with the user-facing message; anything unknown
// is logged and collapsed into a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrDraftNotFound),
		errors.Is(err, ErrTravelerNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRosterFull),
		errors.Is(err, ErrRosterMinimum),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrBookingNotCancellable):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrTravelerNameEmpty),
		errors.Is(err, ErrInvalidTravelerField),
		errors.Is(err, ErrInvalidStep),
		errors.Is(err, ErrInvalidOtpToken),
		errors.Is(err, ErrTooManyInterests),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrDraftNotOwned):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrPersistenceUnavailable),
		errors.Is(err, ErrStorageUnavailable):
		log.Printf("Persistence unavailable: %v", err)
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
