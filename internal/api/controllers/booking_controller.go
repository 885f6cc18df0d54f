package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"tassili/internal/models/request_models"
	"tassili/internal/services"
	"tassili/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
	voucherService services.VoucherServiceInterface
}

func NewBookingController(
	bookingService services.BookingServiceInterface,
	voucherService services.VoucherServiceInterface,
) *BookingController {
	return &BookingController{
		bookingService: bookingService,
		voucherService: voucherService,
	}
}

// StartDraft godoc
// @Summary Start a booking draft
// @Description Opens the booking wizard for a trip with one default traveler
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.StartDraftRequest true "Trip to book"
// @Success 200 {object} response_models.DraftResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/drafts [post]
func (b *BookingController) StartDraft(c *gin.Context) {
	var req request_models.StartDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "TripID is required")
		return
	}

	draft, err := b.bookingService.StartDraft(c.Request.Context(), c.GetString("user_id"), req.TripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Booking draft started")
}

// GetDraft godoc
// @Summary Get a booking draft
// @Tags Bookings
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response_models.DraftResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId} [get]
func (b *BookingController) GetDraft(c *gin.Context) {
	draft, err := b.bookingService.GetDraft(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Draft fetched successfully")
}

// AddTraveler godoc
// @Summary Add a traveler to a draft
// @Description Appends a traveler with default age 30; rejected once the roster holds 6
// @Tags Bookings
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response_models.DraftResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId}/travelers [post]
func (b *BookingController) AddTraveler(c *gin.Context) {
	draft, err := b.bookingService.AddTraveler(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Traveler added")
}

// RemoveTraveler godoc
// @Summary Remove a traveler from a draft
// @Description Rejected when only one traveler remains
// @Tags Bookings
// @Produce json
// @Param draftId path string true "Draft ID"
// @Param travelerId path string true "Traveler ID"
// @Success 200 {object} response_models.DraftResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId}/travelers/{travelerId} [delete]
func (b *BookingController) RemoveTraveler(c *gin.Context) {
	draft, err := b.bookingService.RemoveTraveler(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"), c.Param("travelerId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Traveler removed")
}

// UpdateTraveler godoc
// @Summary Update one field of a traveler
// @Tags Bookings
// @Accept json
// @Produce json
// @Param draftId path string true "Draft ID"
// @Param travelerId path string true "Traveler ID"
// @Param request body request_models.UpdateTravelerRequest true "Field and value"
// @Success 200 {object} response_models.DraftResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId}/travelers/{travelerId} [put]
func (b *BookingController) UpdateTraveler(c *gin.Context) {
	var req request_models.UpdateTravelerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Field and value are required")
		return
	}

	draft, err := b.bookingService.UpdateTraveler(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"), c.Param("travelerId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Traveler updated")
}

// UpdateDetails godoc
// @Summary Update draft dates, payment method and special requests
// @Tags Bookings
// @Accept json
// @Produce json
// @Param draftId path string true "Draft ID"
// @Param request body request_models.UpdateDraftDetailsRequest true "Draft details"
// @Success 200 {object} response_models.DraftResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId}/details [put]
func (b *BookingController) UpdateDetails(c *gin.Context) {
	var req request_models.UpdateDraftDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	draft, err := b.bookingService.UpdateDetails(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Draft updated")
}

// NextStep godoc
// @Summary Advance the wizard one step
// @Tags Bookings
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response_models.DraftResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId}/next [post]
func (b *BookingController) NextStep(c *gin.Context) {
	draft, err := b.bookingService.NextStep(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, draft, "Moved to next step")
}

// BackStep godoc
// @Summary Step the wizard back
// @Description From step one this cancels and discards the draft
// @Tags Bookings
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response_models.DraftResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId}/back [post]
func (b *BookingController) BackStep(c *gin.Context) {
	draft, cancelled, err := b.bookingService.BackStep(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if cancelled {
		utils.RespondSuccess(c, nil, "Draft cancelled")
		return
	}
	utils.RespondSuccess(c, draft, "Moved to previous step")
}

// Confirm godoc
// @Summary Confirm the booking
// @Description Finalizes the draft at step three into a persisted booking
// @Tags Bookings
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response_models.BookingResponse
// @Failure 503 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/drafts/{draftId}/confirm [post]
func (b *BookingController) Confirm(c *gin.Context) {
	booking, err := b.bookingService.Confirm(c.Request.Context(), c.GetString("user_id"), c.Param("draftId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking confirmed")
}

// ListBookings godoc
// @Summary List the user's bookings grouped by status
// @Tags Bookings
// @Produce json
// @Success 200 {object} response_models.GroupedBookingsResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	bookings, err := b.bookingService.ListBookings(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// GetBooking godoc
// @Summary Get one booking
// @Tags Bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response_models.BookingResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [get]
func (b *BookingController) GetBooking(c *gin.Context) {
	booking, err := b.bookingService.GetBooking(c.Request.Context(), c.GetString("user_id"), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Tags Bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response_models.BookingResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/cancel [post]
func (b *BookingController) CancelBooking(c *gin.Context) {
	booking, err := b.bookingService.CancelBooking(c.Request.Context(), c.GetString("user_id"), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, booking, "Booking cancelled")
}

// DownloadVoucher godoc
// @Summary Download the booking voucher PDF
// @Tags Bookings
// @Produce application/pdf
// @Param bookingId path string true "Booking ID"
// @Success 200 {file} binary
// @Security BearerAuth
// @Router /bookings/{bookingId}/voucher [get]
func (b *BookingController) DownloadVoucher(c *gin.Context) {
	booking, err := b.bookingService.GetBooking(c.Request.Context(), c.GetString("user_id"), c.Param("bookingId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := b.voucherService.GenerateVoucher(booking)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", booking.Reference))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
