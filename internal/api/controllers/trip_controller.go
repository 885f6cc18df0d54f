package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"tassili/internal/services"
	"tassili/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// ListTrips godoc
// @Summary List catalog trips
// @Description Fetch a paginated list of trips, optionally filtered by category
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Param category query string false "Category filter (Desert, Beach, City, Mountain, Cultural)"
// @Success 200 {array} response_models.TripResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	page, pageSize, ok := paging(c)
	if !ok {
		return
	}

	category := c.Query("category")

	trips, err := t.tripService.ListTrips(c.Request.Context(), page, pageSize, category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// ListAgencyPackages godoc
// @Summary List agency packages
// @Description Third-party agency offers, normalized into the trip shape
// @Tags Trips
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {array} response_models.TripResponse
// @Router /trips/agency-packages [get]
func (t *TripController) ListAgencyPackages(c *gin.Context) {
	page, pageSize, ok := paging(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListAgencyPackages(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Agency packages fetched successfully")
}

// GetTripById godoc
// @Summary Get trip details by ID
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [get]
func (t *TripController) GetTripById(c *gin.Context) {
	tripId := c.Param("tripId")
	if tripId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	trip, err := t.tripService.GetTripById(c.Request.Context(), tripId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

func paging(c *gin.Context) (page int, pageSize int, ok bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err = strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}
	return page, pageSize, true
}
