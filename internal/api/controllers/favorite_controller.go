package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tassili/internal/models/request_models"
	"tassili/internal/services"
	"tassili/pkg/utils"
)

type FavoriteController struct {
	favoriteService services.FavoriteServiceInterface
}

func NewFavoriteController(favoriteService services.FavoriteServiceInterface) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// ToggleFavorite godoc
// @Summary Toggle a trip in the user's favorites
// @Tags Favorites
// @Accept json
// @Produce json
// @Param request body request_models.ToggleFavoriteRequest true "Trip to toggle"
// @Success 200 {object} response_models.ToggleFavoriteResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /favorites/toggle [post]
func (f *FavoriteController) ToggleFavorite(c *gin.Context) {
	var req request_models.ToggleFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "TripID is required")
		return
	}

	result, err := f.favoriteService.ToggleFavorite(c.Request.Context(), c.GetString("user_id"), req.TripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Favorite toggled")
}

// ListFavorites godoc
// @Summary List the user's favorite trips
// @Tags Favorites
// @Produce json
// @Success 200 {array} response_models.TripResponse
// @Security BearerAuth
// @Router /favorites [get]
func (f *FavoriteController) ListFavorites(c *gin.Context) {
	trips, err := f.favoriteService.ListFavorites(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, trips, "Favorites fetched successfully")
}

// FavoritesSummary godoc
// @Summary Summarize the user's favorites
// @Tags Favorites
// @Produce json
// @Success 200 {object} response_models.FavoritesSummaryResponse
// @Security BearerAuth
// @Router /favorites/summary [get]
func (f *FavoriteController) FavoritesSummary(c *gin.Context) {
	summary, err := f.favoriteService.Summary(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, summary, "Favorites summary fetched successfully")
}
