package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tassili/internal/models/request_models"
	"tassili/internal/services"
	"tassili/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{assistantService: assistantService}
}

// SendMessage godoc
// @Summary Send a message to the travel assistant
// @Description Returns either a text reply or a trip card
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.AssistantMessageRequest true "User message"
// @Success 200 {object} response_models.AssistantReply
// @Router /assistant/messages [post]
func (a *AssistantController) SendMessage(c *gin.Context) {
	var req request_models.AssistantMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Message text is required")
		return
	}

	reply, err := a.assistantService.Reply(c.Request.Context(), req.Text)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, reply, "Reply generated")
}

// QuickSuggestions godoc
// @Summary Fetch the assistant quick suggestion chips
// @Tags Assistant
// @Produce json
// @Success 200 {array} string
// @Router /assistant/suggestions [get]
func (a *AssistantController) QuickSuggestions(c *gin.Context) {
	utils.RespondSuccess(c, a.assistantService.QuickSuggestions(), "Suggestions fetched successfully")
}
