package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ai "github.com/Yoavga19/barber/services/intelligence"
	"github.com/Yoavga19/barber/utils"
)

// AskRequest is the expected input structure for assistant questions.
type AskRequest struct {
	Message string `json:"message"`
}

// AIHandler proxies customer questions to the assistant service.
type AIHandler struct {
	Svc ai.AIService
}

func NewAIHandler(svc ai.AIService) *AIHandler {
	return &AIHandler{Svc: svc}
}

// HandleAsk handles POST /ask.
func (h *AIHandler) HandleAsk(c *gin.Context) {
	logger := utils.GetLogger()

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid ask request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if h.Svc == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing Gemini API key"})
		return
	}

	answer, err := h.Svc.Ask(c.Request.Context(), req.Message)
	if err != nil {
		logger.Error("Assistant call failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
