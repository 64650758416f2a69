package handlers

import (
	"net/http"

	"github.com/applytrack/applytrack/internal/dtos"
	"github.com/applytrack/applytrack/internal/services"
	"github.com/gin-gonic/gin"
)

// BulletHandler fronts the resume bullet generator.
type BulletHandler struct {
	LLMService *services.LLMService
}

func NewBulletHandler(llm *services.LLMService) *BulletHandler {
	return &BulletHandler{
		LLMService: llm,
	}
}

// GenerateBullets is the POST /generate-bullets endpoint
func (h *BulletHandler) GenerateBullets(c *gin.Context) {
	var req dtos.BulletGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description is required"})
		return
	}
	if h.LLMService == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API key not configured"})
		return
	}
	bullets, err := h.LLMService.GenerateBullets(c.Request.Context(), req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate bullets: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bullets": bullets})
}
