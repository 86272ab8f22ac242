package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bleau-backend/internal/detect"
	"bleau-backend/internal/models"
)

type DetectHandler struct {
	service *detect.Service
}

func NewDetectHandler(service *detect.Service) *DetectHandler {
	return &DetectHandler{service: service}
}

// DetectURL classifies the content behind a URL as AI-generated or human.
// The response body is always a full detection result so the client can
// render the failure modes too.
func (h *DetectHandler) DetectURL(c *gin.Context) {
	var req models.DetectURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, detect.Failure("No URL provided", "Please provide a valid URL", "text", ""))
		return
	}

	result, status := h.service.DetectURL(c.Request.Context(), req.URL)
	c.JSON(status, result)
}

// DetectText classifies pasted text directly.
func (h *DetectHandler) DetectText(c *gin.Context) {
	var req models.DetectTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		result, status := h.service.DetectText(c.Request.Context(), "")
		c.JSON(status, result)
		return
	}

	result, status := h.service.DetectText(c.Request.Context(), req.Text)
	c.JSON(status, result)
}
