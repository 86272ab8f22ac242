package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bleau-backend/internal/checkout"
	"bleau-backend/internal/models"
)

type CheckoutHandler struct {
	client *checkout.Client
}

func NewCheckoutHandler(client *checkout.Client) *CheckoutHandler {
	return &CheckoutHandler{client: client}
}

// CreateSession starts a checkout for a plan. An unconfigured payment
// integration degrades to a fixed coming-soon message, not a failure.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	url, err := h.client.CreateSession(c.Request.Context(), req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error: "Payments coming soon! We're setting up Stripe.",
			})
		case errors.Is(err, checkout.ErrUnknownPlan):
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "price not configured"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error:   "payment error, please try again",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.CheckoutResponse{URL: url})
}
