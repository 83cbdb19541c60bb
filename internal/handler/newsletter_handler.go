package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/service"
	"cloudpillers-api/internal/validator"
)

// NewsletterHandler handles newsletter subscription requests.
type NewsletterHandler struct {
	newsletter service.NewsletterServiceInterface
	validator  *validator.Validator
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(newsletter service.NewsletterServiceInterface, v *validator.Validator) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter, validator: v}
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Subscribe handles POST /api/v1/newsletter
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.validator.ValidateSubscriber(&domain.Subscriber{Email: req.Email}); err != nil {
		respondError(c, err, "")
		return
	}

	subscriber, err := h.newsletter.Subscribe(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondDataMessage(c, http.StatusCreated, subscriber, "Successfully subscribed to newsletter!")
}

// Unsubscribe handles POST /api/v1/newsletter/unsubscribe
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req subscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.validator.ValidateSubscriber(&domain.Subscriber{Email: req.Email}); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.newsletter.Unsubscribe(c.Request.Context(), req.Email); err != nil {
		respondError(c, err, "Email not found")
		return
	}
	respondMessage(c, http.StatusOK, "Successfully unsubscribed from newsletter")
}
