package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
	"cloudpillers-api/internal/validator"
)

// FAQHandler handles FAQ requests, public and admin.
type FAQHandler struct {
	faqs      repository.FAQRepository
	validator *validator.Validator
}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler(faqs repository.FAQRepository, v *validator.Validator) *FAQHandler {
	return &FAQHandler{faqs: faqs, validator: v}
}

// List handles GET /api/v1/faq - enabled entries only, optionally
// filtered by category.
func (h *FAQHandler) List(c *gin.Context) {
	faqs, err := h.faqs.List(c.Request.Context(), true, c.Query("category"))
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, faqs)
}

// ListAdmin handles GET /api/v1/faq/admin - every entry, disabled included.
func (h *FAQHandler) ListAdmin(c *gin.Context) {
	faqs, err := h.faqs.List(c.Request.Context(), false, "")
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, faqs)
}

// Get handles GET /api/v1/faq/:id
func (h *FAQHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	faq, err := h.faqs.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "FAQ not found")
		return
	}
	respondData(c, http.StatusOK, faq)
}

// Create handles POST /api/v1/faq (admin only)
func (h *FAQHandler) Create(c *gin.Context) {
	faq := domain.FAQ{Category: domain.FAQCategoryGeneral, Enabled: true}
	if !bindJSON(c, &faq) {
		return
	}
	if err := h.validator.ValidateFAQ(&faq); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.faqs.Create(c.Request.Context(), &faq); err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, faq)
}

// Update handles PUT /api/v1/faq/:id (admin only). Fields missing from
// the payload keep their stored values.
func (h *FAQHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.faqs.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "FAQ not found")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}
	updated.ID = existing.ID

	if err := h.validator.ValidateFAQ(&updated); err != nil {
		respondError(c, err, "")
		return
	}
	if err := h.faqs.Update(c.Request.Context(), &updated); err != nil {
		respondError(c, err, "FAQ not found")
		return
	}
	respondData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/faq/:id (admin only)
func (h *FAQHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.faqs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "FAQ not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
