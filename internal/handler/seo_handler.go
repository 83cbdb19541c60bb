package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
	"cloudpillers-api/internal/validator"
)

// SEOHandler handles per-page SEO settings, addressed by page path.
type SEOHandler struct {
	seo       repository.SEORepository
	validator *validator.Validator
}

// NewSEOHandler creates a new SEOHandler.
func NewSEOHandler(seo repository.SEORepository, v *validator.Validator) *SEOHandler {
	return &SEOHandler{seo: seo, validator: v}
}

// List handles GET /api/v1/seo (admin only)
func (h *SEOHandler) List(c *gin.Context) {
	settings, err := h.seo.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, settings)
}

// Get handles GET /api/v1/seo/:page. A missing entry is not an error;
// the client falls back to defaults when data is null.
func (h *SEOHandler) Get(c *gin.Context) {
	settings, err := h.seo.GetByPage(c.Request.Context(), c.Param("page"))
	if errors.Is(err, domain.ErrNotFound) {
		respondData(c, http.StatusOK, nil)
		return
	}
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, settings)
}

// Update handles PUT /api/v1/seo/:page (admin only). Creates the entry
// if it does not exist.
func (h *SEOHandler) Update(c *gin.Context) {
	var settings domain.SEOSettings
	if !bindJSON(c, &settings) {
		return
	}
	settings.Page = c.Param("page")

	if err := h.validator.ValidateSEOSettings(&settings); err != nil {
		respondError(c, err, "")
		return
	}

	stored, err := h.seo.Upsert(c.Request.Context(), &settings)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, stored)
}

// Delete handles DELETE /api/v1/seo/:page (admin only)
func (h *SEOHandler) Delete(c *gin.Context) {
	if err := h.seo.Delete(c.Request.Context(), c.Param("page")); err != nil {
		respondError(c, err, "SEO settings not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
