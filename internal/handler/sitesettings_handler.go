package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/repository"
)

// SiteSettingsHandler handles the site settings singleton.
type SiteSettingsHandler struct {
	settings repository.SiteSettingsRepository
}

// NewSiteSettingsHandler creates a new SiteSettingsHandler.
func NewSiteSettingsHandler(settings repository.SiteSettingsRepository) *SiteSettingsHandler {
	return &SiteSettingsHandler{settings: settings}
}

// Get handles GET /api/v1/settings. Defaults are created on first
// access, so this never 404s.
func (h *SiteSettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, settings)
}

// Update handles PUT /api/v1/settings (admin only). Fields missing from
// the payload keep their stored values.
func (h *SiteSettingsHandler) Update(c *gin.Context) {
	existing, err := h.settings.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}

	settings, err := h.settings.Update(c.Request.Context(), &updated)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, settings)
}
