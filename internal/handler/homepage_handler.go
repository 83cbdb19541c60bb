package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/repository"
)

// HomepageHandler handles the homepage content singleton.
type HomepageHandler struct {
	homepage repository.HomepageRepository
}

// NewHomepageHandler creates a new HomepageHandler.
func NewHomepageHandler(homepage repository.HomepageRepository) *HomepageHandler {
	return &HomepageHandler{homepage: homepage}
}

// Get handles GET /api/v1/homepage. Default content is created on first
// access, so this never 404s.
func (h *HomepageHandler) Get(c *gin.Context) {
	content, err := h.homepage.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, content)
}

// Update handles PUT /api/v1/homepage (admin only). Sections missing
// from the payload keep their stored values.
func (h *HomepageHandler) Update(c *gin.Context) {
	existing, err := h.homepage.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}

	content, err := h.homepage.Update(c.Request.Context(), &updated)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, content)
}
