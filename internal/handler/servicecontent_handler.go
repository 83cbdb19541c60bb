package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
	"cloudpillers-api/internal/validator"
)

// ServiceContentHandler handles service page content, addressed by
// service ID rather than record ID.
type ServiceContentHandler struct {
	content   repository.ServiceContentRepository
	validator *validator.Validator
}

// NewServiceContentHandler creates a new ServiceContentHandler.
func NewServiceContentHandler(content repository.ServiceContentRepository, v *validator.Validator) *ServiceContentHandler {
	return &ServiceContentHandler{content: content, validator: v}
}

func serviceIDParam(c *gin.Context) (string, bool) {
	serviceID := c.Param("serviceId")
	if !domain.IsValidServiceID(serviceID) {
		respondFail(c, http.StatusBadRequest, "Unknown service id")
		return "", false
	}
	return serviceID, true
}

// List handles GET /api/v1/services/content
func (h *ServiceContentHandler) List(c *gin.Context) {
	contents, err := h.content.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, contents)
}

// Get handles GET /api/v1/services/content/:serviceId
func (h *ServiceContentHandler) Get(c *gin.Context) {
	serviceID, ok := serviceIDParam(c)
	if !ok {
		return
	}

	content, err := h.content.GetByServiceID(c.Request.Context(), serviceID)
	if err != nil {
		respondError(c, err, "Service content not found")
		return
	}
	respondData(c, http.StatusOK, content)
}

// Create handles POST /api/v1/services/content (admin only)
func (h *ServiceContentHandler) Create(c *gin.Context) {
	var content domain.ServiceContent
	if !bindJSON(c, &content) {
		return
	}
	if err := h.validator.ValidateServiceContent(&content); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.content.Create(c.Request.Context(), &content); err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, content)
}

// Update handles PUT /api/v1/services/content/:serviceId (admin only).
// The page must already exist; fields missing from the payload keep
// their stored values.
func (h *ServiceContentHandler) Update(c *gin.Context) {
	serviceID, ok := serviceIDParam(c)
	if !ok {
		return
	}

	existing, err := h.content.GetByServiceID(c.Request.Context(), serviceID)
	if err != nil {
		respondError(c, err, "Service content not found")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}
	updated.ServiceID = serviceID

	if err := h.validator.ValidateServiceContent(&updated); err != nil {
		respondError(c, err, "")
		return
	}

	content, err := h.content.Upsert(c.Request.Context(), &updated)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusOK, content)
}

// Delete handles DELETE /api/v1/services/content/:serviceId (admin only)
func (h *ServiceContentHandler) Delete(c *gin.Context) {
	serviceID, ok := serviceIDParam(c)
	if !ok {
		return
	}

	if err := h.content.Delete(c.Request.Context(), serviceID); err != nil {
		respondError(c, err, "Service content not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
