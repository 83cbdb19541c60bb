package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/service"
	"cloudpillers-api/internal/validator"
)

// ContactHandler handles contact form submissions and lead review.
type ContactHandler struct {
	leads     service.LeadServiceInterface
	validator *validator.Validator
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(leads service.LeadServiceInterface, v *validator.Validator) *ContactHandler {
	return &ContactHandler{leads: leads, validator: v}
}

// Create handles POST /api/v1/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var contact domain.Contact
	if !bindJSON(c, &contact) {
		return
	}
	if err := h.validator.ValidateContact(&contact); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.leads.CreateContact(c.Request.Context(), &contact); err != nil {
		respondError(c, err, "")
		return
	}
	respondDataMessage(c, http.StatusCreated, contact, "Thank you for contacting us! We will get back to you soon.")
}

// List handles GET /api/v1/admin/contacts
func (h *ContactHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	contacts, pageInfo, err := h.leads.ListContacts(c.Request.Context(), c.Query("filter"), page, limit)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondPage(c, contacts, pageInfo)
}

// Get handles GET /api/v1/admin/contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	contact, err := h.leads.GetContact(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Contact not found")
		return
	}
	respondData(c, http.StatusOK, contact)
}

// UpdateStatus handles PUT /api/v1/admin/contacts/:id
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.validator.ValidateContactStatus(req.Status); err != nil {
		respondError(c, err, "")
		return
	}

	contact, err := h.leads.UpdateContactStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Contact not found")
		return
	}
	respondData(c, http.StatusOK, contact)
}
