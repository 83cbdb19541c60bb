package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/service"
	"cloudpillers-api/internal/validator"
)

// AssessmentHandler handles free-assessment submissions and review.
type AssessmentHandler struct {
	leads     service.LeadServiceInterface
	validator *validator.Validator
}

// NewAssessmentHandler creates a new AssessmentHandler.
func NewAssessmentHandler(leads service.LeadServiceInterface, v *validator.Validator) *AssessmentHandler {
	return &AssessmentHandler{leads: leads, validator: v}
}

// Create handles POST /api/v1/assessment
func (h *AssessmentHandler) Create(c *gin.Context) {
	var assessment domain.Assessment
	if !bindJSON(c, &assessment) {
		return
	}
	if err := h.validator.ValidateAssessment(&assessment); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.leads.CreateAssessment(c.Request.Context(), &assessment); err != nil {
		respondError(c, err, "")
		return
	}
	respondDataMessage(c, http.StatusCreated, assessment, "Thank you! Your assessment request has been received. We will contact you within 24 hours.")
}

// List handles GET /api/v1/admin/assessments
func (h *AssessmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	assessments, pageInfo, err := h.leads.ListAssessments(c.Request.Context(), c.Query("filter"), page, limit)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondPage(c, assessments, pageInfo)
}

// Get handles GET /api/v1/admin/assessments/:id
func (h *AssessmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	assessment, err := h.leads.GetAssessment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Assessment not found")
		return
	}
	respondData(c, http.StatusOK, assessment)
}
