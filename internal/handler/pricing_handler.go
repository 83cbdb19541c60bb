package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
	"cloudpillers-api/internal/validator"
)

// PricingHandler handles pricing plan requests, public and admin.
type PricingHandler struct {
	plans     repository.PricingRepository
	validator *validator.Validator
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(plans repository.PricingRepository, v *validator.Validator) *PricingHandler {
	return &PricingHandler{plans: plans, validator: v}
}

// List handles GET /api/v1/pricing - enabled plans only.
func (h *PricingHandler) List(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, plans)
}

// ListAdmin handles GET /api/v1/pricing/admin - every plan.
func (h *PricingHandler) ListAdmin(c *gin.Context) {
	plans, err := h.plans.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, plans)
}

// Get handles GET /api/v1/pricing/:id (admin only)
func (h *PricingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	plan, err := h.plans.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Pricing plan not found")
		return
	}
	respondData(c, http.StatusOK, plan)
}

// Create handles POST /api/v1/pricing (admin only)
func (h *PricingHandler) Create(c *gin.Context) {
	plan := domain.PricingPlan{
		Currency: "USD",
		Period:   domain.PlanPeriodMonthly,
		CTAText:  "Get Started",
		Enabled:  true,
	}
	if !bindJSON(c, &plan) {
		return
	}
	if err := h.validator.ValidatePricingPlan(&plan); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.plans.Create(c.Request.Context(), &plan); err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, plan)
}

// Update handles PUT /api/v1/pricing/:id (admin only). Fields missing
// from the payload keep their stored values.
func (h *PricingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.plans.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Pricing plan not found")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}
	updated.ID = existing.ID

	if err := h.validator.ValidatePricingPlan(&updated); err != nil {
		respondError(c, err, "")
		return
	}
	if err := h.plans.Update(c.Request.Context(), &updated); err != nil {
		respondError(c, err, "Pricing plan not found")
		return
	}
	respondData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/pricing/:id (admin only)
func (h *PricingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.plans.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Pricing plan not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
