package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
	"cloudpillers-api/internal/validator"
)

// TestimonialHandler handles testimonial requests, public and admin.
type TestimonialHandler struct {
	testimonials repository.TestimonialRepository
	validator    *validator.Validator
}

// NewTestimonialHandler creates a new TestimonialHandler.
func NewTestimonialHandler(testimonials repository.TestimonialRepository, v *validator.Validator) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials, validator: v}
}

// List handles GET /api/v1/testimonials - enabled entries only,
// optionally narrowed to featured ones with ?featured=true.
func (h *TestimonialHandler) List(c *gin.Context) {
	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		val, err := strconv.ParseBool(raw)
		if err != nil {
			respondFail(c, http.StatusBadRequest, "featured must be true or false")
			return
		}
		featured = &val
	}

	testimonials, err := h.testimonials.List(c.Request.Context(), true, featured)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, testimonials)
}

// ListAdmin handles GET /api/v1/testimonials/admin - every entry.
func (h *TestimonialHandler) ListAdmin(c *gin.Context) {
	testimonials, err := h.testimonials.List(c.Request.Context(), false, nil)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, testimonials)
}

// Get handles GET /api/v1/testimonials/:id (admin only)
func (h *TestimonialHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	testimonial, err := h.testimonials.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Testimonial not found")
		return
	}
	respondData(c, http.StatusOK, testimonial)
}

// Create handles POST /api/v1/testimonials (admin only)
func (h *TestimonialHandler) Create(c *gin.Context) {
	testimonial := domain.Testimonial{Rating: 5, Enabled: true}
	if !bindJSON(c, &testimonial) {
		return
	}
	if err := h.validator.ValidateTestimonial(&testimonial); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.testimonials.Create(c.Request.Context(), &testimonial); err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, testimonial)
}

// Update handles PUT /api/v1/testimonials/:id (admin only). Fields
// missing from the payload keep their stored values.
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.testimonials.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Testimonial not found")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}
	updated.ID = existing.ID

	if err := h.validator.ValidateTestimonial(&updated); err != nil {
		respondError(c, err, "")
		return
	}
	if err := h.testimonials.Update(c.Request.Context(), &updated); err != nil {
		respondError(c, err, "Testimonial not found")
		return
	}
	respondData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/testimonials/:id (admin only)
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.testimonials.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Testimonial not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
