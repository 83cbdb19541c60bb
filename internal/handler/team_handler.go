package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/repository"
	"cloudpillers-api/internal/validator"
)

// TeamHandler handles team member requests, public and admin.
type TeamHandler struct {
	team      repository.TeamRepository
	validator *validator.Validator
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(team repository.TeamRepository, v *validator.Validator) *TeamHandler {
	return &TeamHandler{team: team, validator: v}
}

// List handles GET /api/v1/team - enabled members only.
func (h *TeamHandler) List(c *gin.Context) {
	members, err := h.team.List(c.Request.Context(), true)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, members)
}

// ListAdmin handles GET /api/v1/team/admin - every member.
func (h *TeamHandler) ListAdmin(c *gin.Context) {
	members, err := h.team.List(c.Request.Context(), false)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, members)
}

// Get handles GET /api/v1/team/:id (admin only)
func (h *TeamHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	member, err := h.team.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Team member not found")
		return
	}
	respondData(c, http.StatusOK, member)
}

// Create handles POST /api/v1/team (admin only)
func (h *TeamHandler) Create(c *gin.Context) {
	member := domain.TeamMember{Enabled: true}
	if !bindJSON(c, &member) {
		return
	}
	if err := h.validator.ValidateTeamMember(&member); err != nil {
		respondError(c, err, "")
		return
	}

	if err := h.team.Create(c.Request.Context(), &member); err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, member)
}

// Update handles PUT /api/v1/team/:id (admin only). Fields missing from
// the payload keep their stored values.
func (h *TeamHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.team.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Team member not found")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}
	updated.ID = existing.ID

	if err := h.validator.ValidateTeamMember(&updated); err != nil {
		respondError(c, err, "")
		return
	}
	if err := h.team.Update(c.Request.Context(), &updated); err != nil {
		respondError(c, err, "Team member not found")
		return
	}
	respondData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/team/:id (admin only)
func (h *TeamHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.team.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Team member not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
