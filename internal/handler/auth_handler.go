package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/middleware"
	"cloudpillers-api/internal/service"
	"cloudpillers-api/internal/validator"
)

// AuthHandler handles admin account and session requests.
type AuthHandler struct {
	authService service.AuthServiceInterface
	validator   *validator.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthServiceInterface, v *validator.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, validator: v}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userPayload is the account projection returned by auth endpoints.
type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toUserPayload(u *domain.User) userPayload {
	return userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// Login handles POST /api/v1/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		respondFail(c, http.StatusBadRequest, "Please provide an email and password")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"data":    toUserPayload(user),
	})
}

// Register handles POST /api/v1/admin/register (admin only)
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate := &domain.User{Name: req.Name, Email: req.Email, Role: req.Role}
	if err := h.validator.ValidateUser(candidate); err != nil {
		respondError(c, err, "")
		return
	}
	if err := h.validator.ValidatePassword(req.Password); err != nil {
		respondError(c, err, "")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, toUserPayload(user))
}

// Me handles GET /api/v1/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	user, err := h.authService.GetUser(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	respondData(c, http.StatusOK, toUserPayload(user))
}

// Logout handles GET /api/v1/admin/logout. Tokens are stateless; the
// client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	respondData(c, http.StatusOK, gin.H{})
}

// ListUsers handles GET /api/v1/admin/users (admin only)
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	payload := make([]userPayload, 0, len(users))
	for i := range users {
		payload = append(payload, toUserPayload(&users[i]))
	}
	respondList(c, payload)
}

// DeleteUser handles DELETE /api/v1/admin/users/:id (admin only)
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	claims := middleware.ClaimsFrom(c)
	if err := h.authService.DeleteUser(c.Request.Context(), claims.UserID, id); err != nil {
		respondError(c, err, "User not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}
