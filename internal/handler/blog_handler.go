package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/middleware"
	"cloudpillers-api/internal/service"
	"cloudpillers-api/internal/validator"
)

// BlogHandler handles blog post requests, public and admin.
type BlogHandler struct {
	blog      service.BlogServiceInterface
	validator *validator.Validator
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blog service.BlogServiceInterface, v *validator.Validator) *BlogHandler {
	return &BlogHandler{blog: blog, validator: v}
}

// ListPublished handles GET /api/v1/blog
func (h *BlogHandler) ListPublished(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, pageInfo, err := h.blog.ListPublished(c.Request.Context(), c.Query("category"), c.Query("search"), page, limit)
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondPage(c, posts, pageInfo)
}

// GetBySlug handles GET /api/v1/blog/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Blog post not found")
		return
	}
	respondData(c, http.StatusOK, post)
}

// ListAll handles GET /api/v1/blog/admin
func (h *BlogHandler) ListAll(c *gin.Context) {
	posts, err := h.blog.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	respondList(c, posts)
}

// Create handles POST /api/v1/blog/admin. The authenticated user becomes
// the post author.
func (h *BlogHandler) Create(c *gin.Context) {
	var post domain.BlogPost
	if !bindJSON(c, &post) {
		return
	}
	if err := h.validator.ValidateBlogPost(&post); err != nil {
		respondError(c, err, "")
		return
	}

	post.AuthorID = middleware.ClaimsFrom(c).UserID
	if err := h.blog.Create(c.Request.Context(), &post); err != nil {
		respondError(c, err, "")
		return
	}
	respondData(c, http.StatusCreated, post)
}

// Update handles PUT /api/v1/blog/admin/:id. Fields missing from the
// payload keep their stored values; the slug never changes.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existing, err := h.blog.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Blog post not found")
		return
	}

	updated := *existing
	if !bindJSON(c, &updated) {
		return
	}
	updated.ID = existing.ID
	updated.Slug = existing.Slug
	updated.AuthorID = existing.AuthorID

	if err := h.validator.ValidateBlogPost(&updated); err != nil {
		respondError(c, err, "")
		return
	}
	if err := h.blog.Update(c.Request.Context(), &updated); err != nil {
		respondError(c, err, "Blog post not found")
		return
	}
	respondData(c, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/blog/admin/:id (admin only)
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.blog.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Blog post not found")
		return
	}
	respondData(c, http.StatusOK, gin.H{})
}

// Publish handles POST /api/v1/blog/admin/:id/publish
func (h *BlogHandler) Publish(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.blog.Publish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Blog post not found")
		return
	}
	respondData(c, http.StatusOK, post)
}
