package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudpillers-api/internal/auth"
	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/middleware"
	"cloudpillers-api/internal/service"
	"cloudpillers-api/internal/validator"
)

func TestBlogHandler_GetBySlug(t *testing.T) {
	t.Run("returns published post", func(t *testing.T) {
		svc := &stubBlogService{
			getBySlug: func(_ context.Context, s string) (*domain.BlogPost, error) {
				assert.Equal(t, "zero-downtime-deploys", s)
				return &domain.BlogPost{ID: "p1", Title: "Zero Downtime Deploys", Slug: s, Views: 7}, nil
			},
		}
		handler := NewBlogHandler(svc, validator.NewValidator())
		router := gin.New()
		router.GET("/api/v1/blog/:slug", handler.GetBySlug)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/blog/zero-downtime-deploys", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"views":7`)
	})

	t.Run("unknown slug yields 404", func(t *testing.T) {
		svc := &stubBlogService{
			getBySlug: func(_ context.Context, _ string) (*domain.BlogPost, error) {
				return nil, domain.ErrNotFound
			},
		}
		handler := NewBlogHandler(svc, validator.NewValidator())
		router := gin.New()
		router.GET("/api/v1/blog/:slug", handler.GetBySlug)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/blog/nope", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Blog post not found")
	})
}

func TestBlogHandler_ListPublished(t *testing.T) {
	svc := &stubBlogService{
		listPublished: func(_ context.Context, category, search string, page, limit int) ([]domain.BlogPost, service.PageInfo, error) {
			assert.Equal(t, "devops", category)
			assert.Equal(t, "kubernetes", search)
			assert.Equal(t, 2, page)
			assert.Equal(t, 5, limit)
			return []domain.BlogPost{{ID: "p1"}}, service.PageInfo{Page: 2, Pages: 3, Total: 11}, nil
		},
	}
	handler := NewBlogHandler(svc, validator.NewValidator())
	router := gin.New()
	router.GET("/api/v1/blog", handler.ListPublished)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/blog?category=devops&search=kubernetes&page=2&limit=5", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Total   int  `json:"total"`
		Page    int  `json:"page"`
		Pages   int  `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, 11, response.Total)
	assert.Equal(t, 2, response.Page)
	assert.Equal(t, 3, response.Pages)
}

func TestBlogHandler_Create(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue("author-1", "editor")
	require.NoError(t, err)

	t.Run("stamps authenticated author", func(t *testing.T) {
		svc := &stubBlogService{
			create: func(_ context.Context, post *domain.BlogPost) error {
				assert.Equal(t, "author-1", post.AuthorID)
				post.ID = "p1"
				post.Slug = "shipping-faster"
				return nil
			},
		}
		handler := NewBlogHandler(svc, validator.NewValidator())
		router := gin.New()
		router.POST("/api/v1/blog/admin", middleware.RequireAuth(issuer), handler.Create)

		w := postJSON(t, router, "/api/v1/blog/admin", gin.H{
			"title":   "Shipping Faster",
			"content": "Release engineering notes.",
		}, token)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "shipping-faster")
	})

	t.Run("rejects missing title", func(t *testing.T) {
		handler := NewBlogHandler(&stubBlogService{}, validator.NewValidator())
		router := gin.New()
		router.POST("/api/v1/blog/admin", middleware.RequireAuth(issuer), handler.Create)

		w := postJSON(t, router, "/api/v1/blog/admin", gin.H{"content": "body only"}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBlogHandler_Update(t *testing.T) {
	existing := &domain.BlogPost{
		ID:       "p1",
		Title:    "Original Title",
		Slug:     "original-title",
		Content:  "Original body.",
		AuthorID: "author-1",
		Category: domain.BlogCategoryGeneral,
	}

	var saved *domain.BlogPost
	svc := &stubBlogService{
		getByID: func(_ context.Context, id string) (*domain.BlogPost, error) {
			post := *existing
			return &post, nil
		},
		update: func(_ context.Context, post *domain.BlogPost) error {
			saved = post
			return nil
		},
	}
	handler := NewBlogHandler(svc, validator.NewValidator())
	router := gin.New()
	router.PUT("/api/v1/blog/admin/:id", handler.Update)

	w := putJSON(t, router, "/api/v1/blog/admin/"+uuid.New().String(), gin.H{
		"title": "Renamed Title",
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, saved)
	assert.Equal(t, "Renamed Title", saved.Title)
	assert.Equal(t, "original-title", saved.Slug, "slug must survive title edits")
	assert.Equal(t, "Original body.", saved.Content, "omitted fields keep stored values")
	assert.Equal(t, "author-1", saved.AuthorID)
}

func TestBlogHandler_Delete(t *testing.T) {
	svc := &stubBlogService{
		deleteFn: func(_ context.Context, _ string) error { return nil },
	}
	handler := NewBlogHandler(svc, validator.NewValidator())
	router := gin.New()
	router.DELETE("/api/v1/blog/admin/:id", handler.Delete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/blog/admin/"+uuid.New().String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":{}`)
}

func TestBlogHandler_Publish(t *testing.T) {
	now := time.Now()
	svc := &stubBlogService{
		publish: func(_ context.Context, id string) (*domain.BlogPost, error) {
			return &domain.BlogPost{ID: id, Published: true, PublishedAt: &now}, nil
		},
	}
	handler := NewBlogHandler(svc, validator.NewValidator())
	router := gin.New()
	router.POST("/api/v1/blog/admin/:id/publish", handler.Publish)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog/admin/"+uuid.New().String()+"/publish", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"published":true`)
}
