package service

import (
	"context"

	"github.com/gosimple/slug"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/listing"
	"cloudpillers-api/internal/logger"
	"cloudpillers-api/internal/metrics"
	"cloudpillers-api/internal/repository"
)

// BlogService implements blog post operations. The slug is derived from
// the title once at creation and kept stable across title edits.
type BlogService struct {
	posts repository.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(posts repository.BlogRepository) *BlogService {
	return &BlogService{posts: posts}
}

// Create derives the slug from the title and stores the post.
func (s *BlogService) Create(ctx context.Context, post *domain.BlogPost) error {
	post.Slug = slug.Make(post.Title)
	if post.Category == "" {
		post.Category = domain.BlogCategoryGeneral
	}
	return s.posts.Create(ctx, post)
}

// Update saves edits to an existing post. The slug is left untouched.
func (s *BlogService) Update(ctx context.Context, post *domain.BlogPost) error {
	return s.posts.Update(ctx, post)
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

// GetByID retrieves a post regardless of publication state.
func (s *BlogService) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.posts.GetByID(ctx, id)
}

// GetBySlug returns a published post and counts the read. The view
// counter update is best-effort; a failure does not block the response.
func (s *BlogService) GetBySlug(ctx context.Context, slugStr string) (*domain.BlogPost, error) {
	post, err := s.posts.GetPublishedBySlug(ctx, slugStr)
	if err != nil {
		return nil, err
	}

	if err := s.posts.IncrementViews(ctx, post.ID); err != nil {
		logger.Warn("Failed to increment post views", "post_id", post.ID, "error", err)
	} else {
		post.Views++
		metrics.BlogPostViewsTotal.Inc()
	}
	return post, nil
}

// ListPublished returns one page of published posts, optionally filtered
// by category and a title/content search term.
func (s *BlogService) ListPublished(ctx context.Context, category, search string, page, limit int) ([]domain.BlogPost, PageInfo, error) {
	page, limit = normalizePage(page, limit)

	posts, total, err := s.posts.ListPublished(ctx, category, search, limit, (page-1)*limit)
	if err != nil {
		return nil, PageInfo{}, err
	}
	return posts, PageInfo{Page: page, Pages: listing.Pages(total, limit), Total: total}, nil
}

// ListAll returns every post, drafts included, for the admin panel.
func (s *BlogService) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	return s.posts.ListAll(ctx)
}

// Publish marks a post published and stamps the publication time.
func (s *BlogService) Publish(ctx context.Context, id string) (*domain.BlogPost, error) {
	return s.posts.Publish(ctx, id)
}
