package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresBlogRepository implements BlogRepository using PostgreSQL.
type PostgresBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBlogRepository creates a new PostgresBlogRepository.
func NewPostgresBlogRepository(pool *pgxpool.Pool) *PostgresBlogRepository {
	return &PostgresBlogRepository{pool: pool}
}

const blogColumns = `p.id, p.title, p.slug, p.excerpt, p.content, p.featured_image, p.author_id,
	p.category, p.tags, p.meta_title, p.meta_description, p.published, p.published_at,
	p.views, p.created_at, p.updated_at, u.name, u.email`

func scanPost(row interface{ Scan(...any) error }) (*domain.BlogPost, error) {
	var p domain.BlogPost
	var author domain.PostAuthor
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage, &p.AuthorID,
		&p.Category, &p.Tags, &p.MetaTitle, &p.MetaDescription, &p.Published, &p.PublishedAt,
		&p.Views, &p.CreatedAt, &p.UpdatedAt, &author.Name, &author.Email)
	if err != nil {
		return nil, err
	}
	p.Author = &author
	return &p, nil
}

// Create inserts a post and fills the generated fields. A duplicate slug
// surfaces as domain.ErrConflict.
func (r *PostgresBlogRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO blog_posts
			(title, slug, excerpt, content, featured_image, author_id, category, tags,
			 meta_title, meta_description, published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, views, created_at, updated_at
	`, post.Title, post.Slug, post.Excerpt, post.Content, post.FeaturedImage, post.AuthorID,
		post.Category, post.Tags, post.MetaTitle, post.MetaDescription, post.Published, post.PublishedAt).
		Scan(&post.ID, &post.Views, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert blog post: %w", translateErr(err))
	}
	return nil
}

// Update rewrites every mutable column except the slug, which is fixed
// at creation.
func (r *PostgresBlogRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE blog_posts
		SET title = $2, excerpt = $3, content = $4, featured_image = $5, category = $6,
		    tags = $7, meta_title = $8, meta_description = $9, published = $10,
		    published_at = $11, updated_at = NOW()
		WHERE id = $1
	`, post.ID, post.Title, post.Excerpt, post.Content, post.FeaturedImage, post.Category,
		post.Tags, post.MetaTitle, post.MetaDescription, post.Published, post.PublishedAt)
	if err != nil {
		return fmt.Errorf("update blog post: %w", translateErr(err))
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a post by id.
func (r *PostgresBlogRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID fetches a post by id regardless of publication state.
func (r *PostgresBlogRepository) GetByID(ctx context.Context, id string) (*domain.BlogPost, error) {
	post, err := scanPost(r.pool.QueryRow(ctx, `
		SELECT `+blogColumns+`
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id))
	if err != nil {
		return nil, translateErr(err)
	}
	return post, nil
}

// GetPublishedBySlug fetches a published post by its slug.
func (r *PostgresBlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := scanPost(r.pool.QueryRow(ctx, `
		SELECT `+blogColumns+`
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.slug = $1 AND p.published = TRUE
	`, slug))
	if err != nil {
		return nil, translateErr(err)
	}
	return post, nil
}

// ListPublished returns published posts newest-published first, with
// optional category and title/content search filters, plus the total of
// the filtered set.
func (r *PostgresBlogRepository) ListPublished(ctx context.Context, category, search string, limit, offset int) ([]domain.BlogPost, int, error) {
	where := " WHERE p.published = TRUE"
	var args []interface{}
	if category != "" {
		args = append(args, category)
		where += fmt.Sprintf(" AND p.category = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		where += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.content ILIKE $%d)", len(args), len(args))
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count blog posts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+blogColumns+`
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id%s
		ORDER BY p.published_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, total, rows.Err()
}

// ListAll returns every post including drafts, newest first.
func (r *PostgresBlogRepository) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ` + blogColumns + `
		FROM blog_posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query blog posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

// Publish marks a post published and stamps published_at, returning the
// updated post.
func (r *PostgresBlogRepository) Publish(ctx context.Context, id string) (*domain.BlogPost, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE blog_posts
		SET published = TRUE, published_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("publish blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// IncrementViews bumps the view counter by one.
func (r *PostgresBlogRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}
