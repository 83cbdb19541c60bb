package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

const seoColumns = `id, page, title, description, keywords, canonical, og_image, og_title, og_description, robots, schema, created_at, updated_at`

// PostgresSEORepository implements SEORepository using PostgreSQL.
type PostgresSEORepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSEORepository creates a new PostgresSEORepository.
func NewPostgresSEORepository(pool *pgxpool.Pool) *PostgresSEORepository {
	return &PostgresSEORepository{pool: pool}
}

func scanSEO(row interface{ Scan(...any) error }) (*domain.SEOSettings, error) {
	var s domain.SEOSettings
	err := row.Scan(
		&s.ID, &s.Page, &s.Title, &s.Description, &s.Keywords, &s.Canonical,
		&s.OGImage, &s.OGTitle, &s.OGDescription, &s.Robots, &s.Schema,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all SEO entries sorted by page path.
func (r *PostgresSEORepository) List(ctx context.Context) ([]domain.SEOSettings, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+seoColumns+`
		FROM seo_settings
		ORDER BY page ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query seo settings: %w", err)
	}
	defer rows.Close()

	settings := []domain.SEOSettings{}
	for rows.Next() {
		s, err := scanSEO(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seo settings: %w", err)
		}
		settings = append(settings, *s)
	}
	return settings, rows.Err()
}

// GetByPage retrieves the SEO entry for one page path.
func (r *PostgresSEORepository) GetByPage(ctx context.Context, page string) (*domain.SEOSettings, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+seoColumns+`
		FROM seo_settings
		WHERE page = $1
	`, page)

	s, err := scanSEO(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return s, nil
}

// Upsert replaces the SEO entry for a page, creating it if absent.
func (r *PostgresSEORepository) Upsert(ctx context.Context, s *domain.SEOSettings) (*domain.SEOSettings, error) {
	if s.Robots == "" {
		s.Robots = domain.DefaultRobots
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO seo_settings (page, title, description, keywords, canonical, og_image, og_title, og_description, robots, schema)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (page) DO UPDATE
		SET title = EXCLUDED.title,
		    description = EXCLUDED.description,
		    keywords = EXCLUDED.keywords,
		    canonical = EXCLUDED.canonical,
		    og_image = EXCLUDED.og_image,
		    og_title = EXCLUDED.og_title,
		    og_description = EXCLUDED.og_description,
		    robots = EXCLUDED.robots,
		    schema = EXCLUDED.schema,
		    updated_at = NOW()
		RETURNING `+seoColumns+`
	`,
		s.Page, s.Title, s.Description, s.Keywords, s.Canonical,
		s.OGImage, s.OGTitle, s.OGDescription, s.Robots, s.Schema,
	)

	stored, err := scanSEO(row)
	if err != nil {
		return nil, fmt.Errorf("upsert seo settings: %w", err)
	}
	return stored, nil
}

// Delete removes the SEO entry for a page.
func (r *PostgresSEORepository) Delete(ctx context.Context, page string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM seo_settings WHERE page = $1`, page)
	if err != nil {
		return fmt.Errorf("delete seo settings: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
