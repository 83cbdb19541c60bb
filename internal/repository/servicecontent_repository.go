package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

const serviceContentColumns = `id, service_id, service_name, hero, features, benefits, outcomes, cta, seo, created_at, updated_at`

// PostgresServiceContentRepository implements ServiceContentRepository
// using PostgreSQL.
type PostgresServiceContentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresServiceContentRepository creates a new PostgresServiceContentRepository.
func NewPostgresServiceContentRepository(pool *pgxpool.Pool) *PostgresServiceContentRepository {
	return &PostgresServiceContentRepository{pool: pool}
}

func scanServiceContent(row interface{ Scan(...any) error }) (*domain.ServiceContent, error) {
	var c domain.ServiceContent
	err := row.Scan(
		&c.ID, &c.ServiceID, &c.ServiceName, &c.Hero, &c.Features,
		&c.Benefits, &c.Outcomes, &c.CTA, &c.SEO, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Features == nil {
		c.Features = []domain.ServiceFeature{}
	}
	if c.Benefits == nil {
		c.Benefits = []domain.ServiceBenefit{}
	}
	if c.Outcomes == nil {
		c.Outcomes = []domain.ServiceOutcome{}
	}
	return &c, nil
}

// List returns all service pages sorted by service name.
func (r *PostgresServiceContentRepository) List(ctx context.Context) ([]domain.ServiceContent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+serviceContentColumns+`
		FROM service_content
		ORDER BY service_name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query service content: %w", err)
	}
	defer rows.Close()

	contents := []domain.ServiceContent{}
	for rows.Next() {
		c, err := scanServiceContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan service content: %w", err)
		}
		contents = append(contents, *c)
	}
	return contents, rows.Err()
}

// GetByServiceID retrieves the content for one service page.
func (r *PostgresServiceContentRepository) GetByServiceID(ctx context.Context, serviceID string) (*domain.ServiceContent, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+serviceContentColumns+`
		FROM service_content
		WHERE service_id = $1
	`, serviceID)

	c, err := scanServiceContent(row)
	if err != nil {
		return nil, translateErr(err)
	}
	return c, nil
}

// Create inserts new service page content. Returns domain.ErrConflict if
// the service already has content.
func (r *PostgresServiceContentRepository) Create(ctx context.Context, c *domain.ServiceContent) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO service_content (service_id, service_name, hero, features, benefits, outcomes, cta, seo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`,
		c.ServiceID, c.ServiceName, c.Hero, c.Features, c.Benefits, c.Outcomes, c.CTA, c.SEO,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

// Upsert replaces the content for a service page, creating it if absent.
func (r *PostgresServiceContentRepository) Upsert(ctx context.Context, c *domain.ServiceContent) (*domain.ServiceContent, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO service_content (service_id, service_name, hero, features, benefits, outcomes, cta, seo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (service_id) DO UPDATE
		SET service_name = EXCLUDED.service_name,
		    hero = EXCLUDED.hero,
		    features = EXCLUDED.features,
		    benefits = EXCLUDED.benefits,
		    outcomes = EXCLUDED.outcomes,
		    cta = EXCLUDED.cta,
		    seo = EXCLUDED.seo,
		    updated_at = NOW()
		RETURNING `+serviceContentColumns+`
	`, c.ServiceID, c.ServiceName, c.Hero, c.Features, c.Benefits, c.Outcomes, c.CTA, c.SEO)

	stored, err := scanServiceContent(row)
	if err != nil {
		return nil, fmt.Errorf("upsert service content: %w", err)
	}
	return stored, nil
}

// Delete removes the content for a service page.
func (r *PostgresServiceContentRepository) Delete(ctx context.Context, serviceID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM service_content WHERE service_id = $1`, serviceID)
	if err != nil {
		return fmt.Errorf("delete service content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
