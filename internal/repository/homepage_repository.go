package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresHomepageRepository implements HomepageRepository using
// PostgreSQL. At most one row exists; section groups live in jsonb
// columns so the document round-trips as a whole.
type PostgresHomepageRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresHomepageRepository creates a new PostgresHomepageRepository.
func NewPostgresHomepageRepository(pool *pgxpool.Pool) *PostgresHomepageRepository {
	return &PostgresHomepageRepository{pool: pool}
}

func (r *PostgresHomepageRepository) scanOne(ctx context.Context) (*domain.HomepageContent, error) {
	var c domain.HomepageContent
	err := r.pool.QueryRow(ctx, `
		SELECT id, hero, stats, services, how_we_work, created_at, updated_at
		FROM homepage_content
		LIMIT 1
	`).Scan(&c.ID, &c.Hero, &c.Stats, &c.Services, &c.HowWeWork, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PostgresHomepageRepository) insert(ctx context.Context, c *domain.HomepageContent) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO homepage_content (hero, stats, services, how_we_work)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, c.Hero, c.Stats, c.Services, c.HowWeWork).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// Get returns the homepage document, creating the default one on first
// access so callers never see a not-found.
func (r *PostgresHomepageRepository) Get(ctx context.Context) (*domain.HomepageContent, error) {
	content, err := r.scanOne(ctx)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("query homepage content: %w", err)
	}

	seed := domain.DefaultHomepageContent()
	if err := r.insert(ctx, &seed); err != nil {
		// A concurrent first read may have inserted already.
		if errors.Is(translateErr(err), domain.ErrConflict) {
			return r.scanOne(ctx)
		}
		return nil, fmt.Errorf("seed homepage content: %w", err)
	}
	return &seed, nil
}

// Update upserts the singleton with the given content and returns the
// stored document.
func (r *PostgresHomepageRepository) Update(ctx context.Context, c *domain.HomepageContent) (*domain.HomepageContent, error) {
	existing, err := r.scanOne(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		if err := r.insert(ctx, c); err != nil {
			return nil, fmt.Errorf("insert homepage content: %w", err)
		}
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query homepage content: %w", err)
	}

	updated := *c
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	err = r.pool.QueryRow(ctx, `
		UPDATE homepage_content
		SET hero = $2, stats = $3, services = $4, how_we_work = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, updated.ID, updated.Hero, updated.Stats, updated.Services, updated.HowWeWork).
		Scan(&updated.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update homepage content: %w", err)
	}
	return &updated, nil
}
