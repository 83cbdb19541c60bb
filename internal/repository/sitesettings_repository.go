package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresSiteSettingsRepository implements SiteSettingsRepository using
// PostgreSQL. Like the homepage content, a single row holds the whole
// document with grouped fields in jsonb.
type PostgresSiteSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSiteSettingsRepository creates a new PostgresSiteSettingsRepository.
func NewPostgresSiteSettingsRepository(pool *pgxpool.Pool) *PostgresSiteSettingsRepository {
	return &PostgresSiteSettingsRepository{pool: pool}
}

func (r *PostgresSiteSettingsRepository) scanOne(ctx context.Context) (*domain.SiteSettings, error) {
	var s domain.SiteSettings
	err := r.pool.QueryRow(ctx, `
		SELECT id, company_name, company_tagline, company_description, logo, favicon,
		       contact_email, support_email, sales_email, phone,
		       address, social_media, business_hours, created_at, updated_at
		FROM site_settings
		LIMIT 1
	`).Scan(
		&s.ID, &s.CompanyName, &s.CompanyTagline, &s.CompanyDescription, &s.Logo, &s.Favicon,
		&s.ContactEmail, &s.SupportEmail, &s.SalesEmail, &s.Phone,
		&s.Address, &s.SocialMedia, &s.BusinessHours, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresSiteSettingsRepository) insert(ctx context.Context, s *domain.SiteSettings) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO site_settings (
			company_name, company_tagline, company_description, logo, favicon,
			contact_email, support_email, sales_email, phone,
			address, social_media, business_hours
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`,
		s.CompanyName, s.CompanyTagline, s.CompanyDescription, s.Logo, s.Favicon,
		s.ContactEmail, s.SupportEmail, s.SalesEmail, s.Phone,
		s.Address, s.SocialMedia, s.BusinessHours,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// Get returns the site settings, creating the defaults on first access.
func (r *PostgresSiteSettingsRepository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	settings, err := r.scanOne(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("query site settings: %w", err)
	}

	seed := domain.DefaultSiteSettings()
	if err := r.insert(ctx, &seed); err != nil {
		if errors.Is(translateErr(err), domain.ErrConflict) {
			return r.scanOne(ctx)
		}
		return nil, fmt.Errorf("seed site settings: %w", err)
	}
	return &seed, nil
}

// Update upserts the singleton with the given settings and returns the
// stored document.
func (r *PostgresSiteSettingsRepository) Update(ctx context.Context, s *domain.SiteSettings) (*domain.SiteSettings, error) {
	existing, err := r.scanOne(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		if err := r.insert(ctx, s); err != nil {
			return nil, fmt.Errorf("insert site settings: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query site settings: %w", err)
	}

	updated := *s
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	err = r.pool.QueryRow(ctx, `
		UPDATE site_settings
		SET company_name = $2, company_tagline = $3, company_description = $4,
		    logo = $5, favicon = $6, contact_email = $7, support_email = $8,
		    sales_email = $9, phone = $10, address = $11, social_media = $12,
		    business_hours = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`,
		updated.ID, updated.CompanyName, updated.CompanyTagline, updated.CompanyDescription,
		updated.Logo, updated.Favicon, updated.ContactEmail, updated.SupportEmail,
		updated.SalesEmail, updated.Phone, updated.Address, updated.SocialMedia,
		updated.BusinessHours,
	).Scan(&updated.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update site settings: %w", err)
	}
	return &updated, nil
}
