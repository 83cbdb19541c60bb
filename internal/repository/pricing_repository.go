package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresPricingRepository implements PricingRepository using PostgreSQL.
// Plan features live in a jsonb column; they are only ever read and
// written as a whole with their plan.
type PostgresPricingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresPricingRepository creates a new PostgresPricingRepository.
func NewPostgresPricingRepository(pool *pgxpool.Pool) *PostgresPricingRepository {
	return &PostgresPricingRepository{pool: pool}
}

const pricingColumns = `id, name, description, price, currency, period, features, popular,
	badge, cta_text, "order", enabled, created_at, updated_at`

func scanPlan(row interface{ Scan(...any) error }) (*domain.PricingPlan, error) {
	var p domain.PricingPlan
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Period, &p.Features,
		&p.Popular, &p.Badge, &p.CTAText, &p.Order, &p.Enabled, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns plans sorted for display; the public view keeps only
// enabled plans.
func (r *PostgresPricingRepository) List(ctx context.Context, enabledOnly bool) ([]domain.PricingPlan, error) {
	where := ""
	if enabledOnly {
		where = " WHERE enabled = TRUE"
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+pricingColumns+`
		FROM pricing_plans`+where+`
		ORDER BY "order" ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query pricing plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.PricingPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pricing plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

// GetByID fetches a plan by id.
func (r *PostgresPricingRepository) GetByID(ctx context.Context, id string) (*domain.PricingPlan, error) {
	plan, err := scanPlan(r.pool.QueryRow(ctx, `
		SELECT `+pricingColumns+`
		FROM pricing_plans
		WHERE id = $1
	`, id))
	if err != nil {
		return nil, translateErr(err)
	}
	return plan, nil
}

// Create inserts a plan and fills the generated fields.
func (r *PostgresPricingRepository) Create(ctx context.Context, p *domain.PricingPlan) error {
	if p.Features == nil {
		p.Features = []domain.PlanFeature{}
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO pricing_plans
			(name, description, price, currency, period, features, popular, badge, cta_text, "order", enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Description, p.Price, p.Currency, p.Period, p.Features, p.Popular,
		p.Badge, p.CTAText, p.Order, p.Enabled).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert pricing plan: %w", translateErr(err))
	}
	return nil
}

// Update rewrites a plan's mutable columns, features included.
func (r *PostgresPricingRepository) Update(ctx context.Context, p *domain.PricingPlan) error {
	if p.Features == nil {
		p.Features = []domain.PlanFeature{}
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE pricing_plans
		SET name = $2, description = $3, price = $4, currency = $5, period = $6, features = $7,
		    popular = $8, badge = $9, cta_text = $10, "order" = $11, enabled = $12, updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.Name, p.Description, p.Price, p.Currency, p.Period, p.Features,
		p.Popular, p.Badge, p.CTAText, p.Order, p.Enabled)
	if err != nil {
		return fmt.Errorf("update pricing plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a plan by id.
func (r *PostgresPricingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pricing_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pricing plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
