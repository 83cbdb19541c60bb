package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresTestimonialRepository implements TestimonialRepository using PostgreSQL.
type PostgresTestimonialRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTestimonialRepository creates a new PostgresTestimonialRepository.
func NewPostgresTestimonialRepository(pool *pgxpool.Pool) *PostgresTestimonialRepository {
	return &PostgresTestimonialRepository{pool: pool}
}

// List returns testimonials sorted for display. The public view keeps
// only enabled entries; featured narrows either view when set.
func (r *PostgresTestimonialRepository) List(ctx context.Context, enabledOnly bool, featured *bool) ([]domain.Testimonial, error) {
	where := ""
	var args []interface{}
	if enabledOnly {
		where = " WHERE enabled = TRUE"
	}
	if featured != nil {
		args = append(args, *featured)
		if where == "" {
			where = fmt.Sprintf(" WHERE featured = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND featured = $%d", len(args))
		}
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, name, company, role, testimonial, rating, photo, featured, "order", enabled,
		       created_at, updated_at
		FROM testimonials`+where+`
		ORDER BY "order" ASC, created_at DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Company, &t.Role, &t.Testimonial, &t.Rating,
			&t.Photo, &t.Featured, &t.Order, &t.Enabled, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// GetByID fetches a testimonial by id.
func (r *PostgresTestimonialRepository) GetByID(ctx context.Context, id string) (*domain.Testimonial, error) {
	var t domain.Testimonial
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, company, role, testimonial, rating, photo, featured, "order", enabled,
		       created_at, updated_at
		FROM testimonials
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Name, &t.Company, &t.Role, &t.Testimonial, &t.Rating,
		&t.Photo, &t.Featured, &t.Order, &t.Enabled, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &t, nil
}

// Create inserts a testimonial and fills the generated fields.
func (r *PostgresTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO testimonials (name, company, role, testimonial, rating, photo, featured, "order", enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, t.Name, t.Company, t.Role, t.Testimonial, t.Rating, t.Photo, t.Featured, t.Order, t.Enabled).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", translateErr(err))
	}
	return nil
}

// Update rewrites a testimonial's mutable columns.
func (r *PostgresTestimonialRepository) Update(ctx context.Context, t *domain.Testimonial) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE testimonials
		SET name = $2, company = $3, role = $4, testimonial = $5, rating = $6, photo = $7,
		    featured = $8, "order" = $9, enabled = $10, updated_at = NOW()
		WHERE id = $1
	`, t.ID, t.Name, t.Company, t.Role, t.Testimonial, t.Rating, t.Photo, t.Featured, t.Order, t.Enabled)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a testimonial by id.
func (r *PostgresTestimonialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
