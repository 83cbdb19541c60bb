package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresFAQRepository implements FAQRepository using PostgreSQL.
type PostgresFAQRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFAQRepository creates a new PostgresFAQRepository.
func NewPostgresFAQRepository(pool *pgxpool.Pool) *PostgresFAQRepository {
	return &PostgresFAQRepository{pool: pool}
}

// List returns FAQs sorted for display. The public view keeps only
// enabled entries; category narrows either view.
func (r *PostgresFAQRepository) List(ctx context.Context, enabledOnly bool, category string) ([]domain.FAQ, error) {
	where := ""
	var args []interface{}
	if enabledOnly {
		where = " WHERE enabled = TRUE"
	}
	if category != "" {
		args = append(args, category)
		if where == "" {
			where = fmt.Sprintf(" WHERE category = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND category = $%d", len(args))
		}
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, question, answer, category, "order", enabled, created_at, updated_at
		FROM faqs`+where+`
		ORDER BY "order" ASC, created_at DESC
	`, args...)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}
	defer rows.Close()

	var faqs []domain.FAQ
	for rows.Next() {
		var f domain.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Order, &f.Enabled,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// GetByID fetches an FAQ by id.
func (r *PostgresFAQRepository) GetByID(ctx context.Context, id string) (*domain.FAQ, error) {
	var f domain.FAQ
	err := r.pool.QueryRow(ctx, `
		SELECT id, question, answer, category, "order", enabled, created_at, updated_at
		FROM faqs
		WHERE id = $1
	`, id).Scan(&f.ID, &f.Question, &f.Answer, &f.Category, &f.Order, &f.Enabled,
		&f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &f, nil
}

// Create inserts an FAQ and fills the generated fields.
func (r *PostgresFAQRepository) Create(ctx context.Context, f *domain.FAQ) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO faqs (question, answer, category, "order", enabled)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, f.Question, f.Answer, f.Category, f.Order, f.Enabled).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert faq: %w", translateErr(err))
	}
	return nil
}

// Update rewrites an FAQ's mutable columns.
func (r *PostgresFAQRepository) Update(ctx context.Context, f *domain.FAQ) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE faqs
		SET question = $2, answer = $3, category = $4, "order" = $5, enabled = $6, updated_at = NOW()
		WHERE id = $1
	`, f.ID, f.Question, f.Answer, f.Category, f.Order, f.Enabled)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an FAQ by id.
func (r *PostgresFAQRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
