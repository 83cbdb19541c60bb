package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresNewsletterRepository implements NewsletterRepository using
// PostgreSQL.
type PostgresNewsletterRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsletterRepository creates a new PostgresNewsletterRepository.
func NewPostgresNewsletterRepository(pool *pgxpool.Pool) *PostgresNewsletterRepository {
	return &PostgresNewsletterRepository{pool: pool}
}

// GetByEmail retrieves a subscriber by email, active or not.
func (r *PostgresNewsletterRepository) GetByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var s domain.Subscriber
	err := r.pool.QueryRow(ctx, `
		SELECT id, email, name, subscribed, subscribed_at, unsubscribed_at, created_at, updated_at
		FROM newsletter_subscribers
		WHERE email = $1
	`, email).Scan(
		&s.ID, &s.Email, &s.Name, &s.Subscribed, &s.SubscribedAt,
		&s.UnsubscribedAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, translateErr(err)
	}
	return &s, nil
}

// Create inserts a new subscriber. Returns domain.ErrConflict if the
// email is already on the list.
func (r *PostgresNewsletterRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO newsletter_subscribers (email, name)
		VALUES ($1, $2)
		RETURNING id, subscribed, subscribed_at, created_at, updated_at
	`, s.Email, s.Name).Scan(&s.ID, &s.Subscribed, &s.SubscribedAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}
	return nil
}

// Update saves subscription state changes for an existing subscriber.
func (r *PostgresNewsletterRepository) Update(ctx context.Context, s *domain.Subscriber) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE newsletter_subscribers
		SET name = $2, subscribed = $3, subscribed_at = $4, unsubscribed_at = $5, updated_at = NOW()
		WHERE id = $1
	`, s.ID, s.Name, s.Subscribed, s.SubscribedAt, s.UnsubscribedAt)
	if err != nil {
		return fmt.Errorf("update subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
