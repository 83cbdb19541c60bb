package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/listing"
)

// PostgresContactRepository implements ContactRepository using PostgreSQL.
type PostgresContactRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresContactRepository creates a new PostgresContactRepository.
func NewPostgresContactRepository(pool *pgxpool.Pool) *PostgresContactRepository {
	return &PostgresContactRepository{pool: pool}
}

// Create inserts a contact submission and fills the generated fields.
func (r *PostgresContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO contacts (name, email, company, phone, message, service, source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Email, c.Company, c.Phone, c.Message, c.Service, c.Source, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", translateErr(err))
	}
	return nil
}

// List returns contacts created inside the date range, newest first,
// along with the total count of the filtered set.
func (r *PostgresContactRepository) List(ctx context.Context, dr listing.DateRange, limit, offset int) ([]domain.Contact, int, error) {
	where, args := dateRangeClause(dr)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, company, phone, message, service, source, status, created_at, updated_at
		FROM contacts%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.Phone, &c.Message,
			&c.Service, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}

// GetByID fetches a contact by id.
func (r *PostgresContactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	var c domain.Contact
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, company, phone, message, service, source, status, created_at, updated_at
		FROM contacts
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.Phone, &c.Message,
		&c.Service, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

// UpdateStatus moves a contact through the lead pipeline and returns the
// updated record.
func (r *PostgresContactRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Contact, error) {
	var c domain.Contact
	err := r.pool.QueryRow(ctx, `
		UPDATE contacts
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, email, company, phone, message, service, source, status, created_at, updated_at
	`, id, status).Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.Phone, &c.Message,
		&c.Service, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

// dateRangeClause builds a WHERE clause on created_at for the given
// range. An unconstrained range yields an empty clause.
func dateRangeClause(dr listing.DateRange) (string, []interface{}) {
	var args []interface{}
	where := ""
	if dr.Start != nil {
		args = append(args, *dr.Start)
		where = fmt.Sprintf(" WHERE created_at >= $%d", len(args))
	}
	if dr.End != nil {
		args = append(args, *dr.End)
		if where == "" {
			where = fmt.Sprintf(" WHERE created_at <= $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND created_at <= $%d", len(args))
		}
	}
	return where, args
}
