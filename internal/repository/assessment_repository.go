package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/listing"
)

// PostgresAssessmentRepository implements AssessmentRepository using PostgreSQL.
type PostgresAssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAssessmentRepository creates a new PostgresAssessmentRepository.
func NewPostgresAssessmentRepository(pool *pgxpool.Pool) *PostgresAssessmentRepository {
	return &PostgresAssessmentRepository{pool: pool}
}

// Create inserts an assessment submission and fills the generated fields.
func (r *PostgresAssessmentRepository) Create(ctx context.Context, a *domain.Assessment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO assessments
			(name, email, company, company_size, current_cloud_spend, primary_challenges,
			 services, timeline, budget, additional_info, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, a.Name, a.Email, a.Company, a.CompanySize, a.CurrentCloudSpend, a.PrimaryChallenges,
		a.Services, a.Timeline, a.Budget, a.AdditionalInfo, a.Status).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", translateErr(err))
	}
	return nil
}

// List returns assessments created inside the date range, newest first,
// along with the total count of the filtered set.
func (r *PostgresAssessmentRepository) List(ctx context.Context, dr listing.DateRange, limit, offset int) ([]domain.Assessment, int, error) {
	where, args := dateRangeClause(dr)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM assessments`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count assessments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, email, company, company_size, current_cloud_spend, primary_challenges,
		       services, timeline, budget, additional_info, status, created_at, updated_at
		FROM assessments%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("query assessments: %w", err)
	}
	defer rows.Close()

	var assessments []domain.Assessment
	for rows.Next() {
		var a domain.Assessment
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Company, &a.CompanySize, &a.CurrentCloudSpend,
			&a.PrimaryChallenges, &a.Services, &a.Timeline, &a.Budget, &a.AdditionalInfo,
			&a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan assessment: %w", err)
		}
		assessments = append(assessments, a)
	}
	return assessments, total, rows.Err()
}

// GetByID fetches an assessment by id.
func (r *PostgresAssessmentRepository) GetByID(ctx context.Context, id string) (*domain.Assessment, error) {
	var a domain.Assessment
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, company, company_size, current_cloud_spend, primary_challenges,
		       services, timeline, budget, additional_info, status, created_at, updated_at
		FROM assessments
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Name, &a.Email, &a.Company, &a.CompanySize, &a.CurrentCloudSpend,
		&a.PrimaryChallenges, &a.Services, &a.Timeline, &a.Budget, &a.AdditionalInfo,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}
