package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"cloudpillers-api/internal/domain"
)

// PostgresTeamRepository implements TeamRepository using PostgreSQL.
type PostgresTeamRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresTeamRepository creates a new PostgresTeamRepository.
func NewPostgresTeamRepository(pool *pgxpool.Pool) *PostgresTeamRepository {
	return &PostgresTeamRepository{pool: pool}
}

// List returns team members sorted for display; the public view keeps
// only enabled members.
func (r *PostgresTeamRepository) List(ctx context.Context, enabledOnly bool) ([]domain.TeamMember, error) {
	where := ""
	if enabledOnly {
		where = " WHERE enabled = TRUE"
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, role, bio, photo, social_links, "order", enabled, created_at, updated_at
		FROM team_members`+where+`
		ORDER BY "order" ASC, created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Photo, &m.SocialLinks,
			&m.Order, &m.Enabled, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetByID fetches a team member by id.
func (r *PostgresTeamRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	var m domain.TeamMember
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, role, bio, photo, social_links, "order", enabled, created_at, updated_at
		FROM team_members
		WHERE id = $1
	`, id).Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Photo, &m.SocialLinks,
		&m.Order, &m.Enabled, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &m, nil
}

// Create inserts a team member and fills the generated fields.
func (r *PostgresTeamRepository) Create(ctx context.Context, m *domain.TeamMember) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO team_members (name, role, bio, photo, social_links, "order", enabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, m.Name, m.Role, m.Bio, m.Photo, m.SocialLinks, m.Order, m.Enabled).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert team member: %w", translateErr(err))
	}
	return nil
}

// Update rewrites a team member's mutable columns.
func (r *PostgresTeamRepository) Update(ctx context.Context, m *domain.TeamMember) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE team_members
		SET name = $2, role = $3, bio = $4, photo = $5, social_links = $6, "order" = $7,
		    enabled = $8, updated_at = NOW()
		WHERE id = $1
	`, m.ID, m.Name, m.Role, m.Bio, m.Photo, m.SocialLinks, m.Order, m.Enabled)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a team member by id.
func (r *PostgresTeamRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
