package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eustache/eustache/internal/models"
)

// TeamRepo handles role assignments
type TeamRepo struct {
	db *sql.DB
}

const teamColumns = `id, project_id, name, email, role, created_at`

// CreateTeamMember inserts a role assignment
func (r *TeamRepo) CreateTeamMember(ctx context.Context, m *models.TeamMember) error {
	stamp(&m.CreatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO team_members (`+teamColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.ProjectID, m.Name, nullString(m.Email), string(m.Role), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to assign %s as %s: %w", m.Name, m.Role, err)
	}
	return nil
}

// GetTeamByProject lists the crew of a project, grouped by role
func (r *TeamRepo) GetTeamByProject(ctx context.Context, projectID string) ([]*models.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM team_members WHERE project_id = ? ORDER BY role, name`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team for project %s: %w", projectID, err)
	}
	defer closeRows(rows)

	members := make([]*models.TeamMember, 0)
	for rows.Next() {
		var (
			m     models.TeamMember
			email sql.NullString
			role  string
		)
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Name, &email, &role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member row: %w", err)
		}
		m.Email = email.String
		m.Role = models.Role(role)
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}
	return members, nil
}

// DeleteTeamMember removes a role assignment of projectID
func (r *TeamRepo) DeleteTeamMember(ctx context.Context, projectID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = ? AND project_id = ?`, id, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete team member %s: %w", id, err)
	}
	return requireAffected(result, "delete team member "+id)
}
