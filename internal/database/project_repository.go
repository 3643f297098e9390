package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eustache/eustache/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

const projectColumns = `id, title, description, director, producer, status, start_date, end_date, created_at, updated_at`

// CreateProject inserts a project. ID and status must already be set.
func (r *ProjectRepo) CreateProject(ctx context.Context, p *models.Project) error {
	stamp(&p.CreatedAt, &p.UpdatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, nullString(p.Description), nullString(p.Director), nullString(p.Producer),
		string(p.Status), nullTime(p.StartDate), nullTime(p.EndDate), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert project '%s': %w", p.Title, err)
	}
	return nil
}

// GetProjectByID retrieves a project by its ID
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	project, err := scanProject(row)
	if err != nil {
		return nil, notFound(err, "get project %s", id)
	}
	return project, nil
}

// GetAllProjects retrieves all projects, most recently updated first
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY updated_at DESC, title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all projects: %w", err)
	}
	defer closeRows(rows)

	projects := make([]*models.Project, 0, 10)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// UpdateProject overwrites every mutable column of a project
func (r *ProjectRepo) UpdateProject(ctx context.Context, p *models.Project) error {
	p.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects
		 SET title = ?, description = ?, director = ?, producer = ?, status = ?,
		     start_date = ?, end_date = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, nullString(p.Description), nullString(p.Director), nullString(p.Producer),
		string(p.Status), nullTime(p.StartDate), nullTime(p.EndDate), p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", p.ID, err)
	}
	return requireAffected(result, "update project "+p.ID)
}

// DeleteProject removes a project; sequences, scenes, decors, scripts and
// team members cascade.
func (r *ProjectRepo) DeleteProject(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return requireAffected(result, "delete project "+id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var (
		p                           models.Project
		description, director, prod sql.NullString
		status                      string
		startDate, endDate          sql.NullTime
	)
	if err := row.Scan(&p.ID, &p.Title, &description, &director, &prod, &status,
		&startDate, &endDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Description = description.String
	p.Director = director.String
	p.Producer = prod.String
	p.Status = models.Status(status)
	p.StartDate = timePtr(startDate)
	p.EndDate = timePtr(endDate)
	return &p, nil
}
