package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eustache/eustache/internal/models"
)

// ScriptRepo handles screenplay persistence
type ScriptRepo struct {
	db *sql.DB
}

const scriptColumns = `id, project_id, title, version, content, created_at, updated_at`

// CreateScript inserts a script version
func (r *ScriptRepo) CreateScript(ctx context.Context, s *models.Script) error {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scripts (`+scriptColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.ProjectID, s.Title, s.Version, s.Content, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert script '%s': %w", s.Title, err)
	}
	return nil
}

// GetScriptByID retrieves a script with its content
func (r *ScriptRepo) GetScriptByID(ctx context.Context, id string) (*models.Script, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+scriptColumns+` FROM scripts WHERE id = ?`, id)
	script, err := scanScript(row)
	if err != nil {
		return nil, notFound(err, "get script %s", id)
	}
	return script, nil
}

// GetLatestScript returns the highest version script of a project
func (r *ScriptRepo) GetLatestScript(ctx context.Context, projectID string) (*models.Script, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+scriptColumns+` FROM scripts WHERE project_id = ? ORDER BY version DESC LIMIT 1`, projectID)
	script, err := scanScript(row)
	if err != nil {
		return nil, notFound(err, "get latest script of project %s", projectID)
	}
	return script, nil
}

// GetScriptsByProject lists scripts without their content, newest version first
func (r *ScriptRepo) GetScriptsByProject(ctx context.Context, projectID string) ([]*models.Script, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, title, version, '', created_at, updated_at
		 FROM scripts WHERE project_id = ? ORDER BY version DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scripts for project %s: %w", projectID, err)
	}
	defer closeRows(rows)

	scripts := make([]*models.Script, 0)
	for rows.Next() {
		script, err := scanScript(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan script row: %w", err)
		}
		scripts = append(scripts, script)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating script rows: %w", err)
	}
	return scripts, nil
}

// NextScriptVersion returns max(version)+1 for a project, starting at 1
func (r *ScriptRepo) NextScriptVersion(ctx context.Context, projectID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) + 1 FROM scripts WHERE project_id = ?`, projectID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next script version for project %s: %w", projectID, err)
	}
	return next, nil
}

func scanScript(row rowScanner) (*models.Script, error) {
	var s models.Script
	if err := row.Scan(&s.ID, &s.ProjectID, &s.Title, &s.Version, &s.Content, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
