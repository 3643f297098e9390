package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eustache/eustache/internal/models"
)

// DecorRepo handles decor (set / location) persistence
type DecorRepo struct {
	db *sql.DB
}

const decorColumns = `id, project_id, name, location, kind, created_at`

// CreateDecor inserts a decor
func (r *DecorRepo) CreateDecor(ctx context.Context, d *models.Decor) error {
	stamp(&d.CreatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decors (`+decorColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		d.ID, d.ProjectID, d.Name, nullString(d.Location), string(d.Kind), d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert decor '%s': %w", d.Name, err)
	}
	return nil
}

// GetDecorByID retrieves one decor
func (r *DecorRepo) GetDecorByID(ctx context.Context, id string) (*models.Decor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+decorColumns+` FROM decors WHERE id = ?`, id)
	decor, err := scanDecor(row)
	if err != nil {
		return nil, notFound(err, "get decor %s", id)
	}
	return decor, nil
}

// GetDecorsByProject lists the decors of a project by name
func (r *DecorRepo) GetDecorsByProject(ctx context.Context, projectID string) ([]*models.Decor, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+decorColumns+` FROM decors WHERE project_id = ? ORDER BY name`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query decors for project %s: %w", projectID, err)
	}
	defer closeRows(rows)

	decors := make([]*models.Decor, 0)
	for rows.Next() {
		decor, err := scanDecor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan decor row: %w", err)
		}
		decors = append(decors, decor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating decor rows: %w", err)
	}
	return decors, nil
}

// DeleteDecor removes a decor; scenes shot there keep existing without one
func (r *DecorRepo) DeleteDecor(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM decors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete decor %s: %w", id, err)
	}
	return requireAffected(result, "delete decor "+id)
}

func scanDecor(row rowScanner) (*models.Decor, error) {
	var (
		d        models.Decor
		location sql.NullString
		kind     string
	)
	if err := row.Scan(&d.ID, &d.ProjectID, &d.Name, &location, &kind, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.Location = location.String
	d.Kind = models.DecorKind(kind)
	return &d, nil
}
