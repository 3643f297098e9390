package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eustache/eustache/internal/models"
)

// SequenceRepo handles sequence persistence
type SequenceRepo struct {
	db *sql.DB
}

const sequenceColumns = `id, project_id, number, title, summary, created_at, updated_at`

// CreateSequence inserts a sequence
func (r *SequenceRepo) CreateSequence(ctx context.Context, s *models.Sequence) error {
	stamp(&s.CreatedAt, &s.UpdatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sequences (`+sequenceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.ProjectID, s.Number, s.Title, nullString(s.Summary), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sequence %d for project %s: %w", s.Number, s.ProjectID, err)
	}
	return nil
}

// GetSequenceByID retrieves one sequence
func (r *SequenceRepo) GetSequenceByID(ctx context.Context, id string) (*models.Sequence, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sequenceColumns+` FROM sequences WHERE id = ?`, id)
	seq, err := scanSequence(row)
	if err != nil {
		return nil, notFound(err, "get sequence %s", id)
	}
	return seq, nil
}

// GetSequencesByProject lists sequences of a project ordered by number
func (r *SequenceRepo) GetSequencesByProject(ctx context.Context, projectID string) ([]*models.Sequence, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+sequenceColumns+` FROM sequences WHERE project_id = ? ORDER BY number`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sequences for project %s: %w", projectID, err)
	}
	defer closeRows(rows)

	sequences := make([]*models.Sequence, 0)
	for rows.Next() {
		seq, err := scanSequence(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sequence row: %w", err)
		}
		sequences = append(sequences, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sequence rows: %w", err)
	}
	return sequences, nil
}

// CountSequencesByProject counts the sequences referencing a project
func (r *SequenceRepo) CountSequencesByProject(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sequences WHERE project_id = ?`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count sequences for project %s: %w", projectID, err)
	}
	return count, nil
}

// NextSequenceNumber returns max(number)+1 for a project, starting at 1
func (r *SequenceRepo) NextSequenceNumber(ctx context.Context, projectID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(number), 0) + 1 FROM sequences WHERE project_id = ?`, projectID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next sequence number for project %s: %w", projectID, err)
	}
	return next, nil
}

// UpdateSequence saves title, summary and number
func (r *SequenceRepo) UpdateSequence(ctx context.Context, s *models.Sequence) error {
	s.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE sequences SET number = ?, title = ?, summary = ?, updated_at = ? WHERE id = ?`,
		s.Number, s.Title, nullString(s.Summary), s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update sequence %s: %w", s.ID, err)
	}
	return requireAffected(result, "update sequence "+s.ID)
}

// DeleteSequence removes a sequence and its scenes
func (r *SequenceRepo) DeleteSequence(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sequences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sequence %s: %w", id, err)
	}
	return requireAffected(result, "delete sequence "+id)
}

func scanSequence(row rowScanner) (*models.Sequence, error) {
	var (
		s       models.Sequence
		summary sql.NullString
	)
	if err := row.Scan(&s.ID, &s.ProjectID, &s.Number, &s.Title, &summary, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	s.Summary = summary.String
	return &s, nil
}
