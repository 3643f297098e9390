package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/eustache/eustache/internal/models"
)

// SceneRepo handles scene persistence
type SceneRepo struct {
	db *sql.DB
}

const sceneColumns = `id, sequence_id, decor_id, number, title, period, description, created_at`

// CreateScene inserts a scene
func (r *SceneRepo) CreateScene(ctx context.Context, s *models.Scene) error {
	stamp(&s.CreatedAt)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scenes (`+sceneColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.SequenceID, nullStringPtr(s.DecorID), s.Number, s.Title,
		nullString(s.Period), nullString(s.Description), s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scene %d in sequence %s: %w", s.Number, s.SequenceID, err)
	}
	return nil
}

// GetSceneByID retrieves one scene
func (r *SceneRepo) GetSceneByID(ctx context.Context, id string) (*models.Scene, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sceneColumns+` FROM scenes WHERE id = ?`, id)
	scene, err := scanScene(row)
	if err != nil {
		return nil, notFound(err, "get scene %s", id)
	}
	return scene, nil
}

// GetScenesBySequence lists the scenes of a sequence by number
func (r *SceneRepo) GetScenesBySequence(ctx context.Context, sequenceID string) ([]*models.Scene, error) {
	return r.queryScenes(ctx,
		`SELECT `+sceneColumns+` FROM scenes WHERE sequence_id = ? ORDER BY number`, sequenceID)
}

// GetScenesByDecor lists every scene shot in a decor
func (r *SceneRepo) GetScenesByDecor(ctx context.Context, decorID string) ([]*models.Scene, error) {
	return r.queryScenes(ctx,
		`SELECT `+sceneColumns+` FROM scenes WHERE decor_id = ? ORDER BY sequence_id, number`, decorID)
}

// NextSceneNumber returns max(number)+1 within a sequence, starting at 1
func (r *SceneRepo) NextSceneNumber(ctx context.Context, sequenceID string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(number), 0) + 1 FROM scenes WHERE sequence_id = ?`, sequenceID).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to compute next scene number for sequence %s: %w", sequenceID, err)
	}
	return next, nil
}

// DeleteScene removes a scene
func (r *SceneRepo) DeleteScene(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM scenes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete scene %s: %w", id, err)
	}
	return requireAffected(result, "delete scene "+id)
}

func (r *SceneRepo) queryScenes(ctx context.Context, query string, arg string) ([]*models.Scene, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query scenes: %w", err)
	}
	defer closeRows(rows)

	scenes := make([]*models.Scene, 0)
	for rows.Next() {
		scene, err := scanScene(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scene row: %w", err)
		}
		scenes = append(scenes, scene)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating scene rows: %w", err)
	}
	return scenes, nil
}

func scanScene(row rowScanner) (*models.Scene, error) {
	var (
		s                   models.Scene
		decorID             sql.NullString
		period, description sql.NullString
	)
	if err := row.Scan(&s.ID, &s.SequenceID, &decorID, &s.Number, &s.Title,
		&period, &description, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.DecorID = stringPtr(decorID)
	s.Period = period.String
	s.Description = description.String
	return &s, nil
}
