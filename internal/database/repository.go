package database

import "database/sql"

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding; every
// method name is unique across the embedded repos.
type Repository struct {
	*ProjectRepo
	*SequenceRepo
	*DecorRepo
	*SceneRepo
	*ScriptRepo
	*TeamRepo

	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ProjectRepo:  &ProjectRepo{db: db},
		SequenceRepo: &SequenceRepo{db: db},
		DecorRepo:    &DecorRepo{db: db},
		SceneRepo:    &SceneRepo{db: db},
		ScriptRepo:   &ScriptRepo{db: db},
		TeamRepo:     &TeamRepo{db: db},
		db:           db,
	}
}

// DB exposes the underlying connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the underlying connection
func (r *Repository) Close() error {
	return r.db.Close()
}
