package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on every start; every statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		director TEXT,
		producer TEXT,
		status TEXT NOT NULL DEFAULT 'En préparation',
		start_date DATETIME,
		end_date DATETIME,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sequences (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		number INTEGER NOT NULL,
		title TEXT NOT NULL,
		summary TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
		UNIQUE (project_id, number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sequences_project ON sequences(project_id, number)`,
	`CREATE TABLE IF NOT EXISTS decors (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		name TEXT NOT NULL,
		location TEXT,
		kind TEXT NOT NULL DEFAULT 'INT',
		created_at DATETIME NOT NULL,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_decors_project ON decors(project_id)`,
	`CREATE TABLE IF NOT EXISTS scenes (
		id TEXT PRIMARY KEY,
		sequence_id TEXT NOT NULL,
		decor_id TEXT,
		number INTEGER NOT NULL,
		title TEXT NOT NULL,
		period TEXT,
		description TEXT,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (sequence_id) REFERENCES sequences(id) ON DELETE CASCADE,
		FOREIGN KEY (decor_id) REFERENCES decors(id) ON DELETE SET NULL,
		UNIQUE (sequence_id, number)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scenes_sequence ON scenes(sequence_id, number)`,
	`CREATE TABLE IF NOT EXISTS scripts (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		title TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		content TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scripts_project ON scripts(project_id, version)`,
	`CREATE TABLE IF NOT EXISTS team_members (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT,
		role TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
		UNIQUE (project_id, name, role)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_team_members_project ON team_members(project_id)`,
}

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration step %d failed: %w", i+1, err)
			}
		}
		return nil
	})
}
