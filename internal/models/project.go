package models

import "time"

// Project is the top-level unit of a production: a film, a short, a series episode.
// Sequences, decors, scripts and team members all belong to one project.
type Project struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Director    string     `json:"director,omitempty"`
	Producer    string     `json:"producer,omitempty"`
	Status      Status     `json:"status"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GetID returns the project identifier (used by quiet CLI output)
func (p *Project) GetID() string {
	return p.ID
}
