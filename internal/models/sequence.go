package models

import "time"

// Sequence is a numbered block of the script within a project
type Sequence struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the sequence identifier
func (s *Sequence) GetID() string {
	return s.ID
}
