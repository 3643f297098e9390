package models

import "time"

// Script is a versioned screenplay document, stored as markdown
type Script struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Title     string    `json:"title"`
	Version   int       `json:"version"`
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID returns the script identifier
func (s *Script) GetID() string {
	return s.ID
}
