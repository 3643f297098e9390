package models

import "time"

// Scene is the smallest breakdown unit: one sequence contains many scenes,
// each optionally shot in a decor.
type Scene struct {
	ID          string    `json:"id"`
	SequenceID  string    `json:"sequence_id"`
	DecorID     *string   `json:"decor_id,omitempty"`
	Number      int       `json:"number"`
	Title       string    `json:"title"`
	Period      string    `json:"period,omitempty"` // JOUR, NUIT, AUBE...
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetID returns the scene identifier
func (s *Scene) GetID() string {
	return s.ID
}
