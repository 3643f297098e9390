package models

import (
	"fmt"
	"strings"
	"time"
)

// DecorKind tells whether a set is shot indoors, outdoors or both
type DecorKind string

const (
	DecorInterior         DecorKind = "INT"
	DecorExterior         DecorKind = "EXT"
	DecorInteriorExterior DecorKind = "INT/EXT"
)

// ParseDecorKind normalizes user input into a DecorKind
func ParseDecorKind(raw string) (DecorKind, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "INT":
		return DecorInterior, nil
	case "EXT":
		return DecorExterior, nil
	case "INT/EXT", "INT-EXT":
		return DecorInteriorExterior, nil
	}
	return "", fmt.Errorf("%w: decor kind '%s' (must be: INT, EXT, INT/EXT)", ErrInvalidValue, raw)
}

// Decor is a set or shooting location used by scenes of a project
type Decor struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Kind      DecorKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the decor identifier
func (d *Decor) GetID() string {
	return d.ID
}
