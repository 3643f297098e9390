package models

import (
	"fmt"
	"strings"
)

// Status is the production stage of a project.
// Values are stored verbatim in the database.
type Status string

const (
	StatusPreparation Status = "En préparation"
	StatusInProgress  Status = "En cours"
	StatusDone        Status = "Terminé"
	StatusArchived    Status = "Archivé"
)

// Statuses lists every project status in workflow order
var Statuses = []Status{StatusPreparation, StatusInProgress, StatusDone, StatusArchived}

// statusAliases maps ascii-friendly CLI spellings onto statuses
var statusAliases = map[string]Status{
	"preparation":    StatusPreparation,
	"en preparation": StatusPreparation,
	"en-preparation": StatusPreparation,
	"in-progress":    StatusInProgress,
	"en cours":       StatusInProgress,
	"en-cours":       StatusInProgress,
	"done":           StatusDone,
	"termine":        StatusDone,
	"archived":       StatusArchived,
	"archive":        StatusArchived,
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts the exact stored value (case-insensitive) or an ascii alias.
func ParseStatus(raw string) (Status, error) {
	trimmed := strings.TrimSpace(raw)
	for _, known := range Statuses {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	if alias, ok := statusAliases[strings.ToLower(trimmed)]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("%w: status '%s' (must be one of: %s)", ErrInvalidValue, raw, joinStatuses())
}

func joinStatuses() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
