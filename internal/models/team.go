package models

import (
	"fmt"
	"strings"
	"time"
)

// Role is a crew position on a project
type Role string

const (
	RoleDirector          Role = "Réalisateur"
	RoleProducer          Role = "Producteur"
	RoleScreenwriter      Role = "Scénariste"
	RoleAssistantDirector Role = "Assistant réalisateur"
	RoleCinematographer   Role = "Chef opérateur"
	RoleScriptSupervisor  Role = "Scripte"
	RoleLocationManager   Role = "Régisseur"
	RoleOther             Role = "Autre"
)

// Roles lists the assignable roles
var Roles = []Role{
	RoleDirector,
	RoleProducer,
	RoleScreenwriter,
	RoleAssistantDirector,
	RoleCinematographer,
	RoleScriptSupervisor,
	RoleLocationManager,
	RoleOther,
}

var roleAliases = map[string]Role{
	"director":           RoleDirector,
	"realisateur":        RoleDirector,
	"producer":           RoleProducer,
	"producteur":         RoleProducer,
	"screenwriter":       RoleScreenwriter,
	"scenariste":         RoleScreenwriter,
	"assistant-director": RoleAssistantDirector,
	"1st-ad":             RoleAssistantDirector,
	"cinematographer":    RoleCinematographer,
	"dop":                RoleCinematographer,
	"script-supervisor":  RoleScriptSupervisor,
	"scripte":            RoleScriptSupervisor,
	"location-manager":   RoleLocationManager,
	"regisseur":          RoleLocationManager,
	"other":              RoleOther,
	"autre":              RoleOther,
}

// ParseRole accepts a stored role name (case-insensitive) or an ascii alias
func ParseRole(raw string) (Role, error) {
	trimmed := strings.TrimSpace(raw)
	for _, known := range Roles {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	if alias, ok := roleAliases[strings.ToLower(trimmed)]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("%w: role '%s'", ErrInvalidValue, raw)
}

// TeamMember is a person assigned to a role on a project
type TeamMember struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the member identifier
func (m *TeamMember) GetID() string {
	return m.ID
}
