// Package events is the in-process notification bus shared by every view of
// the application: CLI commands, the TUI and current-project bindings.
package events

import "time"

// Signal names
const (
	// SignalProjectChanged fires whenever the selected project is changed
	// through a binding. It carries no payload besides Origin.
	SignalProjectChanged = "eustache:project-changed"

	// SignalDataChanged fires after a service committed a write.
	// ProjectID tells which project was modified ("" = unknown / several).
	SignalDataChanged = "eustache:data-changed"
)

// Signal is one broadcast on the bus
type Signal struct {
	Name      string
	Origin    string // id of the publisher, lets a binding skip its own broadcast
	ProjectID string
	Timestamp time.Time
}

// Handler receives signals. It runs on the publisher's goroutine.
type Handler func(Signal)
