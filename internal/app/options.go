package app

import (
	"log/slog"

	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/selection"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	bus    *events.Bus
	medium selection.Medium
	logger *slog.Logger
}

// WithBus shares an existing bus instead of creating one
func WithBus(bus *events.Bus) Option {
	return func(cfg *appConfig) {
		cfg.bus = bus
	}
}

// WithSelectionMedium sets where the current project selection is persisted.
// Without it the selection is never remembered.
func WithSelectionMedium(m selection.Medium) Option {
	return func(cfg *appConfig) {
		cfg.medium = m
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
