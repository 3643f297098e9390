package app

import (
	"database/sql"
	"log/slog"

	"github.com/eustache/eustache/internal/current"
	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/selection"
	"github.com/eustache/eustache/internal/services/breakdown"
	"github.com/eustache/eustache/internal/services/project"
	"github.com/eustache/eustache/internal/services/script"
	"github.com/eustache/eustache/internal/services/sequence"
	"github.com/eustache/eustache/internal/services/team"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository

	// Signal bus shared by services and bindings
	bus    *events.Bus
	logger *slog.Logger

	// Service layer (business logic)
	ProjectService   project.Service
	SequenceService  sequence.Service
	BreakdownService breakdown.Service
	ScriptService    script.Service
	TeamService      team.Service

	// Current project selection
	Selection *selection.Store
	Resolver  *current.Resolver
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.bus == nil {
		cfg.bus = events.NewBus(cfg.logger)
	}

	repo := database.NewRepository(db)
	projects := project.NewService(repo, cfg.bus)
	store := selection.NewStore(cfg.medium, cfg.logger)

	return &App{
		repo:             repo,
		bus:              cfg.bus,
		logger:           cfg.logger,
		ProjectService:   projects,
		SequenceService:  sequence.NewService(repo, cfg.bus),
		BreakdownService: breakdown.NewService(repo, cfg.bus),
		ScriptService:    script.NewService(repo, cfg.bus),
		TeamService:      team.NewService(repo, cfg.bus),
		Selection:        store,
		Resolver:         current.NewResolver(store, projects, cfg.logger),
	}
}

// Bus returns the signal bus shared by the services
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// NewBinding creates an unmounted current-project binding wired to the
// application's store, resolver and bus.
func (a *App) NewBinding() *current.Binding {
	return current.NewBinding(a.Resolver, a.bus, a.logger)
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() *database.Repository {
	return a.repo
}

// Close releases the database
func (a *App) Close() error {
	return a.repo.Close()
}
