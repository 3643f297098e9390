package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/eustache/eustache/internal/app"
	"github.com/eustache/eustache/internal/config"
	"github.com/eustache/eustache/internal/current"
	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/selection"
	"github.com/eustache/eustache/internal/testutil"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
	owned  bool // whether Close releases the App
}

// NewCLI loads the configuration, opens the database and wires the selection
// state file.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db,
		app.WithSelectionMedium(selection.NewFileMedium(cfg.StatePath)),
		app.WithLogger(slog.Default()),
	)

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
		owned:  true,
	}, nil
}

// GetCLIFromContext returns the CLI for a command. Tests inject an App
// through the context; otherwise a real CLI is created.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if testApp, ok := ctx.Value(testutil.TestAppKey).(*app.App); ok && testApp != nil {
			return &CLI{App: testApp, Config: config.Default(), ctx: ctx}, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}

// MountBinding returns a ready binding on the current selection.
// The caller must Unmount it.
func (c *CLI) MountBinding(ctx context.Context) *current.Binding {
	binding := c.App.NewBinding()
	binding.Mount(ctx)
	return binding
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
