package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/eustache/eustache/internal/app"
	"github.com/eustache/eustache/internal/config"
	"github.com/eustache/eustache/internal/current"
	"github.com/eustache/eustache/internal/database"
	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/selection"
	"github.com/eustache/eustache/internal/tui"
)

// Launch starts the TUI application and blocks until it exits
func Launch(ctx context.Context, cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.InitDB(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	application := app.New(db,
		app.WithSelectionMedium(selection.NewFileMedium(cfg.StatePath)),
		app.WithLogger(slog.Default()),
	)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	binding := application.NewBinding()
	defer binding.Unmount()

	model := tui.New(ctx, binding, application.ProjectService, cfg)

	// Follow selection changes made by other processes (optional)
	if cfg.ShouldWatchSelection() {
		watcher, err := startWatcher(ctx, cfg.StatePath)
		if err != nil {
			slog.Warn("failed to watch selection state", "path", cfg.StatePath, "error", err)
			slog.Info("continuing without live selection updates")
		} else {
			defer watcher.Stop()
			model = model.WithWatcher(watcher)
		}
	}

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen())
	defer forward(p, binding, application.Bus())()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}
	return nil
}

func startWatcher(ctx context.Context, path string) (*selection.Watcher, error) {
	watcher, err := selection.NewWatcher(path, slog.Default())
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(ctx); err != nil {
		watcher.Stop()
		return nil, err
	}
	return watcher, nil
}

// forward pushes binding snapshots and data changes into the program.
// The returned function detaches both.
func forward(p *tea.Program, binding *current.Binding, bus *events.Bus) func() {
	removeObserver := binding.OnChange(func(current.Snapshot) {
		p.Send(tui.BindingChangedMsg{})
	})
	unsubscribe := bus.Subscribe(events.SignalDataChanged, func(events.Signal) {
		p.Send(tui.ReloadProjectsMsg{})
	})
	return func() {
		removeObserver()
		unsubscribe()
	}
}
