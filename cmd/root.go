// Package cmd assembles the eustache command tree
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/current"
	"github.com/eustache/eustache/internal/cli/decor"
	"github.com/eustache/eustache/internal/cli/project"
	"github.com/eustache/eustache/internal/cli/scene"
	"github.com/eustache/eustache/internal/cli/script"
	"github.com/eustache/eustache/internal/cli/sequence"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/eustache/eustache/internal/cli/team"
	"github.com/eustache/eustache/internal/cli/tutorial"
	"github.com/eustache/eustache/internal/cli/use"
	"github.com/eustache/eustache/internal/config"
	"github.com/eustache/eustache/internal/launcher"
	"github.com/eustache/eustache/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X .../cmd.Version=..."
var Version = "dev"

// NewRootCmd builds the eustache command tree
func NewRootCmd() *cobra.Command {
	var (
		cfg      *config.Config
		closeLog func() error
	)

	rootCmd := &cobra.Command{
		Use:   "eustache",
		Short: "Eustache - film production manager for the terminal",
		Long: `Eustache manages film projects from the terminal: sequences, decors,
scenes, screenplay versions and the team.

Run without a command to open the dashboard.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			closeLog, err = logging.Init(cfg.LogDir(), cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			styles.Init(cfg.Theme)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cfg)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	rootCmd.AddCommand(project.ProjectCmd())
	rootCmd.AddCommand(use.UseCmd())
	rootCmd.AddCommand(current.CurrentCmd())
	rootCmd.AddCommand(sequence.SequenceCmd())
	rootCmd.AddCommand(decor.DecorCmd())
	rootCmd.AddCommand(scene.SceneCmd())
	rootCmd.AddCommand(script.ScriptCmd())
	rootCmd.AddCommand(team.TeamCmd())
	rootCmd.AddCommand(tutorial.TutorialCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "tui",
		Short: "Open the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context(), cfg)
		},
	})

	return rootCmd
}

type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

// Execute runs the command tree. Errors that were not already reported by a
// command are printed to stderr.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		return err
	}

	rootCmd.PrintErrln("Error:", err)
	var usage usageError
	if errors.As(err, &usage) {
		rootCmd.PrintErrln("Run 'eustache --help' for usage.")
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}
	return err
}
