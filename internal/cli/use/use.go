// Package use holds all cli commands related to setting contextual information
// e.g., eustache use ...
package use

import (
	"github.com/spf13/cobra"
)

// UseCmd returns the use parent command
func UseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "use",
		Short: "Manage contextual settings (current project)",
		Long: `Set and show persistent context that applies to subsequent commands,
eliminating the need to repeatedly pass --project.

The selection is stored in the state file and shared by every eustache
process: an open 'eustache tui' follows it immediately.

Examples:
  eustache use project 1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed
  eustache use project --show`,
	}

	cmd.AddCommand(ProjectCmd())

	return cmd
}
