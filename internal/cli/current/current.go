// Package current holds the command that prints the current project
//
// e.g., eustache current
package current

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/project"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/spf13/cobra"
)

// CurrentCmd returns the current command
func CurrentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "current",
		Short: "Show the current project and its sequence count",
		Long: `Resolve the selected project the same way the TUI does and print it.

Prints nothing but a hint when no project is selected or when the selected
project no longer exists.`,
		Args: cobra.NoArgs,
		RunE: runCurrent,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCurrent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	binding := cliInstance.MountBinding(ctx)
	defer binding.Unmount()
	snap := binding.Snapshot()
	storedID, _ := cliInstance.App.Selection.Get()

	if formatter.Quiet {
		if snap.HasProject() {
			fmt.Println(snap.Project.ID)
		}
		return nil
	}

	if formatter.JSON {
		payload := map[string]interface{}{
			"success":        true,
			"selected_id":    storedID,
			"project":        snap.Project,
			"sequence_count": snap.SequenceCount,
		}
		if snap.Err != "" {
			payload["error"] = snap.Err
		}
		return json.NewEncoder(os.Stdout).Encode(payload)
	}

	if !snap.HasProject() {
		if storedID != "" {
			fmt.Printf("Selected project %s not found\n", storedID)
		} else {
			fmt.Println("No project selected")
		}
		fmt.Println(cli.SelectSuggestion)
		return nil
	}

	fmt.Println(project.RenderProject(snap.Project, snap.SequenceCount))
	if snap.Err != "" {
		fmt.Println(styles.ErrorStyle.Render(snap.Err))
	}
	return nil
}
