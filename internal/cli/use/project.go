package use

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/eustache/eustache/internal/cli"
	"github.com/spf13/cobra"
)

// ProjectCmd returns the use project subcommand
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project [project-id]",
		Short: "Select the current project",
		Long: `Select the project subsequent commands work on.

  eustache use project <project-id>   # Select a project
  eustache use project --show         # Show the selected project

The --project flag on other commands takes precedence over the selection.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUseProject,
	}

	cmd.Flags().Bool("show", false, "Show the current project selection")
	cmd.Flags().Bool("dry-run", false, "Validate the project without selecting it")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runUseProject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	showFlag, _ := cmd.Flags().GetBool("show")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	formatter := cli.FormatterFromCmd(cmd)

	if !showFlag && len(args) == 0 {
		return formatter.FailWith(cli.ExitUsage, "USAGE_ERROR",
			errors.New("project ID required"),
			"Usage: eustache use project <project-id>")
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.FailWith(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if showFlag {
		return showCurrentProject(cmd, cliInstance, formatter)
	}

	projectID := args[0]

	// Validate project exists
	project, err := cliInstance.App.ProjectService.GetProjectByID(ctx, projectID)
	if err != nil {
		return formatter.Fail(err, "Use 'eustache project list' to see available projects")
	}

	if dryRun {
		fmt.Fprintf(os.Stderr, "Would select project %s (%s)\n", project.ID, project.Title)
		return nil
	}

	binding := cliInstance.MountBinding(ctx)
	defer binding.Unmount()
	binding.SetProject(ctx, project.ID)

	snap := binding.Snapshot()

	if formatter.Quiet {
		fmt.Println(project.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":        true,
			"project":        snap.Project,
			"sequence_count": snap.SequenceCount,
		})
	}

	fmt.Printf("Now using project %s: %s\n", project.ID, project.Title)
	return nil
}

func showCurrentProject(cmd *cobra.Command, cliInstance *cli.CLI, formatter *cli.OutputFormatter) error {
	ctx := cmd.Context()

	selectedID, ok := cliInstance.App.Selection.Get()
	if !ok {
		if formatter.JSON {
			return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"success":     true,
				"selected_id": nil,
			})
		}
		if !formatter.Quiet {
			fmt.Println("No project selected")
			fmt.Println("Use 'eustache use project <project-id>' to select one")
		}
		return nil
	}

	res := cliInstance.App.Resolver.ResolveSelected(ctx)

	if formatter.Quiet {
		fmt.Println(selectedID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":     true,
			"selected_id": selectedID,
			"project":     res.Project,
		})
	}

	if res.Project == nil {
		fmt.Printf("Current project: %s (project not found)\n", selectedID)
		return nil
	}

	fmt.Printf("Current project: %s (%s)\n", selectedID, res.Project.Title)
	return nil
}
