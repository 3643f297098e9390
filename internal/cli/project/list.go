package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/spf13/cobra"
)

// ListCmd returns the project list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Long:  "List all projects, most recently updated first. The selected project is marked with '*'.",
		RunE:  runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	projects, err := cliInstance.App.ProjectService.GetAllProjects(ctx)
	if err != nil {
		return formatter.FailWith(cli.ExitError, "PROJECT_FETCH_ERROR", err, "")
	}

	selectedID, _ := cliInstance.App.Selection.Get()

	if formatter.Quiet {
		for _, p := range projects {
			fmt.Println(p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":     true,
			"projects":    projects,
			"selected_id": selectedID,
		})
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		fmt.Println("Create one with: eustache project create --title=\"...\"")
		return nil
	}

	fmt.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		marker := " "
		if p.ID == selectedID {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s  %s\n", marker, p.ID, styles.TitleStyle.Render(p.Title), styles.StatusBadge(p.Status))
	}

	return nil
}
