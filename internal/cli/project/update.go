package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/models"
	projectservice "github.com/eustache/eustache/internal/services/project"
	"github.com/spf13/cobra"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Update a project",
		Long: `Update the given fields of a project. Fields not passed are left unchanged.

Examples:
  eustache project update 1b9d6bcd --status="En cours"
  eustache project update 1b9d6bcd --title="Nouveau titre" --end=2026-06-30
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("director", "", "New director")
	cmd.Flags().String("producer", "", "New producer")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "New end date (YYYY-MM-DD)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFromCmd(cmd)

	req := projectservice.UpdateProjectRequest{ID: args[0]}
	changed := 0

	stringField := func(name string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		changed++
		v, _ := cmd.Flags().GetString(name)
		return &v
	}
	req.Title = stringField("title")
	req.Description = stringField("description")
	req.Director = stringField("director")
	req.Producer = stringField("producer")

	if raw := stringField("status"); raw != nil {
		status, err := models.ParseStatus(*raw)
		if err != nil {
			return formatter.Fail(err, "")
		}
		req.Status = &status
	}
	if raw := stringField("start"); raw != nil {
		start, err := cli.ParseDate(*raw)
		if err != nil {
			return formatter.FailWith(cli.ExitDataErr, "INVALID_DATE", err, "")
		}
		req.StartDate = start
	}
	if raw := stringField("end"); raw != nil {
		end, err := cli.ParseDate(*raw)
		if err != nil {
			return formatter.FailWith(cli.ExitDataErr, "INVALID_DATE", err, "")
		}
		req.EndDate = end
	}

	if changed == 0 {
		return formatter.FailWith(cli.ExitUsage, "NO_UPDATES",
			fmt.Errorf("at least one field flag is required"),
			"Pass one of --title, --description, --director, --producer, --status, --start, --end")
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

	project, err := cliInstance.App.ProjectService.UpdateProject(ctx, req)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet {
		fmt.Println(project.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"project": project,
		})
	}

	fmt.Printf("✓ Project '%s' updated\n", project.Title)
	return nil
}
