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

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  eustache project create --title="Les Enfants du paradis"

  # JSON output for agents
  eustache project create --title="Court métrage" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(eustache project create --title="Court métrage" --quiet)

  # Create and select it as the current project
  eustache project create --title="Série" --status="En cours" --use
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Project title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("director", "", "Director name")
	cmd.Flags().String("producer", "", "Producer name")
	cmd.Flags().String("status", "", "Status: En préparation, En cours, Terminé, Archivé")
	cmd.Flags().String("start", "", "Shooting start date (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Shooting end date (YYYY-MM-DD)")
	cmd.Flags().Bool("use", false, "Select the new project as the current project")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	director, _ := cmd.Flags().GetString("director")
	producer, _ := cmd.Flags().GetString("producer")
	statusRaw, _ := cmd.Flags().GetString("status")
	startRaw, _ := cmd.Flags().GetString("start")
	endRaw, _ := cmd.Flags().GetString("end")
	useIt, _ := cmd.Flags().GetBool("use")

	formatter := cli.FormatterFromCmd(cmd)

	var status models.Status
	if statusRaw != "" {
		parsed, err := models.ParseStatus(statusRaw)
		if err != nil {
			return formatter.Fail(err, "")
		}
		status = parsed
	}
	startDate, err := cli.ParseDate(startRaw)
	if err != nil {
		return formatter.FailWith(cli.ExitDataErr, "INVALID_DATE", err, "")
	}
	endDate, err := cli.ParseDate(endRaw)
	if err != nil {
		return formatter.FailWith(cli.ExitDataErr, "INVALID_DATE", err, "")
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

	project, err := cliInstance.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Title:       title,
		Description: description,
		Director:    director,
		Producer:    producer,
		Status:      status,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return formatter.Fail(err, "")
	}

	if useIt {
		binding := cliInstance.MountBinding(ctx)
		binding.SetProject(ctx, project.ID)
		binding.Unmount()
	}

	// Output based on mode (JSON/Quiet/Human)
	if formatter.Quiet {
		fmt.Println(project.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"project":  project,
			"selected": useIt,
		})
	}

	fmt.Printf("✓ Project '%s' created successfully (ID: %s)\n", project.Title, project.ID)
	if description != "" {
		fmt.Printf("  Description: %s\n", description)
	}
	if useIt {
		fmt.Println("  Now using this project")
	}

	return nil
}
