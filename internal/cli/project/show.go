package project

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/eustache/eustache/internal/models"
	"github.com/spf13/cobra"
)

// ShowCmd returns the project show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show a project and its sequence count",
		Long:  "Show a project by ID. Without an ID, shows the selected project.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	var projectID string
	if len(args) == 1 {
		projectID = args[0]
	} else {
		id, ok := cliInstance.App.Selection.Get()
		if !ok {
			return formatter.Fail(cli.ErrNoProject, cli.SelectSuggestion)
		}
		projectID = id
	}

	project, err := cliInstance.App.ProjectService.GetProjectByID(ctx, projectID)
	if err != nil {
		return formatter.Fail(err, "Use 'eustache project list' to see available projects")
	}

	count, err := cliInstance.App.ProjectService.GetSequenceCount(ctx, project.ID)
	if err != nil {
		return formatter.FailWith(cli.ExitError, "COUNT_ERROR", err, "")
	}

	if formatter.Quiet {
		fmt.Println(project.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":        true,
			"project":        project,
			"sequence_count": count,
		})
	}

	fmt.Println(RenderProject(project, count))
	return nil
}

// RenderProject renders a project card, shared with the current command
func RenderProject(p *models.Project, sequenceCount int) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(p.ID))
	b.WriteString("\n\n")
	b.WriteString(styles.Field("Status", styles.StatusBadge(p.Status)) + "\n")
	if p.Director != "" {
		b.WriteString(styles.Field("Director", p.Director) + "\n")
	}
	if p.Producer != "" {
		b.WriteString(styles.Field("Producer", p.Producer) + "\n")
	}
	b.WriteString(styles.Field("Shooting", cli.FormatDate(p.StartDate)+" → "+cli.FormatDate(p.EndDate)) + "\n")
	b.WriteString(styles.Field("Sequences", fmt.Sprintf("%d", sequenceCount)))
	if p.Description != "" {
		b.WriteString("\n\n" + p.Description)
	}
	return styles.RenderCard(b.String())
}
