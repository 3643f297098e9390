// Package script holds all cli commands related to screenplay documents
//
// e.g., eustache script ...
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/eustache/eustache/internal/models"
	scriptservice "github.com/eustache/eustache/internal/services/script"
	"github.com/spf13/cobra"
)

// ScriptCmd returns the script parent command
func ScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Manage the screenplay versions of the current project",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}

// ListCmd returns the script list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List script versions, newest first",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.RequireProject(cmd, c, f)
		if err != nil {
			return err
		}

		scripts, err := c.App.ScriptService.ListScripts(cmd.Context(), projectID)
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			for _, s := range scripts {
				fmt.Println(s.ID)
			}
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"scripts": scripts})
		}

		if len(scripts) == 0 {
			fmt.Println("No script yet")
			return nil
		}
		rows := make([][]string, 0, len(scripts))
		for _, s := range scripts {
			rows = append(rows, []string{"v" + strconv.Itoa(s.Version), s.Title, s.CreatedAt.Format("2006-01-02 15:04"), s.ID})
		}
		fmt.Println(styles.Table([]string{"Version", "Title", "Added", "ID"}, rows))
		return nil
	})
}

// AddCmd returns the script add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new version of the script",
		Long: `Store a markdown screenplay as the next version of the project's script.

Examples:
  eustache script add --title="Version de tournage" --file=scenario.md
  cat scenario.md | eustache script add --title="Brouillon" --file=-
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}
	cmd.Flags().String("title", "", "Script title (required)")
	cmd.Flags().String("file", "", "Markdown file to read, '-' for stdin (required)")
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	path, _ := cmd.Flags().GetString("file")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.RequireProject(cmd, c, f)
		if err != nil {
			return err
		}

		content, err := readContent(cmd, path)
		if err != nil {
			return f.FailWith(cli.ExitDataErr, "READ_ERROR", err, "")
		}

		script, err := c.App.ScriptService.AddScript(cmd.Context(), scriptservice.AddScriptRequest{
			ProjectID: projectID,
			Title:     title,
			Content:   content,
		})
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			fmt.Println(script.ID)
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"script": script})
		}
		fmt.Printf("✓ Script '%s' saved as version %d (ID: %s)\n", script.Title, script.Version, script.ID)
		return nil
	})
}

func readContent(cmd *cobra.Command, path string) (string, error) {
	switch path {
	case "":
		return "", errors.New("--file is required")
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}
}

// ShowCmd returns the script show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [script-id]",
		Short: "Render a script version (latest by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetBool("raw")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		ctx := cmd.Context()

		var (
			script *models.Script
			err    error
		)
		if len(args) == 1 {
			script, err = c.App.ScriptService.GetScript(ctx, args[0])
		} else {
			projectID, perr := cli.RequireProject(cmd, c, f)
			if perr != nil {
				return perr
			}
			script, err = c.App.ScriptService.GetLatestScript(ctx, projectID)
		}
		if err != nil {
			return f.Fail(err, "Add one with: eustache script add --title=... --file=...")
		}

		if f.Quiet {
			fmt.Println(script.ID)
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"script": script})
		}

		fmt.Println(styles.TitleStyle.Render(fmt.Sprintf("%s (v%d)", script.Title, script.Version)))
		if raw {
			fmt.Println(script.Content)
			return nil
		}

		rendered, err := styles.RenderMarkdown(script.Content)
		if err != nil {
			// Fall back to the source rather than failing the command
			fmt.Println(script.Content)
			return nil
		}
		fmt.Print(rendered)
		return nil
	})
}
