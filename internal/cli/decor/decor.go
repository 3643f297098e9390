// Package decor holds all cli commands related to sets and locations
//
// e.g., eustache decor ...
package decor

import (
	"fmt"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/eustache/eustache/internal/models"
	"github.com/eustache/eustache/internal/services/breakdown"
	"github.com/spf13/cobra"
)

// DecorCmd returns the decor parent command
func DecorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decor",
		Short: "Manage the decors (sets and locations) of the current project",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// ListCmd returns the decor list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List decors",
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

		decors, err := c.App.BreakdownService.ListDecors(cmd.Context(), projectID)
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			for _, d := range decors {
				fmt.Println(d.ID)
			}
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"decors": decors})
		}

		if len(decors) == 0 {
			fmt.Println("No decors yet")
			return nil
		}
		rows := make([][]string, 0, len(decors))
		for _, d := range decors {
			rows = append(rows, []string{string(d.Kind), d.Name, d.Location, d.ID})
		}
		fmt.Println(styles.Table([]string{"Kind", "Name", "Location", "ID"}, rows))
		return nil
	})
}

// CreateCmd returns the decor create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a decor",
		Long: `Add a set or location to the current project.

Examples:
  eustache decor create --name="Appartement de Marie" --kind=INT
  eustache decor create --name="Quai de Seine" --kind=EXT --location="Paris 4e"
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}
	cmd.Flags().String("name", "", "Decor name (required)")
	cmd.Flags().String("location", "", "Address or description of the place")
	cmd.Flags().String("kind", "INT", "INT, EXT or INT/EXT")
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	location, _ := cmd.Flags().GetString("location")
	kind, _ := cmd.Flags().GetString("kind")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.RequireProject(cmd, c, f)
		if err != nil {
			return err
		}

		decor, err := c.App.BreakdownService.CreateDecor(cmd.Context(), breakdown.CreateDecorRequest{
			ProjectID: projectID,
			Name:      name,
			Location:  location,
			Kind:      models.DecorKind(kind),
		})
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			fmt.Println(decor.ID)
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"decor": decor})
		}
		fmt.Printf("✓ Decor '%s' (%s) created (ID: %s)\n", decor.Name, decor.Kind, decor.ID)
		return nil
	})
}

// DeleteCmd returns the decor delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <decor-id>",
		Short: "Delete a decor (its scenes are kept, without decor)",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.BreakdownService.DeleteDecor(cmd.Context(), args[0]); err != nil {
			return f.Fail(err, "Use 'eustache decor list' to see decor IDs")
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"decor_id": args[0]})
		}
		fmt.Println("✓ Decor deleted")
		return nil
	})
}
