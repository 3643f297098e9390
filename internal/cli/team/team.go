// Package team holds all cli commands related to crew assignments
//
// e.g., eustache team ...
package team

import (
	"fmt"
	"strings"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/eustache/eustache/internal/models"
	teamservice "github.com/eustache/eustache/internal/services/team"
	"github.com/spf13/cobra"
)

// TeamCmd returns the team parent command
func TeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage who does what on the current project",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AssignCmd())
	cmd.AddCommand(RemoveCmd())

	return cmd
}

// ListCmd returns the team list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members and their roles",
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

		members, err := c.App.TeamService.ListTeam(cmd.Context(), projectID)
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			for _, m := range members {
				fmt.Println(m.ID)
			}
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"team": members})
		}

		if len(members) == 0 {
			fmt.Println("Nobody assigned yet")
			return nil
		}
		rows := make([][]string, 0, len(members))
		for _, m := range members {
			rows = append(rows, []string{string(m.Role), m.Name, m.Email, m.ID})
		}
		fmt.Println(styles.Table([]string{"Role", "Name", "Email", "ID"}, rows))
		return nil
	})
}

// AssignCmd returns the team assign subcommand
func AssignCmd() *cobra.Command {
	roles := make([]string, 0, len(models.Roles))
	for _, r := range models.Roles {
		roles = append(roles, string(r))
	}

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Give someone a role on the current project",
		Long: fmt.Sprintf(`Give someone a role on the current project.

Roles: %s
ASCII aliases are accepted (director, producer, dop, scripte, regisseur...).

Examples:
  eustache team assign --name="Agnès" --role=director --email=agnes@example.com
`, strings.Join(roles, ", ")),
		Args: cobra.NoArgs,
		RunE: runAssign,
	}
	cmd.Flags().String("name", "", "Person name (required)")
	cmd.Flags().String("role", "", "Role (required)")
	cmd.Flags().String("email", "", "Contact email")
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runAssign(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	role, _ := cmd.Flags().GetString("role")
	email, _ := cmd.Flags().GetString("email")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.RequireProject(cmd, c, f)
		if err != nil {
			return err
		}

		member, err := c.App.TeamService.Assign(cmd.Context(), teamservice.AssignRequest{
			ProjectID: projectID,
			Name:      name,
			Email:     email,
			Role:      models.Role(role),
		})
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			fmt.Println(member.ID)
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"member": member})
		}
		fmt.Printf("✓ %s is now %s\n", member.Name, member.Role)
		return nil
	})
}

// RemoveCmd returns the team remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <member-id>",
		Short: "Remove a team member from the current project",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		projectID, err := cli.RequireProject(cmd, c, f)
		if err != nil {
			return err
		}

		if err := c.App.TeamService.Remove(cmd.Context(), projectID, args[0]); err != nil {
			return f.Fail(err, "Use 'eustache team list' to see member IDs")
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"member_id": args[0]})
		}
		fmt.Println("✓ Team member removed")
		return nil
	})
}
