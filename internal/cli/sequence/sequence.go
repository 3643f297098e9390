// Package sequence holds all cli commands related to sequences
//
// e.g., eustache sequence ...
package sequence

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/styles"
	sequenceservice "github.com/eustache/eustache/internal/services/sequence"
	"github.com/spf13/cobra"
)

// SequenceCmd returns the sequence parent command
func SequenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sequence",
		Aliases: []string{"seq"},
		Short:   "Manage the sequences of the current project",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// ListCmd returns the sequence list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sequences in script order",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		ctx := cmd.Context()
		projectID, err := cli.RequireProject(cmd, c, f)
		if err != nil {
			return err
		}

		sequences, err := c.App.SequenceService.ListSequences(ctx, projectID)
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			for _, s := range sequences {
				fmt.Println(s.ID)
			}
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"sequences": sequences})
		}

		if len(sequences) == 0 {
			fmt.Println("No sequences yet")
			return nil
		}
		rows := make([][]string, 0, len(sequences))
		for _, s := range sequences {
			rows = append(rows, []string{strconv.Itoa(s.Number), s.Title, cli.Truncate(s.Summary, 40), s.ID})
		}
		fmt.Println(styles.Table([]string{"#", "Title", "Summary", "ID"}, rows))
		return nil
	})
}

// CreateCmd returns the sequence create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a sequence to the current project",
		Long: `Add a sequence. Without --number it takes the next free number.

Examples:
  eustache sequence create --title="Poursuite sur les toits"
  eustache sequence create --title="Prologue" --number=0 --project=<id>
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}
	cmd.Flags().String("title", "", "Sequence title (required)")
	cmd.Flags().Int("number", 0, "Sequence number (default: next free)")
	cmd.Flags().String("summary", "", "Short summary")
	cli.AddProjectFlag(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	number, _ := cmd.Flags().GetInt("number")
	summary, _ := cmd.Flags().GetString("summary")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		ctx := cmd.Context()
		projectID, err := cli.RequireProject(cmd, c, f)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("number") && number <= 0 {
			return f.Fail(sequenceservice.ErrInvalidNumber, "")
		}

		seq, err := c.App.SequenceService.CreateSequence(ctx, sequenceservice.CreateSequenceRequest{
			ProjectID: projectID,
			Number:    number,
			Title:     title,
			Summary:   summary,
		})
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			fmt.Println(seq.ID)
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"sequence": seq})
		}
		fmt.Printf("✓ Sequence %d '%s' created (ID: %s)\n", seq.Number, seq.Title, seq.ID)
		return nil
	})
}

// UpdateCmd returns the sequence update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <sequence-id>",
		Short: "Renumber, retitle or summarize a sequence",
		Long: `Update a sequence. Only the given flags are changed.

Examples:
  eustache sequence update <id> --title="Poursuite finale"
  eustache sequence update <id> --number=4 --summary="Marie rattrape le voleur"
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().Int("number", 0, "New sequence number")
	cmd.Flags().String("summary", "", "New summary")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	req := sequenceservice.UpdateSequenceRequest{ID: args[0]}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("number") {
		number, _ := cmd.Flags().GetInt("number")
		req.Number = &number
	}
	if cmd.Flags().Changed("summary") {
		summary, _ := cmd.Flags().GetString("summary")
		req.Summary = &summary
	}

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if req.Title == nil && req.Number == nil && req.Summary == nil {
			return f.FailWith(cli.ExitUsage, "USAGE_ERROR", errors.New("nothing to update"),
				"Pass at least one of --title, --number, --summary")
		}

		seq, err := c.App.SequenceService.UpdateSequence(cmd.Context(), req)
		if err != nil {
			if errors.Is(err, sequenceservice.ErrSequenceNotFound) {
				return f.Fail(err, "Use 'eustache sequence list' to see sequence IDs")
			}
			return f.Fail(err, "")
		}

		if f.Quiet {
			fmt.Println(seq.ID)
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"sequence": seq})
		}
		fmt.Printf("✓ Sequence %d '%s' updated\n", seq.Number, seq.Title)
		return nil
	})
}

// DeleteCmd returns the sequence delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <sequence-id>",
		Short: "Delete a sequence and its scenes",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.SequenceService.DeleteSequence(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, sequenceservice.ErrSequenceNotFound) {
				return f.Fail(err, "Use 'eustache sequence list' to see sequence IDs")
			}
			return f.Fail(err, "")
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"sequence_id": args[0]})
		}
		fmt.Println("✓ Sequence deleted")
		return nil
	})
}
