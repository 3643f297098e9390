// Package scene holds all cli commands related to scenes
//
// e.g., eustache scene ...
package scene

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/eustache/eustache/internal/models"
	"github.com/eustache/eustache/internal/services/breakdown"
	"github.com/spf13/cobra"
)

// SceneCmd returns the scene parent command
func SceneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Manage the scenes of a sequence",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// ListCmd returns the scene list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the scenes of a sequence, or those shot in a decor",
		Long: `List scenes.

Examples:
  eustache scene list --sequence=<sequence-id>
  eustache scene list --decor=<decor-id>
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().String("sequence", "", "Sequence ID")
	cmd.Flags().String("decor", "", "Decor ID")
	cmd.MarkFlagsMutuallyExclusive("sequence", "decor")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	sequenceID, _ := cmd.Flags().GetString("sequence")
	decorID, _ := cmd.Flags().GetString("decor")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		var (
			scenes []*models.Scene
			err    error
		)
		switch {
		case sequenceID != "":
			scenes, err = c.App.BreakdownService.ListScenes(cmd.Context(), sequenceID)
		case decorID != "":
			scenes, err = c.App.BreakdownService.ListScenesByDecor(cmd.Context(), decorID)
		default:
			return f.FailWith(cli.ExitUsage, "USAGE_ERROR",
				errors.New("--sequence or --decor is required"),
				"Use 'eustache sequence list' to find a sequence ID")
		}
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			for _, s := range scenes {
				fmt.Println(s.ID)
			}
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"scenes": scenes})
		}

		if len(scenes) == 0 {
			fmt.Println("No scenes")
			return nil
		}
		rows := make([][]string, 0, len(scenes))
		for _, s := range scenes {
			rows = append(rows, []string{strconv.Itoa(s.Number), s.Period, s.Title, s.ID})
		}
		fmt.Println(styles.Table([]string{"#", "Period", "Title", "ID"}, rows))
		return nil
	})
}

// CreateCmd returns the scene create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a scene to a sequence",
		Long: `Add a scene. Without --number it takes the next free number in the sequence.

Examples:
  eustache scene create --sequence=<id> --title="Marie ouvre la fenêtre" --period=JOUR
  eustache scene create --sequence=<id> --decor=<decor-id> --title="Fuite" --period=NUIT
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}
	cmd.Flags().String("sequence", "", "Sequence ID (required)")
	cmd.Flags().String("title", "", "Scene title (required)")
	cmd.Flags().String("decor", "", "Decor ID")
	cmd.Flags().Int("number", 0, "Scene number (default: next free)")
	cmd.Flags().String("period", "", "JOUR, NUIT, AUBE, CRÉPUSCULE...")
	cmd.Flags().String("description", "", "What happens")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	sequenceID, _ := cmd.Flags().GetString("sequence")
	title, _ := cmd.Flags().GetString("title")
	decorID, _ := cmd.Flags().GetString("decor")
	number, _ := cmd.Flags().GetInt("number")
	period, _ := cmd.Flags().GetString("period")
	description, _ := cmd.Flags().GetString("description")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if cmd.Flags().Changed("number") && number <= 0 {
			return f.Fail(breakdown.ErrInvalidNumber, "")
		}

		scene, err := c.App.BreakdownService.CreateScene(cmd.Context(), breakdown.CreateSceneRequest{
			SequenceID:  sequenceID,
			DecorID:     decorID,
			Number:      number,
			Title:       title,
			Period:      period,
			Description: description,
		})
		if err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			fmt.Println(scene.ID)
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"scene": scene})
		}
		fmt.Printf("✓ Scene %d '%s' created (ID: %s)\n", scene.Number, scene.Title, scene.ID)
		return nil
	})
}

// DeleteCmd returns the scene delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <scene-id>",
		Short: "Delete a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.BreakdownService.DeleteScene(cmd.Context(), args[0]); err != nil {
			return f.Fail(err, "")
		}

		if f.Quiet {
			return nil
		}
		if f.JSON {
			return cli.WriteJSON(map[string]interface{}{"scene_id": args[0]})
		}
		fmt.Println("✓ Scene deleted")
		return nil
	})
}
