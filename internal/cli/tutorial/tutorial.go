// Package tutorial prints the quick start guide
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/eustache/eustache/internal/cli/styles"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// TutorialCmd returns the tutorial command
func TutorialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show the quick start guide",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			return outputTutorial(raw)
		},
	}
	cmd.Flags().Bool("raw", false, "Print the markdown source")
	return cmd
}

func outputTutorial(raw bool) error {
	if raw {
		fmt.Print(tutorialContent)
		return nil
	}
	rendered, err := styles.RenderMarkdown(tutorialContent)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}
