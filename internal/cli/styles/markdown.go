package styles

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// MarkdownWidth is the word wrap applied to rendered markdown
var MarkdownWidth = 80

// RenderMarkdown renders markdown for the terminal. The style follows the
// terminal background; plain ASCII when output is not a terminal.
func RenderMarkdown(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(MarkdownWidth),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return renderer.Render(markdown)
}
