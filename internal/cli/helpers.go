package cli

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// SelectSuggestion is shown whenever a command needs a project
const SelectSuggestion = "Select one with: eustache use project <project-id>, or pass --project"

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddProjectFlag registers --project, which overrides the selection for one command
func AddProjectFlag(cmd *cobra.Command) {
	cmd.Flags().String("project", "", "Project ID (defaults to the selected project)")
}

// GetProjectID returns the --project flag when set, otherwise the persisted
// selection. It does not check that the project exists.
func GetProjectID(cmd *cobra.Command, c *CLI) (string, error) {
	if flag := cmd.Flags().Lookup("project"); flag != nil {
		if value := strings.TrimSpace(flag.Value.String()); value != "" {
			return value, nil
		}
	}

	if id, ok := c.App.Selection.Get(); ok {
		return id, nil
	}
	return "", ErrNoProject
}

// ParseDate accepts YYYY-MM-DD. Empty input gives nil.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid date '%s' (expected YYYY-MM-DD)", raw)
	}
	return &t, nil
}

// FormatDate renders an optional date for human output
func FormatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}

// Truncate shortens s to n runes for table output
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// Run opens the CLI for cmd, calls fn and closes the CLI again
func Run(cmd *cobra.Command, fn func(c *CLI, f *OutputFormatter) error) error {
	formatter := FormatterFromCmd(cmd)

	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.FailWith(ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	return fn(cliInstance, formatter)
}

// RequireProject is GetProjectID reporting a missing project as a usage error
func RequireProject(cmd *cobra.Command, c *CLI, f *OutputFormatter) (string, error) {
	id, err := GetProjectID(cmd, c)
	if err != nil {
		return "", f.Fail(err, SelectSuggestion)
	}
	return id, nil
}

// WriteJSON encodes a success envelope with the given fields
func WriteJSON(fields map[string]interface{}) error {
	payload := map[string]interface{}{"success": true}
	for k, v := range fields {
		payload[k] = v
	}
	return json.NewEncoder(os.Stdout).Encode(payload)
}
