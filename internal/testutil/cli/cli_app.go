package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/eustache/eustache/internal/app"
	"github.com/eustache/eustache/internal/testutil"
	"github.com/spf13/cobra"
)

// ExecuteCLICommand executes a CLI command with a test app instance.
// This injects the app through the context so commands use the test database.
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithContext(t, context.Background(), testApp, cmd, args)
}

// ExecuteCLICommandWithContext executes a CLI command with a specific context and test app
func ExecuteCLICommandWithContext(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	cmd.SetArgs(args)

	ctxWithApp := context.WithValue(ctx, testutil.TestAppKey, testApp)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctxWithApp)
	})

	return output, executeErr
}

// DecodeField unmarshals one top-level field of a JSON success envelope into v
func DecodeField(t *testing.T, output, key string, v interface{}) {
	t.Helper()

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(output), &envelope); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}
	if string(envelope["success"]) != "true" {
		t.Fatalf("Expected success envelope, got: %s", output)
	}
	raw, ok := envelope[key]
	if !ok {
		t.Fatalf("Expected '%s' key in JSON output: %s", key, output)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("Failed to decode %s: %v\nOutput: %s", key, err, output)
	}
}
