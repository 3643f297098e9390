package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/models"
	clitest "github.com/eustache/eustache/internal/testutil/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const screenplay = `# LE FILM

## 1. INT. APPARTEMENT DE MARIE - JOUR

Marie ouvre la fenêtre. La ville **gronde**.
`

func TestScriptCommands(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID := clitest.CreateTestProject(t, db, "Le Film")
	clitest.SelectProject(t, app, projectID)

	path := filepath.Join(t.TempDir(), "scenario.md")
	require.NoError(t, os.WriteFile(path, []byte(screenplay), 0o644))

	t.Run("show before any script", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{"--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	var first models.Script
	t.Run("add from file", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--title", "Brouillon", "--file", path, "--json"})
		require.NoError(t, err)
		clitest.DecodeField(t, output, "script", &first)
		assert.Equal(t, 1, first.Version)
	})

	t.Run("add from stdin", func(t *testing.T) {
		cmd := AddCmd()
		cmd.SetIn(strings.NewReader(screenplay + "\nFIN\n"))
		output, err := clitest.ExecuteCLICommand(t, app, cmd, []string{"--title", "Tournage", "--file", "-", "--json"})
		require.NoError(t, err)

		var second models.Script
		clitest.DecodeField(t, output, "script", &second)
		assert.Equal(t, 2, second.Version)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, AddCmd(), []string{"--title", "X", "--file", "/does/not/exist.md", "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitDataErr, cli.ExitCode(err))
	})

	t.Run("list", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "v2")
		assert.Contains(t, output, "Brouillon")
	})

	t.Run("show latest renders markdown", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Tournage (v2)")
		assert.Contains(t, output, "FIN")
	})

	t.Run("show a given version raw", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ShowCmd(), []string{first.ID, "--raw"})
		require.NoError(t, err)
		assert.Contains(t, output, "**gronde**")
		assert.NotContains(t, output, "FIN")
	})
}
