package use

import (
	"context"
	"testing"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/testutil"
	clitest "github.com/eustache/eustache/internal/testutil/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseProject_SelectsAndBroadcasts(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestProject(t, db, "Le Film")
	clitest.CreateTestSequence(t, db, id, 1, "Ouverture")

	// A view already open on the same bus, like the TUI
	watcher := app.NewBinding()
	watcher.Mount(context.Background())
	defer watcher.Unmount()
	require.Nil(t, watcher.Snapshot().Project)

	var signals int
	unsubscribe := app.Bus().Subscribe(events.SignalProjectChanged, func(events.Signal) { signals++ })
	defer unsubscribe()

	output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{id})
	require.NoError(t, err)
	assert.Contains(t, output, "Now using project "+id)

	selected, ok := app.Selection.Get()
	assert.True(t, ok)
	assert.Equal(t, id, selected)

	assert.Equal(t, 1, signals, "exactly one broadcast per selection")
	require.NotNil(t, watcher.Snapshot().Project)
	assert.Equal(t, id, watcher.Snapshot().Project.ID)
	assert.Equal(t, 1, watcher.Snapshot().SequenceCount)
}

func TestUseProject_JSON(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestProject(t, db, "Le Film")

	output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{id, "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	project := result["project"].(map[string]interface{})
	assert.Equal(t, id, project["id"])
}

func TestUseProject_UnknownProjectKeepsSelection(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestProject(t, db, "Le Film")
	clitest.SelectProject(t, app, id)

	_, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"nope", "--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))

	selected, _ := app.Selection.Get()
	assert.Equal(t, id, selected)
}

func TestUseProject_MissingArgument(t *testing.T) {
	_, app := clitest.SetupCLITest(t)

	_, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--json"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestUseProject_DryRun(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	id := clitest.CreateTestProject(t, db, "Le Film")

	_, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{id, "--dry-run"})
	require.NoError(t, err)

	_, ok := app.Selection.Get()
	assert.False(t, ok)
}

func TestUseProject_Show(t *testing.T) {
	db, app := clitest.SetupCLITest(t)

	t.Run("nothing selected", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
		require.NoError(t, err)
		assert.Contains(t, output, "No project selected")
	})

	t.Run("selected project", func(t *testing.T) {
		id := clitest.CreateTestProject(t, db, "Le Film")
		clitest.SelectProject(t, app, id)

		output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
		require.NoError(t, err)
		assert.Contains(t, output, "Current project: "+id+" (Le Film)")
	})

	t.Run("selection pointing at a deleted project", func(t *testing.T) {
		clitest.SelectProject(t, app, "gone")

		output, err := clitest.ExecuteCLICommand(t, app, ProjectCmd(), []string{"--show"})
		require.NoError(t, err)
		assert.Contains(t, output, "(project not found)")
	})
}
