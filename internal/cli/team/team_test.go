package team

import (
	"testing"

	"github.com/eustache/eustache/internal/cli"
	"github.com/eustache/eustache/internal/models"
	"github.com/eustache/eustache/internal/testutil"
	clitest "github.com/eustache/eustache/internal/testutil/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamCommands(t *testing.T) {
	db, app := clitest.SetupCLITest(t)
	projectID := clitest.CreateTestProject(t, db, "Le Film")
	clitest.SelectProject(t, app, projectID)

	var member models.TeamMember
	t.Run("assign with alias", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, AssignCmd(), []string{
			"--name", "Agnès", "--role", "dop", "--email", "agnes@example.com", "--json",
		})
		require.NoError(t, err)
		clitest.DecodeField(t, output, "member", &member)
		assert.Equal(t, models.RoleCinematographer, member.Role)
	})

	t.Run("validation", func(t *testing.T) {
		tests := [][]string{
			{"--name", "X", "--role", "caterer"},
			{"--name", "X", "--role", "dop", "--email", "not-an-email"},
			{"--role", "dop"},
		}
		for _, args := range tests {
			_, err := clitest.ExecuteCLICommand(t, app, AssignCmd(), append(args, "--json"))
			require.Error(t, err, "args %v", args)
			assert.Equal(t, cli.ExitValidation, cli.ExitCode(err), "args %v", args)
		}
	})

	t.Run("list", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, ListCmd(), nil)
		require.NoError(t, err)
		assert.Contains(t, output, "Agnès")
		assert.Contains(t, output, "Chef opérateur")
	})

	t.Run("remove from another project is not found", func(t *testing.T) {
		other := clitest.CreateTestProject(t, db, "Autre")
		_, err := clitest.ExecuteCLICommand(t, app, RemoveCmd(), []string{member.ID, "--project", other, "--json"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotFound, cli.ExitCode(err))
	})

	t.Run("remove", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, app, RemoveCmd(), []string{member.ID})
		require.NoError(t, err)
		assert.Zero(t, testutil.CountRows(t, db, "team_members", ""))
	})
}
