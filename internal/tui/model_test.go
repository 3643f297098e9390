package tui

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eustache/eustache/internal/app"
	"github.com/eustache/eustache/internal/config"
	"github.com/eustache/eustache/internal/current"
	clitest "github.com/eustache/eustache/internal/testutil/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *sql.DB, *app.App) {
	t.Helper()
	db, a := clitest.SetupCLITest(t)
	b := a.NewBinding()
	t.Cleanup(b.Unmount)
	return New(context.Background(), b, a.ProjectService, config.Default()), db, a
}

// run executes cmd and feeds every resulting message back into m until
// nothing is left. Spinner ticks are dropped so the loop terminates.
func run(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case nil, spinner.TickMsg, tea.QuitMsg:
		return m
	case tea.BatchMsg:
		for _, c := range msg {
			m = run(t, m, c)
		}
		return m
	default:
		next, nextCmd := m.Update(msg)
		return run(t, next, nextCmd)
	}
}

func start(t *testing.T, m Model) Model {
	t.Helper()
	return run(t, m, m.Init()).(Model)
}

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(key)
	return run(t, next, cmd).(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadingBeforeInit(t *testing.T) {
	m, _, _ := newTestModel(t)

	assert.Equal(t, current.StateLoading, m.Snapshot().State)
	assert.Contains(t, m.View(), "Loading")
}

func TestModel_NoSelection(t *testing.T) {
	m, db, _ := newTestModel(t)
	clitest.CreateTestProject(t, db, "Le Film")

	m = start(t, m)

	assert.Equal(t, current.StateReady, m.Snapshot().State)
	view := m.View()
	assert.Contains(t, view, "No project selected")
	assert.Contains(t, view, "Le Film")
}

func TestModel_ShowsStoredSelection(t *testing.T) {
	m, db, a := newTestModel(t)
	clitest.CreateTestProject(t, db, "Autre")
	id := clitest.CreateTestProject(t, db, "Le Film")
	clitest.CreateTestSequence(t, db, id, 1, "Ouverture")
	clitest.SelectProject(t, a, id)

	m = start(t, m)

	require.True(t, m.Snapshot().HasProject())
	assert.Equal(t, id, m.Snapshot().Project.ID)
	assert.Equal(t, id, m.list[m.Cursor()].ID, "cursor starts on the selection")
	assert.Contains(t, m.View(), "Sequences: 1")
}

func TestModel_MissingSelection(t *testing.T) {
	m, _, a := newTestModel(t)
	clitest.SelectProject(t, a, "gone")

	m = start(t, m)

	assert.Contains(t, m.View(), "Selected project gone not found")
}

func TestModel_SelectProjectUpdatesSiblings(t *testing.T) {
	m, db, a := newTestModel(t)
	first := clitest.CreateTestProject(t, db, "Premier")
	second := clitest.CreateTestProject(t, db, "Second")
	clitest.SelectProject(t, a, first)

	sibling := a.NewBinding()
	sibling.Mount(context.Background())
	defer sibling.Unmount()

	m = start(t, m)
	for m.list[m.Cursor()].ID != second {
		before := m.Cursor()
		if before == 0 {
			m = press(t, m, runes("j"))
		} else {
			m = press(t, m, runes("k"))
		}
		require.NotEqual(t, before, m.Cursor(), "cursor must move")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	stored, ok := a.Selection.Get()
	require.True(t, ok)
	assert.Equal(t, second, stored)
	assert.Equal(t, second, m.Snapshot().Project.ID)
	assert.Equal(t, second, sibling.Snapshot().Project.ID)
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	m, db, _ := newTestModel(t)
	clitest.CreateTestProject(t, db, "Seul")
	m = start(t, m)

	m = press(t, m, runes("k"))
	assert.Equal(t, 0, m.Cursor())
	m = press(t, m, runes("j"))
	assert.Equal(t, 0, m.Cursor())
}

func TestModel_RefreshRecounts(t *testing.T) {
	m, db, a := newTestModel(t)
	id := clitest.CreateTestProject(t, db, "Le Film")
	clitest.SelectProject(t, a, id)
	m = start(t, m)
	require.Zero(t, m.Snapshot().SequenceCount)

	// Written behind the services' back, so only a refresh can see it
	clitest.CreateTestSequence(t, db, id, 1, "Ouverture")
	clitest.CreateTestProject(t, db, "Nouveau")

	m = press(t, m, runes("r"))

	assert.Equal(t, 1, m.Snapshot().SequenceCount)
	assert.Contains(t, m.View(), "Nouveau")
}

func TestModel_SnapshotFromOutside(t *testing.T) {
	m, db, a := newTestModel(t)
	id := clitest.CreateTestProject(t, db, "Le Film")
	m = start(t, m)

	other := a.NewBinding()
	other.Mount(context.Background())
	defer other.Unmount()
	other.SetProject(context.Background(), id)

	// The launcher forwards binding changes as BindingChangedMsg
	next, _ := m.Update(BindingChangedMsg{})
	m = next.(Model)
	assert.Equal(t, id, m.Snapshot().Project.ID)
	assert.Contains(t, m.View(), "* Le Film")
}

func TestModel_LateChangeMessagesShowLatestState(t *testing.T) {
	m, db, a := newTestModel(t)
	first := clitest.CreateTestProject(t, db, "Premier")
	second := clitest.CreateTestProject(t, db, "Second")
	m = start(t, m)

	var notified int
	m.Binding().OnChange(func(current.Snapshot) { notified++ })

	m.Binding().SetProject(context.Background(), first)
	m.Binding().SetProject(context.Background(), second)
	require.Equal(t, 4, notified, "loading and ready for each switch")

	// Every queued message is handled after the last switch, in any order
	for i := 0; i < notified; i++ {
		next, _ := m.Update(BindingChangedMsg{})
		m = next.(Model)
		assert.Equal(t, current.StateReady, m.Snapshot().State)
		assert.Equal(t, second, m.Snapshot().ProjectID())
	}

	stored, _ := a.Selection.Get()
	assert.Equal(t, second, stored)
}

func TestModel_ProjectListError(t *testing.T) {
	m, _, _ := newTestModel(t)

	next, _ := m.Update(ProjectsLoadedMsg{Err: errors.New("database is locked")})

	assert.Contains(t, next.View(), "Error loading projects: database is locked")
}

func TestModel_HelpAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = start(t, m)

	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "press any key to close")

	m = press(t, m, runes("x"))
	assert.NotContains(t, m.View(), "press any key to close")

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_CustomKeys(t *testing.T) {
	db, a := clitest.SetupCLITest(t)
	clitest.CreateTestProject(t, db, "Un")
	clitest.CreateTestProject(t, db, "Deux")

	cfg := config.Default()
	cfg.KeyMappings.NextProject = "n"
	b := a.NewBinding()
	defer b.Unmount()

	m := start(t, New(context.Background(), b, a.ProjectService, cfg))
	m = press(t, m, runes("j"))
	assert.Equal(t, 0, m.Cursor())
	m = press(t, m, runes("n"))
	assert.Equal(t, 1, m.Cursor())
}
