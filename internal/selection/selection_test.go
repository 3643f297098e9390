package selection

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type failingMedium struct{}

func (failingMedium) Get(string) (string, bool, error) { return "", false, errors.New("boom") }
func (failingMedium) Set(string, string) error         { return errors.New("boom") }

func TestStore_EmptyReportsNone(t *testing.T) {
	store := NewStore(NewMemoryMedium(), nil)
	id, ok := store.Get()
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestStore_SetThenGet(t *testing.T) {
	store := NewStore(NewMemoryMedium(), nil)
	require.NoError(t, store.Set("p-1"))
	require.NoError(t, store.Set("p-2"))

	id, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "p-2", id)
}

func TestStore_NilMedium(t *testing.T) {
	store := NewStore(nil, nil)
	assert.NoError(t, store.Set("p-1"))
	_, ok := store.Get()
	assert.False(t, ok)

	var nilStore *Store
	assert.NoError(t, nilStore.Set("p-1"))
	_, ok = nilStore.Get()
	assert.False(t, ok)
}

func TestStore_UnreadableMediumIsNone(t *testing.T) {
	store := NewStore(failingMedium{}, nil)
	_, ok := store.Get()
	assert.False(t, ok)
	assert.Error(t, store.Set("p-1"))
}

func TestStore_DoesNotValidateShape(t *testing.T) {
	store := NewStore(NewMemoryMedium(), nil)
	for _, value := range []string{"not a uuid at all", "  ", "\t"} {
		require.NoError(t, store.Set(value))
		id, ok := store.Get()
		assert.True(t, ok, "%q", value)
		assert.Equal(t, value, id)
	}
}

func TestFileMedium_KeepsWhitespaceIDs(t *testing.T) {
	store := NewStore(NewFileMedium(filepath.Join(t.TempDir(), "state.yaml")), nil)
	require.NoError(t, store.Set("  "))
	id, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "  ", id)
}

func TestFileMedium_RoundTripAndPreservesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.yaml")
	m := NewFileMedium(path)

	_, ok, err := m.Get(SelectedProjectKey)
	require.NoError(t, err)
	assert.False(t, ok, "missing file means no value")

	require.NoError(t, m.Set("other", "kept"))
	require.NoError(t, m.Set(SelectedProjectKey, "abc"))

	value, ok, err := m.Get(SelectedProjectKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	other, ok, err := NewFileMedium(path).Get("other")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kept", other)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "selected_project_id: abc")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileMedium_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":::not yaml\n\t- ["), 0o644))

	store := NewStore(NewFileMedium(path), nil)
	_, ok := store.Get()
	assert.False(t, ok, "corrupt state reads as no selection")

	require.NoError(t, store.Set("fresh"))
	id, ok := store.Get()
	assert.True(t, ok)
	assert.Equal(t, "fresh", id)
}

func TestWatcher_NotifiesOnExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	changed := make(chan struct{}, 4)
	w.OnChange(func() { changed <- struct{}{} })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop()

	// Another process writing the file
	require.NoError(t, NewFileMedium(path).Set(SelectedProjectKey, "from-elsewhere"))

	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	id, ok := NewStore(NewFileMedium(path), nil).Get()
	assert.True(t, ok)
	assert.Equal(t, "from-elsewhere", id)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(filepath.Join(dir, "state.yaml"), nil)
	require.NoError(t, err)

	changed := make(chan struct{}, 4)
	w.OnChange(func() { changed <- struct{}{} })

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-changed:
		t.Fatal("unrelated file triggered a change")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_RemoveHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.yaml")
	w, err := NewWatcher(path, nil)
	require.NoError(t, err)

	changed := make(chan struct{}, 4)
	remove := w.OnChange(func() { changed <- struct{}{} })
	remove()

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, NewFileMedium(path).Set(SelectedProjectKey, "x"))

	select {
	case <-changed:
		t.Fatal("removed handler was called")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "state.yaml"), nil)
	require.NoError(t, err)
	w.Stop()
}

func TestWatcher_StopAfterFailedStart(t *testing.T) {
	// The state directory cannot be created below a regular file
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	w, err := NewWatcher(filepath.Join(blocker, "eustache", "state.yaml"), nil)
	require.NoError(t, err)
	require.Error(t, w.Start(context.Background()))

	stopped := make(chan struct{})
	go func() {
		w.Stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop blocked after a failed Start")
	}
}

func TestWatcher_StopTwice(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "state.yaml"), nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	w.Stop()
	w.Stop()
}
