package current

import (
	"context"
	"log/slog"
	"sync"

	"github.com/eustache/eustache/internal/events"
	"github.com/eustache/eustache/internal/models"
	"github.com/eustache/eustache/internal/selection"
	"github.com/google/uuid"
)

// State is the loading axis of a binding
type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is a copy of a binding's state at one instant.
// Err may be set while State is StateReady.
type Snapshot struct {
	State         State
	Project       *models.Project
	SequenceCount int
	Err           string
}

// HasProject reports whether a project is resolved
func (s Snapshot) HasProject() bool {
	return s.Project != nil
}

// ProjectID returns the resolved project's id, "" when there is none
func (s Snapshot) ProjectID() string {
	if s.Project == nil {
		return ""
	}
	return s.Project.ID
}

// Binding keeps one view's copy of the current project in sync with the
// persisted selection, the signal bus and (optionally) the state file on disk.
//
// Resolutions can overlap. Each one is tagged with a generation number and
// only the most recently started one may update the state; older results are
// dropped. Nothing is applied after Unmount.
type Binding struct {
	resolver *Resolver
	bus      events.Notifier
	logger   *slog.Logger
	origin   string

	mu           sync.Mutex
	snap         Snapshot
	generation   uint64
	mounted      bool
	ctx          context.Context
	cleanups     []func()
	observers    map[int]func(Snapshot)
	nextObserver int
}

// NewBinding creates an unmounted binding. bus may be nil, in which case
// selection changes are only seen by this binding.
func NewBinding(resolver *Resolver, bus events.Notifier, logger *slog.Logger) *Binding {
	if logger == nil {
		logger = slog.Default()
	}
	return &Binding{
		resolver:  resolver,
		bus:       bus,
		logger:    logger,
		origin:    uuid.NewString(),
		snap:      Snapshot{State: StateLoading},
		observers: make(map[int]func(Snapshot)),
	}
}

// Origin identifies the signals this binding publishes
func (b *Binding) Origin() string {
	return b.origin
}

// Snapshot returns the current state
func (b *Binding) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap
}

// OnChange registers fn to be called with every new state.
// fn runs on whichever goroutine caused the change and must not block.
func (b *Binding) OnChange(fn func(Snapshot)) (remove func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextObserver++
	id := b.nextObserver
	b.observers[id] = fn
	return func() {
		b.mu.Lock()
		delete(b.observers, id)
		b.mu.Unlock()
	}
}

// Mount subscribes to the bus and performs the initial resolution.
// It returns once the binding is ready.
func (b *Binding) Mount(ctx context.Context) {
	b.mu.Lock()
	if b.mounted {
		b.mu.Unlock()
		return
	}
	b.mounted = true
	b.ctx = ctx
	if b.bus != nil {
		b.cleanups = append(b.cleanups,
			b.bus.Subscribe(events.SignalProjectChanged, b.onProjectChanged),
			b.bus.Subscribe(events.SignalDataChanged, b.onDataChanged),
		)
	}
	b.mu.Unlock()

	b.logger.Debug("binding mounted", "origin", b.origin)
	b.refresh(ctx, true)
}

// Unmount detaches the binding. In-flight resolutions still finish but their
// results are discarded.
func (b *Binding) Unmount() {
	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	b.mounted = false
	b.generation++
	cleanups := b.cleanups
	b.cleanups = nil
	b.ctx = nil
	b.mu.Unlock()

	for _, cleanup := range cleanups {
		cleanup()
	}
	b.logger.Debug("binding unmounted", "origin", b.origin)
}

// SetProject persists id as the selection, refreshes this binding and
// broadcasts exactly one SignalProjectChanged.
func (b *Binding) SetProject(ctx context.Context, id string) {
	if err := b.resolver.Store().Set(id); err != nil {
		// Keep going: siblings still resolve whatever the store now holds
		b.logger.Warn("selection not persisted", "project_id", id, "error", err)
	}

	b.refresh(ctx, true)

	events.Publish(b.bus, events.Signal{
		Name:      events.SignalProjectChanged,
		Origin:    b.origin,
		ProjectID: id,
	})
}

// HandleStorageChange re-resolves after the selection was changed from
// outside this binding. The previous project stays visible meanwhile.
// Nothing happens when the stored id is the one already resolved.
func (b *Binding) HandleStorageChange(ctx context.Context) {
	id, _ := b.resolver.Store().Get()

	b.mu.Lock()
	unchanged := b.snap.State == StateReady && b.snap.Project != nil && b.snap.Project.ID == id
	b.mu.Unlock()
	if unchanged {
		return
	}

	b.refresh(ctx, false)
}

// StoredID returns the raw persisted selection, whether or not it resolved
func (b *Binding) StoredID() string {
	id, _ := b.resolver.Store().Get()
	return id
}

// Refresh re-resolves the current selection on demand, keeping the
// previous project visible until the new resolution lands.
func (b *Binding) Refresh(ctx context.Context) {
	b.refresh(ctx, false)
}

// WatchStorage links w to HandleStorageChange until Unmount
func (b *Binding) WatchStorage(ctx context.Context, w *selection.Watcher) {
	if w == nil {
		return
	}
	remove := w.OnChange(func() { b.HandleStorageChange(ctx) })

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mounted {
		remove()
		return
	}
	b.cleanups = append(b.cleanups, remove)
}

func (b *Binding) onProjectChanged(sig events.Signal) {
	if sig.Origin == b.origin {
		return
	}
	ctx := b.mountContext()
	if ctx == nil {
		return
	}
	b.refresh(ctx, false)
}

func (b *Binding) onDataChanged(sig events.Signal) {
	b.mu.Lock()
	ctx := b.ctx
	relevant := sig.ProjectID == "" || b.snap.Project == nil || sig.ProjectID == b.snap.Project.ID
	b.mu.Unlock()

	if ctx == nil || !relevant {
		return
	}
	b.refresh(ctx, false)
}

func (b *Binding) mountContext() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx
}

func (b *Binding) refresh(ctx context.Context, showLoading bool) {
	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	b.generation++
	gen := b.generation
	var loading *Snapshot
	if showLoading && b.snap.State != StateLoading {
		b.snap.State = StateLoading
		s := b.snap
		loading = &s
	}
	b.mu.Unlock()

	if loading != nil {
		b.notify(*loading)
	}

	res := b.resolver.ResolveSelected(ctx)

	b.mu.Lock()
	if !b.mounted || gen != b.generation {
		b.mu.Unlock()
		b.logger.Debug("dropping stale resolution", "origin", b.origin, "generation", gen)
		return
	}
	b.snap = Snapshot{
		State:         StateReady,
		Project:       res.Project,
		SequenceCount: res.SequenceCount,
		Err:           res.Err,
	}
	snap := b.snap
	b.mu.Unlock()

	b.notify(snap)
}

func (b *Binding) notify(snap Snapshot) {
	b.mu.Lock()
	observers := make([]func(Snapshot), 0, len(b.observers))
	for _, fn := range b.observers {
		observers = append(observers, fn)
	}
	b.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
}
