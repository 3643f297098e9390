package events

import (
	"log/slog"
	"sync"
	"time"
)

// Bus is a synchronous, in-process signal broadcaster.
//
// Delivery happens on the publisher's goroutine, to every handler subscribed
// to the signal name at the time of the Publish call. Order between handlers
// is unspecified. Nothing is persisted: a handler subscribed after a Publish
// never sees it.
//
// A nil *Bus is valid and drops everything.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]Handler
	nextID uint64
	logger *slog.Logger
}

// NewBus creates an empty bus. A nil logger falls back to slog.Default().
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[string]map[uint64]Handler),
		logger: logger,
	}
}

// Subscribe registers h for signals named name. The returned function removes
// the subscription; calling it more than once is harmless.
func (b *Bus) Subscribe(name string, h Handler) (unsubscribe func()) {
	if b == nil || h == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subs[name] == nil {
		b.subs[name] = make(map[uint64]Handler)
	}
	b.subs[name][id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[name], id)
			if len(b.subs[name]) == 0 {
				delete(b.subs, name)
			}
			b.mu.Unlock()
		})
	}
}

// Publish delivers sig to every current subscriber and returns how many
// handlers were invoked. Handlers may themselves Subscribe or Publish.
// A panicking handler is logged and does not stop delivery to the others.
func (b *Bus) Publish(sig Signal) int {
	if b == nil {
		return 0
	}
	if sig.Timestamp.IsZero() {
		sig.Timestamp = time.Now()
	}

	// Snapshot handlers so none run under the lock
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[sig.Name]))
	for _, h := range b.subs[sig.Name] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.deliver(h, sig)
	}

	b.logger.Debug("signal published",
		"signal", sig.Name,
		"origin", sig.Origin,
		"project_id", sig.ProjectID,
		"handlers", len(handlers))

	return len(handlers)
}

// Subscribers returns the number of handlers registered for name
func (b *Bus) Subscribers(name string) int {
	if b == nil {
		return 0
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[name])
}

func (b *Bus) deliver(h Handler, sig Signal) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("signal handler panicked", "signal", sig.Name, "panic", r)
		}
	}()
	h(sig)
}
