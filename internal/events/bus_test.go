package events

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus(nil)

	var got []string
	var mu sync.Mutex
	for _, name := range []string{"a", "b", "c"} {
		bus.Subscribe(SignalProjectChanged, func(sig Signal) {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, name+":"+sig.Origin)
		})
	}

	delivered := bus.Publish(Signal{Name: SignalProjectChanged, Origin: "x"})

	assert.Equal(t, 3, delivered)
	assert.ElementsMatch(t, []string{"a:x", "b:x", "c:x"}, got)
}

func TestBus_FiltersByName(t *testing.T) {
	bus := NewBus(nil)

	var projectSignals, dataSignals atomic.Int32
	bus.Subscribe(SignalProjectChanged, func(Signal) { projectSignals.Add(1) })
	bus.Subscribe(SignalDataChanged, func(Signal) { dataSignals.Add(1) })

	bus.Publish(DataChanged("p1"))

	assert.Equal(t, int32(0), projectSignals.Load())
	assert.Equal(t, int32(1), dataSignals.Load())
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)

	var calls atomic.Int32
	unsubscribe := bus.Subscribe(SignalProjectChanged, func(Signal) { calls.Add(1) })
	require.Equal(t, 1, bus.Subscribers(SignalProjectChanged))

	unsubscribe()
	unsubscribe() // idempotent

	assert.Equal(t, 0, bus.Publish(Signal{Name: SignalProjectChanged}))
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, 0, bus.Subscribers(SignalProjectChanged))
}

func TestBus_LateSubscriberMissesPastSignals(t *testing.T) {
	bus := NewBus(nil)
	bus.Publish(Signal{Name: SignalProjectChanged})

	var calls atomic.Int32
	bus.Subscribe(SignalProjectChanged, func(Signal) { calls.Add(1) })

	assert.Equal(t, int32(0), calls.Load(), "signals are not replayed")
}

func TestBus_PanickingHandlerDoesNotStopDelivery(t *testing.T) {
	bus := NewBus(nil)

	var calls atomic.Int32
	bus.Subscribe(SignalProjectChanged, func(Signal) { panic("boom") })
	bus.Subscribe(SignalProjectChanged, func(Signal) { calls.Add(1) })

	assert.NotPanics(t, func() {
		bus.Publish(Signal{Name: SignalProjectChanged})
	})
	assert.Equal(t, int32(1), calls.Load())
}

func TestBus_HandlerMayResubscribe(t *testing.T) {
	bus := NewBus(nil)

	var unsubscribe func()
	unsubscribe = bus.Subscribe(SignalProjectChanged, func(Signal) {
		unsubscribe()
		bus.Subscribe(SignalDataChanged, func(Signal) {})
	})

	bus.Publish(Signal{Name: SignalProjectChanged})

	assert.Equal(t, 0, bus.Subscribers(SignalProjectChanged))
	assert.Equal(t, 1, bus.Subscribers(SignalDataChanged))
}

func TestBus_TimestampFilled(t *testing.T) {
	bus := NewBus(nil)

	var got Signal
	bus.Subscribe(SignalDataChanged, func(sig Signal) { got = sig })
	bus.Publish(DataChanged("p1"))

	assert.False(t, got.Timestamp.IsZero())
	assert.Equal(t, "p1", got.ProjectID)
}

func TestNilBus(t *testing.T) {
	var bus *Bus

	assert.Equal(t, 0, bus.Publish(Signal{Name: SignalProjectChanged}))
	assert.Equal(t, 0, bus.Subscribers(SignalProjectChanged))
	assert.NotPanics(t, func() {
		bus.Subscribe(SignalProjectChanged, func(Signal) {})()
	})
	assert.NotPanics(t, func() {
		Publish(nil, DataChanged(""))
	})
}

func TestBus_ConcurrentPublishSubscribe(t *testing.T) {
	bus := NewBus(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unsubscribe := bus.Subscribe(SignalDataChanged, func(Signal) {})
			unsubscribe()
		}()
		go func() {
			defer wg.Done()
			bus.Publish(DataChanged(""))
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, bus.Subscribers(SignalDataChanged))
}
