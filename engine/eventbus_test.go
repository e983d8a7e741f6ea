package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testEventKilled EventType = iota
	testEventScored
)

func TestHandlersRunInSubscriptionOrder(t *testing.T) {
	w := NewWorld()
	var order []string

	w.On(testEventKilled, func(Event) { order = append(order, "first") })
	w.On(testEventKilled, func(Event) { order = append(order, "second") })
	w.On(testEventKilled, func(Event) { order = append(order, "third") })

	w.Emit(testEventKilled, nil)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

// Delivery is synchronous: a handler runs exactly once with its payload
// before the emitting Update call returns.
func TestSameFrameDelivery(t *testing.T) {
	w := NewWorld()

	type killPayload struct{ Score int }

	var got []killPayload
	w.On(testEventKilled, func(ev Event) {
		got = append(got, *ev.Payload.(*killPayload))
	})

	emitted := false
	w.AddSystem(&stubSystem{name: "combat", priority: 1, onUpdate: func(w *World, _ time.Duration) {
		w.Emit(testEventKilled, &killPayload{Score: 10})
		emitted = true
		// Handler has already run by the time Emit returned.
		require.Len(t, got, 1)
	}})

	w.Update(time.Millisecond)

	require.True(t, emitted)
	require.Len(t, got, 1, "handler invoked exactly once")
	assert.Equal(t, 10, got[0].Score)
}

// A system earlier in priority order than the publisher has already had its
// update this frame; it acts on the event only on the next frame.
func TestCrossSystemFrameStagger(t *testing.T) {
	w := NewWorld()

	kills := 0
	// The early system observes the kill count during its update.
	var observations []int
	early := &stubSystem{name: "early", priority: 0, onUpdate: func(*World, time.Duration) {
		observations = append(observations, kills)
	}}
	publisher := &stubSystem{name: "publisher", priority: 1, onUpdate: func(w *World, _ time.Duration) {
		w.Emit(testEventKilled, nil)
	}}
	w.On(testEventKilled, func(Event) { kills++ })
	w.AddSystem(early)
	w.AddSystem(publisher)

	w.Update(time.Millisecond)
	w.Update(time.Millisecond)

	// Frame 1: early ran before the emit and saw 0. Frame 2: it sees the
	// effect of frame 1's event.
	assert.Equal(t, []int{0, 1}, observations)
	assert.Equal(t, 2, kills)
}

func TestOffStopsDelivery(t *testing.T) {
	w := NewWorld()
	calls := 0
	sub := w.On(testEventKilled, func(Event) { calls++ })

	w.Emit(testEventKilled, nil)
	w.Off(sub)
	w.Emit(testEventKilled, nil)

	assert.Equal(t, 1, calls)

	// Unknown tokens are a no-op.
	w.Off(Subscription(9999))
}

// Unsubscribing during dispatch must not crash or skip unrelated handlers:
// the in-flight dispatch iterates a stable snapshot.
func TestOffDuringDispatch(t *testing.T) {
	w := NewWorld()
	var order []string
	var subB Subscription

	w.On(testEventKilled, func(Event) {
		order = append(order, "a")
		w.Off(subB)
	})
	subB = w.On(testEventKilled, func(Event) { order = append(order, "b") })
	w.On(testEventKilled, func(Event) { order = append(order, "c") })

	w.Emit(testEventKilled, nil)
	assert.Equal(t, []string{"a", "b", "c"}, order, "snapshot dispatch still visits b")

	order = order[:0]
	w.Emit(testEventKilled, nil)
	assert.Equal(t, []string{"a", "c"}, order, "b is gone on the next emit")
}

// A panicking handler is reported and must not prevent the remaining
// handlers for the same event from running.
func TestHandlerPanicIsolation(t *testing.T) {
	sink := &recordingSink{}
	w := NewWorld(WithFaultSink(sink))
	w.Bus().RegisterEventName(testEventKilled, "enemyKilled")

	calls := 0
	w.On(testEventKilled, func(Event) { panic("handler boom") })
	w.On(testEventKilled, func(Event) { calls++ })

	w.Emit(testEventKilled, nil)

	assert.Equal(t, 1, calls, "later handlers still run")
	require.Len(t, sink.categories, 1)
	assert.Equal(t, FaultEventHandler, sink.categories[0])
	assert.Equal(t, "enemyKilled", sink.origins[0])
}

func TestEventFrameStamp(t *testing.T) {
	w := NewWorld()
	var frames []int64
	w.On(testEventScored, func(ev Event) { frames = append(frames, ev.Frame) })

	w.AddSystem(&stubSystem{name: "emitter", priority: 1, onUpdate: func(w *World, _ time.Duration) {
		w.Emit(testEventScored, nil)
	}})

	w.Update(time.Millisecond)
	w.Update(time.Millisecond)
	assert.Equal(t, []int64{1, 2}, frames)
}

func TestHandlerCount(t *testing.T) {
	w := NewWorld()
	assert.Equal(t, 0, w.Bus().HandlerCount(testEventKilled))
	sub := w.On(testEventKilled, func(Event) {})
	assert.Equal(t, 1, w.Bus().HandlerCount(testEventKilled))
	w.Off(sub)
	assert.Equal(t, 0, w.Bus().HandlerCount(testEventKilled))
}
