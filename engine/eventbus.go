package engine

import (
	"runtime/debug"
)

// EventType identifies a named event. Content packages define their types as
// consecutive constants and register display names via RegisterEventName;
// dispatch itself is keyed by the integer, never by string.
type EventType int

// Event is an immutable notification record. Payload is event-specific and
// owned by the emitter; handlers must not retain mutable references past the
// dispatch call. Frame is the world frame the event was emitted on.
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}

// Handler processes a single event. Handlers run synchronously during Emit,
// on the emitting system's stack.
type Handler func(Event)

// Subscription identifies one registered handler for later removal.
type Subscription uint64

type subscriber struct {
	id Subscription
	fn Handler
}

// EventBus is a synchronous named publish/subscribe channel.
//
// Emit calls every handler currently subscribed to the event's type, in
// subscription order, before returning. Dispatch iterates a snapshot of the
// subscriber list taken at emit time: subscribing or unsubscribing from
// within a handler affects only later emits, never the in-flight dispatch.
// A panicking handler is caught and reported per-handler; the remaining
// handlers for the same event still run.
type EventBus struct {
	handlers map[EventType][]subscriber
	subTypes map[Subscription]EventType
	nextSub  Subscription
	sink     FaultSink
	names    map[EventType]string
}

// NewEventBus creates an empty bus reporting handler faults to sink.
func NewEventBus(sink FaultSink) *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]subscriber),
		subTypes: make(map[Subscription]EventType),
		nextSub:  1,
		sink:     sink,
		names:    make(map[EventType]string),
	}
}

// RegisterEventName attaches a display name to an event type, used in fault
// reports and logs. Registration is optional.
func (b *EventBus) RegisterEventName(t EventType, name string) {
	b.names[t] = name
}

// EventName returns the registered display name for an event type.
func (b *EventBus) EventName(t EventType) string {
	if name, ok := b.names[t]; ok {
		return name
	}
	return "unnamed"
}

// On subscribes a handler to an event type and returns its subscription
// token. Handlers for one type run in subscription order.
func (b *EventBus) On(t EventType, fn Handler) Subscription {
	id := b.nextSub
	b.nextSub++

	// Copy-on-write so in-flight dispatch snapshots stay stable.
	old := b.handlers[t]
	subs := make([]subscriber, len(old), len(old)+1)
	copy(subs, old)
	b.handlers[t] = append(subs, subscriber{id: id, fn: fn})
	b.subTypes[id] = t
	return id
}

// Off removes a subscription. Unknown tokens are a no-op. Removing a
// subscription during dispatch of the same event type does not disturb the
// in-flight snapshot.
func (b *EventBus) Off(sub Subscription) {
	t, ok := b.subTypes[sub]
	if !ok {
		return
	}
	delete(b.subTypes, sub)

	old := b.handlers[t]
	subs := make([]subscriber, 0, len(old))
	for _, s := range old {
		if s.id != sub {
			subs = append(subs, s)
		}
	}
	if len(subs) == 0 {
		delete(b.handlers, t)
		return
	}
	b.handlers[t] = subs
}

// Emit delivers the event to every currently subscribed handler before
// returning. Delivery is same-frame and deterministic: an event emitted
// during a system's update is fully dispatched before that update returns
// control to the scheduler.
func (b *EventBus) Emit(ev Event) {
	subs := b.handlers[ev.Type]
	for _, s := range subs {
		b.dispatch(s, ev)
	}
}

// HandlerCount returns the number of handlers subscribed to a type.
func (b *EventBus) HandlerCount(t EventType) int {
	return len(b.handlers[t])
}

func (b *EventBus) dispatch(s subscriber, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.sink.ReportFault(FaultEventHandler, b.EventName(ev.Type), r, debug.Stack())
		}
	}()
	s.fn(ev)
}
