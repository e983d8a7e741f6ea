package engine

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/duskvale/nightswarm/core"
	"github.com/duskvale/nightswarm/engine/status"
)

// World is the single shared mutable context systems operate on: it owns the
// entity arena, all component stores, the query index, the event bus, the
// scheduler and the resource store.
//
// The world is single-threaded by construction. Systems run one at a time,
// run-to-completion, inside Update; "concurrency" here is temporal
// interleaving within one frame, not parallelism.
type World struct {
	pool       *entityPool
	aliveFlags []bool
	masks      []KindMask // by slot index

	stores     []AnyStore // by KindID
	storeNames map[string]KindID
	queries    []*Query
	tags       map[string]map[core.Entity]struct{}

	bus       *EventBus
	sched     *Scheduler
	resources *ResourceStore

	log     *zap.Logger
	sink    FaultSink
	status  *status.Registry
	timeRes *TimeResource

	updating     bool
	destroyQueue []core.Entity
	frame        int64
	elapsed      time.Duration

	statFrames   *atomic.Int64
	statEntities *atomic.Int64
}

// Option configures a World at construction.
type Option func(*World)

// WithLogger sets the world's logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) { w.log = log }
}

// WithFaultSink sets the sink receiving isolated system and handler faults.
// Defaults to logging through the world's logger.
func WithFaultSink(sink FaultSink) Option {
	return func(w *World) { w.sink = sink }
}

// WithStatus sets the metrics registry. Defaults to a fresh registry.
func WithStatus(reg *status.Registry) Option {
	return func(w *World) { w.status = reg }
}

// NewWorld creates an empty world. All collaborators (logger, fault sink,
// metrics) are injected here and scoped to this world, so independent worlds
// never share mutable state.
func NewWorld(opts ...Option) *World {
	w := &World{
		pool:       newEntityPool(),
		aliveFlags: make([]bool, 1, 1024),
		masks:      make([]KindMask, 1, 1024),
		stores:     make([]AnyStore, 0, 16),
		storeNames: make(map[string]KindID, 16),
		queries:    make([]*Query, 0, 8),
		tags:       make(map[string]map[core.Entity]struct{}),
		resources:  NewResourceStore(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = zap.NewNop()
	}
	if w.sink == nil {
		w.sink = NewLogSink(w.log)
	}
	if w.status == nil {
		w.status = status.NewRegistry()
	}
	w.bus = NewEventBus(w.sink)
	w.sched = NewScheduler(w.sink, w.status)
	w.timeRes = &TimeResource{}
	AddResource(w.resources, w.timeRes)
	AddResource(w.resources, w.status)
	w.statFrames = w.status.Ints.Get("engine.frames")
	w.statEntities = w.status.Ints.Get("engine.entities")
	return w
}

// Resources returns the world's resource store.
func (w *World) Resources() *ResourceStore { return w.resources }

// Status returns the world's metrics registry.
func (w *World) Status() *status.Registry { return w.status }

// Time returns the world's frame timing resource.
func (w *World) Time() *TimeResource { return w.timeRes }

// Frame returns the current frame number.
func (w *World) Frame() int64 { return w.frame }

// ── Entities ───────────────────────────────────────────────────────

// CreateEntity allocates a fresh entity with no components. Components are
// attached through the typed stores; the new entity joins a query's result
// the moment it gains the last required kind.
func (w *World) CreateEntity() core.Entity {
	e := w.pool.acquire()
	idx := int(e.Index())
	for idx >= len(w.masks) {
		w.masks = append(w.masks, KindMask{})
		w.aliveFlags = append(w.aliveFlags, false)
	}
	w.masks[idx] = KindMask{}
	w.aliveFlags[idx] = true
	w.statEntities.Add(1)
	return e
}

// DestroyEntity destroys an entity. Destruction is idempotent: destroying a
// stale handle, or the same entity twice in one frame, is a no-op, because
// several systems may independently decide the same entity should die.
//
// The entity leaves every query result and tag set immediately and Alive
// turns false immediately. Component storage release and slot reuse are
// deferred to the end-of-frame commit when requested during a system pass,
// so a system iterating a query snapshot never has records yanked out from
// under it mid-frame.
func (w *World) DestroyEntity(e core.Entity) {
	if !w.pool.invalidate(e) {
		return
	}
	idx := e.Index()
	w.aliveFlags[idx] = false
	w.statEntities.Add(-1)

	for _, q := range w.queries {
		q.remove(e)
	}
	for _, set := range w.tags {
		delete(set, e)
	}

	if w.updating {
		w.destroyQueue = append(w.destroyQueue, e)
		return
	}
	w.releaseEntity(e)
}

// Alive reports whether the handle refers to a live entity. Entities
// routinely disappear between the time a reference was cached and the time
// it is dereferenced; absence is an expected outcome, not an error.
func (w *World) Alive(e core.Entity) bool {
	idx := e.Index()
	return int(idx) < len(w.aliveFlags) && w.aliveFlags[idx] && w.pool.alive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	n := 0
	for _, alive := range w.aliveFlags {
		if alive {
			n++
		}
	}
	return n
}

// Mask returns the entity's current component kind mask.
func (w *World) Mask(e core.Entity) KindMask {
	if !w.Alive(e) {
		return KindMask{}
	}
	return w.masks[e.Index()]
}

// Clear destroys all entities. Registered systems, queries and stores stay
// wired; used on session reset.
func (w *World) Clear() {
	for idx := uint32(1); int(idx) < len(w.aliveFlags); idx++ {
		if w.aliveFlags[idx] {
			w.DestroyEntity(core.NewEntity(idx, w.pool.generations[idx]))
		}
	}
	if !w.updating {
		w.commit()
	}
}

// ── Tags ───────────────────────────────────────────────────────────

// Tag attaches a classification tag to an entity ("player"). Tags are for
// cheap identity lookups, not capability filtering; use queries for that.
func (w *World) Tag(e core.Entity, tag string) {
	if !w.Alive(e) {
		return
	}
	set, ok := w.tags[tag]
	if !ok {
		set = make(map[core.Entity]struct{}, 4)
		w.tags[tag] = set
	}
	set[e] = struct{}{}
}

// Untag removes a tag from an entity. No-op when absent.
func (w *World) Untag(e core.Entity, tag string) {
	delete(w.tags[tag], e)
}

// HasTag reports whether the entity carries the tag.
func (w *World) HasTag(e core.Entity, tag string) bool {
	_, ok := w.tags[tag][e]
	return ok
}

// Tagged returns a snapshot of entities carrying the tag.
func (w *World) Tagged(tag string) []core.Entity {
	set := w.tags[tag]
	result := make([]core.Entity, 0, len(set))
	for e := range set {
		result = append(result, e)
	}
	return result
}

// FirstTagged returns one entity carrying the tag, or core.NoEntity.
func (w *World) FirstTagged(tag string) core.Entity {
	for e := range w.tags[tag] {
		return e
	}
	return core.NoEntity
}

// ── Systems ────────────────────────────────────────────────────────

// AddSystem registers a system; its Init runs immediately.
func (w *World) AddSystem(sys System) {
	w.log.Debug("system registered",
		zap.String("system", sys.Name()),
		zap.Int("priority", sys.Priority()),
	)
	w.sched.Register(w, sys)
}

// SetSystemEnabled toggles a system by name without unregistering it.
func (w *World) SetSystemEnabled(name string, enabled bool) bool {
	return w.sched.SetEnabled(name, enabled)
}

// RemoveSystem unregisters a system by name; its Shutdown runs exactly once.
func (w *World) RemoveSystem(name string) bool {
	return w.sched.Unregister(w, name)
}

// Systems returns the registered systems in execution order.
func (w *World) Systems() []System {
	return w.sched.Systems()
}

// ── Frame loop ─────────────────────────────────────────────────────

// Update drives one full frame: all enabled systems in priority order, then
// the end-of-frame commit applying deferred destroys.
//
// A negative dt (a bad frame value from the host) is clamped to zero rather
// than propagated, so a single bad delta cannot corrupt dt-integrated
// component state or halt the loop.
func (w *World) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.frame++
	w.elapsed += dt
	w.timeRes.DeltaTime = dt
	w.timeRes.Elapsed = w.elapsed
	w.timeRes.Frame = w.frame

	w.updating = true
	w.sched.Update(w, dt)
	w.updating = false
	w.commit()

	w.statFrames.Store(w.frame)
}

// Render runs the render pass over systems implementing Renderer. Kept
// separate from Update so hosts can skip presentation (headless tests) or
// run it at a different cadence.
func (w *World) Render() {
	w.sched.Render(w)
}

// Teardown shuts down all systems. The world must not be updated afterwards.
func (w *World) Teardown() {
	w.sched.Teardown(w)
}

func (w *World) commit() {
	for _, e := range w.destroyQueue {
		w.releaseEntity(e)
	}
	w.destroyQueue = w.destroyQueue[:0]
}

func (w *World) releaseEntity(e core.Entity) {
	for _, s := range w.stores {
		s.Discard(e)
	}
	w.masks[e.Index()] = KindMask{}
	w.pool.reclaim(e.Index())
}

// ── Events ─────────────────────────────────────────────────────────

// Emit publishes an event. Every currently subscribed handler runs, in
// subscription order, before Emit returns: delivery is same-frame and
// happens-before the emitting system's update returns to the scheduler.
// Systems that already ran this frame react during their next update, which
// is the frame-staggering cross-system timing depends on.
func (w *World) Emit(t EventType, payload any) {
	w.bus.Emit(Event{Type: t, Payload: payload, Frame: w.frame})
}

// On subscribes a handler to an event type.
func (w *World) On(t EventType, fn Handler) Subscription {
	return w.bus.On(t, fn)
}

// Off removes an event subscription.
func (w *World) Off(sub Subscription) {
	w.bus.Off(sub)
}

// Bus returns the world's event bus.
func (w *World) Bus() *EventBus { return w.bus }

// ── Store plumbing ─────────────────────────────────────────────────

// registerStore assigns the next KindID to a store. Component kinds form a
// closed enumeration fixed during wiring; registering past MaxKinds or
// reusing a name is a programming error.
func (w *World) registerStore(s AnyStore, name string) KindID {
	if len(w.stores) >= MaxKinds {
		panic("engine: component kind limit exceeded")
	}
	if _, dup := w.storeNames[name]; dup {
		panic("engine: duplicate component kind name: " + name)
	}
	id := KindID(len(w.stores))
	w.stores = append(w.stores, s)
	w.storeNames[name] = id
	return id
}

// StoreByName returns the registered store for a kind name.
func (w *World) StoreByName(name string) (AnyStore, bool) {
	id, ok := w.storeNames[name]
	if !ok {
		return nil, false
	}
	return w.stores[id], true
}

// componentAdded updates the entity's mask and every affected query after a
// component gain. O(registered queries) per structural change.
func (w *World) componentAdded(e core.Entity, kind KindID) {
	idx := e.Index()
	w.masks[idx] = w.masks[idx].with(kind)
	mask := w.masks[idx]
	for _, q := range w.queries {
		if !q.mask.Has(kind) {
			continue
		}
		if mask.ContainsAll(q.mask) {
			q.add(e)
		}
	}
}

// componentRemoved updates the entity's mask and every affected query after
// a component loss.
func (w *World) componentRemoved(e core.Entity, kind KindID) {
	idx := e.Index()
	w.masks[idx] = w.masks[idx].without(kind)
	for _, q := range w.queries {
		if q.mask.Has(kind) {
			q.remove(e)
		}
	}
}

// seedQuery populates a freshly registered query from the live population.
func (w *World) seedQuery(q *Query) {
	for idx := uint32(1); int(idx) < len(w.aliveFlags); idx++ {
		if !w.aliveFlags[idx] {
			continue
		}
		if w.masks[idx].ContainsAll(q.mask) {
			q.add(core.NewEntity(idx, w.pool.generations[idx]))
		}
	}
}
