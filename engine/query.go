package engine

import (
	"github.com/duskvale/nightswarm/core"
)

// Query is a capability filter: a set of required component kinds with a
// cached collection of matching live entities. The cache is maintained
// incrementally on every structural change (component add/remove, entity
// create/destroy), so reading a query each frame costs O(matches) instead of
// an O(entities) rescan, and the update cost of a structural change is
// O(registered queries) rather than proportional to world size.
//
// Queries are registered once, typically during a system's construction, and
// live as long as the world.
type Query struct {
	world   *World
	mask    KindMask
	members []core.Entity
	pos     map[core.Entity]int
}

// NewQuery registers a query requiring all of the given component kinds.
// The cache is seeded from the world's current entity population, so a query
// registered after entities already exist is immediately complete. A query
// over kinds no entity has yet simply starts empty.
func (w *World) NewQuery(kinds ...KindID) *Query {
	q := &Query{
		world:   w,
		mask:    MakeKindMask(kinds...),
		members: make([]core.Entity, 0, 64),
		pos:     make(map[core.Entity]int, 64),
	}
	w.queries = append(w.queries, q)
	w.seedQuery(q)
	return q
}

// Entities returns a stable snapshot of the current matching entities.
// Systems iterate the snapshot; structural changes made mid-iteration
// (including destroying an entity later in the snapshot) alter the live
// cache but never the slice being walked. Callers that destroy entities
// while iterating should recheck Alive before touching stragglers.
func (q *Query) Entities() []core.Entity {
	result := make([]core.Entity, len(q.members))
	copy(result, q.members)
	return result
}

// Count returns the number of entities currently matching the query.
func (q *Query) Count() int { return len(q.members) }

// Contains reports whether the entity currently matches the query.
func (q *Query) Contains(e core.Entity) bool {
	_, ok := q.pos[e]
	return ok
}

// First returns an arbitrary matching entity, or core.NoEntity when the
// query is empty. Convenient for singleton queries (the player).
func (q *Query) First() core.Entity {
	if len(q.members) == 0 {
		return core.NoEntity
	}
	return q.members[0]
}

func (q *Query) add(e core.Entity) {
	if _, ok := q.pos[e]; ok {
		return
	}
	q.pos[e] = len(q.members)
	q.members = append(q.members, e)
}

func (q *Query) remove(e core.Entity) {
	slot, ok := q.pos[e]
	if !ok {
		return
	}
	last := len(q.members) - 1
	if slot != last {
		q.members[slot] = q.members[last]
		q.pos[q.members[slot]] = slot
	}
	q.members = q.members[:last]
	delete(q.pos, e)
}

func (q *Query) clear() {
	q.members = q.members[:0]
	q.pos = make(map[core.Entity]int, 64)
}
