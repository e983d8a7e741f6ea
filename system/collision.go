package system

import (
	"time"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/events"
	"github.com/duskvale/nightswarm/parameter"
)

// CollisionSystem detects circle overlaps between colliders of opposing
// teams and emits one collision event per touching pair per frame. It never
// mutates anything itself; consequences belong to the damage system.
type CollisionSystem struct {
	stores *component.Stores
	query  *engine.Query
}

// NewCollisionSystem creates the collision system.
func NewCollisionSystem(stores *component.Stores) *CollisionSystem {
	return &CollisionSystem{stores: stores}
}

// Name returns the system's name.
func (s *CollisionSystem) Name() string { return "collision" }

// Priority returns the system's priority.
func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

// Init registers the collider query.
func (s *CollisionSystem) Init(w *engine.World) {
	s.query = w.NewQuery(s.stores.Collider.Kind(), s.stores.Position.Kind())
}

// Update runs the pairwise overlap check over a snapshot of colliders.
// Entity counts stay in the low hundreds, so the naive O(n^2) sweep is
// cheaper than maintaining a spatial index.
func (s *CollisionSystem) Update(w *engine.World, dt time.Duration) {
	members := s.query.Entities()
	for i := 0; i < len(members); i++ {
		a := members[i]
		acol, ok := s.stores.Collider.Get(a)
		if !ok {
			continue
		}
		apos, ok := s.stores.Position.Get(a)
		if !ok {
			continue
		}

		for j := i + 1; j < len(members); j++ {
			b := members[j]
			bcol, ok := s.stores.Collider.Get(b)
			if !ok || bcol.Team == acol.Team {
				continue
			}
			bpos, ok := s.stores.Position.Get(b)
			if !ok {
				continue
			}

			dx := bpos.X - apos.X
			dy := bpos.Y - apos.Y
			reach := acol.Radius + bcol.Radius
			if dx*dx+dy*dy <= reach*reach {
				w.Emit(events.EventCollision, &events.CollisionPayload{A: a, B: b})
			}
		}
	}
}

// Shutdown implements engine.System.
func (s *CollisionSystem) Shutdown(w *engine.World) {}
