package system

import (
	"time"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/content"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/parameter"
)

// MovementSystem integrates velocity into position. The player is clamped
// to the arena; everything else is allowed to leave (projectiles die by
// lifetime, enemies steer back on their own).
type MovementSystem struct {
	stores *component.Stores
	arena  content.Arena
	query  *engine.Query
}

// NewMovementSystem creates the movement system.
func NewMovementSystem(stores *component.Stores, arena content.Arena) *MovementSystem {
	return &MovementSystem{
		stores: stores,
		arena:  arena,
	}
}

// Name returns the system's name.
func (s *MovementSystem) Name() string { return "movement" }

// Priority returns the system's priority.
func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

// Init registers the moving-entity query.
func (s *MovementSystem) Init(w *engine.World) {
	s.query = w.NewQuery(s.stores.Position.Kind(), s.stores.Velocity.Kind())
}

// Update advances every positioned, moving entity by vel*dt.
func (s *MovementSystem) Update(w *engine.World, dt time.Duration) {
	step := dt.Seconds()
	for _, e := range s.query.Entities() {
		pos, ok := s.stores.Position.Get(e)
		if !ok {
			continue
		}
		vel, ok := s.stores.Velocity.Get(e)
		if !ok {
			continue
		}

		pos.X += vel.VX * step
		pos.Y += vel.VY * step

		if w.HasTag(e, PlayerTag) {
			pos.X = clamp(pos.X, 0, s.arena.Width-1)
			pos.Y = clamp(pos.Y, 0, s.arena.Height-1)
		}

		s.stores.Position.Set(e, pos)
	}
}

// Shutdown implements engine.System.
func (s *MovementSystem) Shutdown(w *engine.World) {}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
