package system

import (
	"math"
	"time"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/parameter"
)

// HomingSystem steers homing entities toward their target. Targets are weak
// references: a stale handle is detected via liveness and replaced with the
// current player entity, so enemies never chase ghosts.
type HomingSystem struct {
	stores *component.Stores
	query  *engine.Query
}

// NewHomingSystem creates the homing system.
func NewHomingSystem(stores *component.Stores) *HomingSystem {
	return &HomingSystem{stores: stores}
}

// Name returns the system's name.
func (s *HomingSystem) Name() string { return "homing" }

// Priority returns the system's priority.
func (s *HomingSystem) Priority() int { return parameter.PriorityHoming }

// Init registers the homing query.
func (s *HomingSystem) Init(w *engine.World) {
	s.query = w.NewQuery(
		s.stores.Homing.Kind(),
		s.stores.Position.Kind(),
		s.stores.Velocity.Kind(),
	)
}

// Update accelerates each homing entity toward its target, capped at the
// entity's max speed. Entities with no live target coast to a stop.
func (s *HomingSystem) Update(w *engine.World, dt time.Duration) {
	step := dt.Seconds()
	for _, e := range s.query.Entities() {
		hom, ok := s.stores.Homing.Get(e)
		if !ok {
			continue
		}

		if !w.Alive(hom.Target) {
			hom.Target = w.FirstTagged(PlayerTag)
			s.stores.Homing.Set(e, hom)
		}

		vel, ok := s.stores.Velocity.Get(e)
		if !ok {
			continue
		}

		tpos, targeting := s.stores.Position.Get(hom.Target)
		if !w.Alive(hom.Target) {
			targeting = false
		}

		if !targeting {
			vel.VX *= math.Max(0, 1-step*2)
			vel.VY *= math.Max(0, 1-step*2)
			s.stores.Velocity.Set(e, vel)
			continue
		}

		pos, ok := s.stores.Position.Get(e)
		if !ok {
			continue
		}

		dx := tpos.X - pos.X
		dy := tpos.Y - pos.Y
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			vel.VX += dx / dist * hom.Accel * step
			vel.VY += dy / dist * hom.Accel * step
		}

		if vel.MaxSpeed > 0 {
			speed := math.Hypot(vel.VX, vel.VY)
			if speed > vel.MaxSpeed {
				scale := vel.MaxSpeed / speed
				vel.VX *= scale
				vel.VY *= scale
			}
		}

		s.stores.Velocity.Set(e, vel)
	}
}

// Shutdown implements engine.System.
func (s *HomingSystem) Shutdown(w *engine.World) {}
