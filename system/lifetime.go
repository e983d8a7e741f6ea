package system

import (
	"time"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/parameter"
)

// LifetimeSystem counts down timed entities and destroys the expired ones.
type LifetimeSystem struct {
	stores *component.Stores
}

// NewLifetimeSystem creates the lifetime system.
func NewLifetimeSystem(stores *component.Stores) *LifetimeSystem {
	return &LifetimeSystem{stores: stores}
}

// Name returns the system's name.
func (s *LifetimeSystem) Name() string { return "lifetime" }

// Priority returns the system's priority.
func (s *LifetimeSystem) Priority() int { return parameter.PriorityLifetime }

// Init implements engine.System.
func (s *LifetimeSystem) Init(w *engine.World) {}

// Update advances every countdown by dt.
func (s *LifetimeSystem) Update(w *engine.World, dt time.Duration) {
	for _, e := range s.stores.Lifetime.Entities() {
		life, ok := s.stores.Lifetime.Get(e)
		if !ok {
			continue
		}
		life.Remaining -= dt
		if life.Remaining <= 0 {
			w.DestroyEntity(e)
			continue
		}
		s.stores.Lifetime.Set(e, life)
	}
}

// Shutdown implements engine.System.
func (s *LifetimeSystem) Shutdown(w *engine.World) {}
