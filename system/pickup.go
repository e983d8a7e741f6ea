package system

import (
	"time"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/events"
	"github.com/duskvale/nightswarm/parameter"
)

// PickupSystem collects drops the player touches. Pickups carry no
// collider; a plain distance check against the player keeps them out of the
// damage path entirely.
type PickupSystem struct {
	stores *component.Stores
	query  *engine.Query
}

// NewPickupSystem creates the pickup system.
func NewPickupSystem(stores *component.Stores) *PickupSystem {
	return &PickupSystem{stores: stores}
}

// Name returns the system's name.
func (s *PickupSystem) Name() string { return "pickup" }

// Priority returns the system's priority.
func (s *PickupSystem) Priority() int { return parameter.PriorityPickup }

// Init registers the pickup query.
func (s *PickupSystem) Init(w *engine.World) {
	s.query = w.NewQuery(s.stores.Pickup.Kind(), s.stores.Position.Kind())
}

// Update collects every pickup within reach of the player.
func (s *PickupSystem) Update(w *engine.World, dt time.Duration) {
	player := w.FirstTagged(PlayerTag)
	if !w.Alive(player) {
		return
	}
	ppos, ok := s.stores.Position.Get(player)
	if !ok {
		return
	}

	reach := parameter.PickupRadius + parameter.PlayerRadius
	for _, e := range s.query.Entities() {
		pos, ok := s.stores.Position.Get(e)
		if !ok {
			continue
		}
		dx := pos.X - ppos.X
		dy := pos.Y - ppos.Y
		if dx*dx+dy*dy > reach*reach {
			continue
		}

		value := 0
		if pk, ok := s.stores.Pickup.Get(e); ok {
			value = pk.Value
		}
		w.DestroyEntity(e)
		w.Emit(events.EventPickupCollected, &events.PickupCollectedPayload{
			Entity: e,
			Value:  value,
		})
	}
}

// Shutdown implements engine.System.
func (s *PickupSystem) Shutdown(w *engine.World) {}
