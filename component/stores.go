package component

import (
	"github.com/duskvale/nightswarm/engine"
)

// Stores aggregates the typed component stores of one world. Systems
// receive a *Stores at construction instead of looking stores up by name at
// runtime, so the component kinds in play form a closed set fixed at wiring
// time.
type Stores struct {
	Position *engine.Store[Position]
	Velocity *engine.Store[Velocity]
	Sprite   *engine.Store[Sprite]
	Health   *engine.Store[Health]
	Damage   *engine.Store[Damage]
	Lifetime *engine.Store[Lifetime]
	Collider *engine.Store[Collider]
	Weapon   *engine.Store[Weapon]
	Homing   *engine.Store[Homing]
	Pickup   *engine.Store[Pickup]
}

// NewStores registers every component kind on the world. Call once during
// wiring, before systems are constructed.
func NewStores(w *engine.World) *Stores {
	return &Stores{
		Position: engine.RegisterStore[Position](w, "position"),
		Velocity: engine.RegisterStore[Velocity](w, "velocity"),
		Sprite:   engine.RegisterStore[Sprite](w, "sprite"),
		Health:   engine.RegisterStore[Health](w, "health"),
		Damage:   engine.RegisterStore[Damage](w, "damage"),
		Lifetime: engine.RegisterStore[Lifetime](w, "lifetime"),
		Collider: engine.RegisterStore[Collider](w, "collider"),
		Weapon:   engine.RegisterStore[Weapon](w, "weapon"),
		Homing:   engine.RegisterStore[Homing](w, "homing"),
		Pickup:   engine.RegisterStore[Pickup](w, "pickup"),
	}
}
