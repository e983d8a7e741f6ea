package events

import (
	"github.com/duskvale/nightswarm/core"
)

// CollisionPayload reports one overlapping cross-team pair. Entity handles
// are weak references; consumers revalidate with World.Alive before use.
type CollisionPayload struct {
	A core.Entity
	B core.Entity
}

// EnemyKilledPayload reports a destroyed enemy and where it died.
type EnemyKilledPayload struct {
	Entity core.Entity
	X, Y   float64
	Score  int
}

// PlayerHitPayload reports contact damage applied to the player.
type PlayerHitPayload struct {
	Attacker  core.Entity
	Damage    int
	Remaining int
}

// PickupCollectedPayload reports a collected drop.
type PickupCollectedPayload struct {
	Entity core.Entity
	Value  int
}

// WaveStartedPayload reports a new wave beginning to spawn.
type WaveStartedPayload struct {
	Number int
	Name   string
	Count  int
}

// GameOverPayload carries the final tally.
type GameOverPayload struct {
	Score int
	Wave  int
}
