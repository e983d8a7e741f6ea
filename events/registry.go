package events

import (
	"github.com/duskvale/nightswarm/engine"
)

var names = map[engine.EventType]string{
	EventCollision:       "collision",
	EventEnemyKilled:     "enemyKilled",
	EventPlayerHit:       "playerHit",
	EventPickupCollected: "pickupCollected",
	EventWaveStarted:     "waveStarted",
	EventGameOver:        "gameOver",
}

// Register attaches display names for all game events to the bus.
// Called once during world wiring.
func Register(bus *engine.EventBus) {
	for t, name := range names {
		bus.RegisterEventName(t, name)
	}
}

// Name returns the display name of a game event type.
func Name(t engine.EventType) string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown"
}
