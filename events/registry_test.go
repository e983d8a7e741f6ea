package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/duskvale/nightswarm/engine"
)

func TestAllEventsNamed(t *testing.T) {
	all := []engine.EventType{
		EventCollision,
		EventEnemyKilled,
		EventPlayerHit,
		EventPickupCollected,
		EventWaveStarted,
		EventGameOver,
	}

	seen := make(map[string]engine.EventType, len(all))
	for _, et := range all {
		name := Name(et)
		assert.NotEqual(t, "unknown", name)
		prev, dup := seen[name]
		assert.False(t, dup, "name %q reused by %d and %d", name, prev, et)
		seen[name] = et
	}
}

func TestRegisterPropagatesToBus(t *testing.T) {
	bus := engine.NewEventBus(nil)
	Register(bus)

	assert.Equal(t, "enemyKilled", bus.EventName(EventEnemyKilled))
	assert.Equal(t, "gameOver", bus.EventName(EventGameOver))
}

func TestUnknownEventName(t *testing.T) {
	assert.Equal(t, "unknown", Name(engine.EventType(1000)))
}
