package system

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/content"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/events"
	"github.com/duskvale/nightswarm/parameter"
)

// SpawnSystem trickles enemies in from the arena edges according to the
// wave table. Spawn positions come from the session's "spawn" stream, so
// two runs with the same seed produce identical waves.
type SpawnSystem struct {
	stores *component.Stores
	arena  content.Arena
	rng    *rand.Rand

	wave      int
	remaining int           // spawns left in the current wave
	timer     time.Duration // until the next spawn or wave start
	resting   bool
}

// NewSpawnSystem creates the spawn system.
func NewSpawnSystem(stores *component.Stores, arena content.Arena, session *content.Session) *SpawnSystem {
	return &SpawnSystem{
		stores: stores,
		arena:  arena,
		rng:    session.StreamRand("spawn"),
	}
}

// Name returns the system's name.
func (s *SpawnSystem) Name() string { return "spawn" }

// Priority returns the system's priority.
func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

// Init arms the first wave after a short grace period.
func (s *SpawnSystem) Init(w *engine.World) {
	s.resting = true
	s.timer = 2 * time.Second
}

// Update advances the wave clock, announcing waves and spawning enemies as
// their timers elapse.
func (s *SpawnSystem) Update(w *engine.World, dt time.Duration) {
	s.timer -= dt
	if s.timer > 0 {
		return
	}

	if s.resting {
		s.startWave(w)
		return
	}

	s.spawnEnemy(w)
	s.remaining--
	if s.remaining <= 0 {
		s.resting = true
		s.timer = content.WaveAt(s.wave).Rest
		s.wave++
	} else {
		s.timer = content.WaveAt(s.wave).Interval
	}
}

// Shutdown implements engine.System.
func (s *SpawnSystem) Shutdown(w *engine.World) {}

// startWave announces the pending wave and schedules its first spawn.
func (s *SpawnSystem) startWave(w *engine.World) {
	wave := content.WaveAt(s.wave)
	s.resting = false
	s.remaining = wave.Count
	s.timer = wave.Interval
	w.Emit(events.EventWaveStarted, &events.WaveStartedPayload{
		Number: s.wave + 1,
		Name:   wave.Name,
		Count:  wave.Count,
	})
}

// spawnEnemy places one enemy of the current wave just inside a random
// arena edge, homing on the player.
func (s *SpawnSystem) spawnEnemy(w *engine.World) {
	wave := content.WaveAt(s.wave)
	x, y := s.edgePoint()

	e := w.CreateEntity()
	s.stores.Position.Set(e, component.Position{X: x, Y: y})
	s.stores.Velocity.Set(e, component.Velocity{MaxSpeed: wave.Speed})
	s.stores.Sprite.Set(e, component.Sprite{
		Rune:  wave.Glyph,
		Style: tcell.StyleDefault.Foreground(tcell.ColorRed),
		Layer: 8,
	})
	s.stores.Health.Set(e, component.Health{HP: wave.EnemyHP, MaxHP: wave.EnemyHP})
	s.stores.Collider.Set(e, component.Collider{
		Radius: parameter.EnemyRadius,
		Team:   component.TeamEnemy,
	})
	s.stores.Damage.Set(e, component.Damage{
		Amount: parameter.EnemyContactDamage,
		Score:  wave.Score,
	})
	s.stores.Homing.Set(e, component.Homing{
		Target: w.FirstTagged(PlayerTag),
		Accel:  parameter.EnemyAccel,
	})
}

// edgePoint picks a uniform point on one of the four arena edges.
func (s *SpawnSystem) edgePoint() (x, y float64) {
	switch s.rng.Intn(4) {
	case 0: // top
		return s.rng.Float64() * s.arena.Width, 0
	case 1: // bottom
		return s.rng.Float64() * s.arena.Width, s.arena.Height - 1
	case 2: // left
		return 0, s.rng.Float64() * s.arena.Height
	default: // right
		return s.arena.Width - 1, s.rng.Float64() * s.arena.Height
	}
}
