package system

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/content"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/input"
	"github.com/duskvale/nightswarm/parameter"
)

// PlayerTag marks the player entity for identity lookups.
const PlayerTag = "player"

// PlayerSystem spawns the player and translates input direction into
// velocity. The weapon fires on its own; the player only steers.
type PlayerSystem struct {
	stores *component.Stores
	in     *input.State
	arena  content.Arena
}

// NewPlayerSystem creates the player system.
func NewPlayerSystem(stores *component.Stores, in *input.State, arena content.Arena) *PlayerSystem {
	return &PlayerSystem{
		stores: stores,
		in:     in,
		arena:  arena,
	}
}

// Name returns the system's name.
func (s *PlayerSystem) Name() string { return "player" }

// Priority returns the system's priority.
func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

// Init spawns the player entity at the arena center.
func (s *PlayerSystem) Init(w *engine.World) {
	e := w.CreateEntity()
	s.stores.Position.Set(e, component.Position{
		X: s.arena.Width / 2,
		Y: s.arena.Height / 2,
	})
	s.stores.Velocity.Set(e, component.Velocity{MaxSpeed: parameter.PlayerSpeed})
	s.stores.Sprite.Set(e, component.Sprite{
		Rune:  '@',
		Style: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Layer: 10,
	})
	s.stores.Health.Set(e, component.Health{
		HP:    parameter.PlayerMaxHP,
		MaxHP: parameter.PlayerMaxHP,
	})
	s.stores.Collider.Set(e, component.Collider{
		Radius: parameter.PlayerRadius,
		Team:   component.TeamPlayer,
	})
	s.stores.Weapon.Set(e, component.Weapon{
		Cooldown:        parameter.WeaponCooldown,
		ProjectileSpeed: parameter.ProjectileSpeed,
		Damage:          parameter.WeaponDamage,
		Range:           parameter.WeaponRange,
	})
	w.Tag(e, PlayerTag)
}

// Update steers the player from the current input direction.
func (s *PlayerSystem) Update(w *engine.World, dt time.Duration) {
	e := w.FirstTagged(PlayerTag)
	if !w.Alive(e) {
		return
	}

	frame := s.in.Snapshot()
	vel, ok := s.stores.Velocity.Get(e)
	if !ok {
		return
	}
	vel.VX = float64(frame.MoveX) * parameter.PlayerSpeed
	vel.VY = float64(frame.MoveY) * parameter.PlayerSpeed
	s.stores.Velocity.Set(e, vel)
}

// Shutdown implements engine.System.
func (s *PlayerSystem) Shutdown(w *engine.World) {}
