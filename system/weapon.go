package system

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/parameter"
)

// WeaponSystem fires projectiles at the nearest hostile target whenever a
// weapon's cooldown elapses. Firing is automatic; aim is distance-based.
type WeaponSystem struct {
	stores  *component.Stores
	armed   *engine.Query
	targets *engine.Query
}

// NewWeaponSystem creates the weapon system.
func NewWeaponSystem(stores *component.Stores) *WeaponSystem {
	return &WeaponSystem{stores: stores}
}

// Name returns the system's name.
func (s *WeaponSystem) Name() string { return "weapon" }

// Priority returns the system's priority.
func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

// Init registers the armed-entity and targetable-entity queries.
func (s *WeaponSystem) Init(w *engine.World) {
	s.armed = w.NewQuery(s.stores.Weapon.Kind(), s.stores.Position.Kind())
	s.targets = w.NewQuery(
		s.stores.Collider.Kind(),
		s.stores.Position.Kind(),
		s.stores.Health.Kind(),
	)
}

// Update counts down cooldowns and fires at the nearest enemy in range.
func (s *WeaponSystem) Update(w *engine.World, dt time.Duration) {
	for _, e := range s.armed.Entities() {
		wpn, ok := s.stores.Weapon.Get(e)
		if !ok {
			continue
		}

		wpn.Remaining -= dt
		if wpn.Remaining > 0 {
			s.stores.Weapon.Set(e, wpn)
			continue
		}

		pos, ok := s.stores.Position.Get(e)
		if !ok {
			continue
		}

		shooterTeam := component.TeamPlayer
		if col, ok := s.stores.Collider.Get(e); ok {
			shooterTeam = col.Team
		}

		tx, ty, found := s.nearestHostile(pos, shooterTeam, wpn.Range)
		if !found {
			// Hold fire but stay ready; no cooldown while idle.
			wpn.Remaining = 0
			s.stores.Weapon.Set(e, wpn)
			continue
		}

		wpn.Remaining = wpn.Cooldown
		s.stores.Weapon.Set(e, wpn)
		s.fire(w, pos, tx, ty, wpn, shooterTeam)
	}
}

// Shutdown implements engine.System.
func (s *WeaponSystem) Shutdown(w *engine.World) {}

// nearestHostile finds the closest cross-team target within range.
func (s *WeaponSystem) nearestHostile(from component.Position, team uint8, reach float64) (x, y float64, found bool) {
	best := reach * reach
	for _, t := range s.targets.Entities() {
		col, ok := s.stores.Collider.Get(t)
		if !ok || col.Team == team {
			continue
		}
		tpos, ok := s.stores.Position.Get(t)
		if !ok {
			continue
		}
		dx := tpos.X - from.X
		dy := tpos.Y - from.Y
		d2 := dx*dx + dy*dy
		if d2 <= best {
			best = d2
			x, y = tpos.X, tpos.Y
			found = true
		}
	}
	return x, y, found
}

// fire spawns one projectile from pos toward (tx, ty).
func (s *WeaponSystem) fire(w *engine.World, pos component.Position, tx, ty float64, wpn component.Weapon, team uint8) {
	dx := tx - pos.X
	dy := ty - pos.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}

	p := w.CreateEntity()
	s.stores.Position.Set(p, pos)
	s.stores.Velocity.Set(p, component.Velocity{
		VX: dx / dist * wpn.ProjectileSpeed,
		VY: dy / dist * wpn.ProjectileSpeed,
	})
	s.stores.Sprite.Set(p, component.Sprite{
		Rune:  '*',
		Style: tcell.StyleDefault.Foreground(tcell.ColorAqua),
		Layer: 5,
	})
	s.stores.Collider.Set(p, component.Collider{
		Radius: parameter.ProjectileRadius,
		Team:   team,
	})
	s.stores.Damage.Set(p, component.Damage{Amount: wpn.Damage})
	s.stores.Lifetime.Set(p, component.Lifetime{Remaining: parameter.ProjectileLifetime})
}
