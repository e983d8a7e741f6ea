package system

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/content"
	"github.com/duskvale/nightswarm/core"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/events"
	"github.com/duskvale/nightswarm/parameter"
)

// DamageSystem turns collision events into hit point changes. The event
// handler only records pairs; all mutation happens in Update, after the
// collision sweep of the same frame has finished.
type DamageSystem struct {
	stores *component.Stores
	rng    *rand.Rand
	sub    engine.Subscription

	pending []events.CollisionPayload
	health  *engine.Query
}

// NewDamageSystem creates the damage system. Drop rolls come from the
// session's "drops" stream.
func NewDamageSystem(stores *component.Stores, session *content.Session) *DamageSystem {
	return &DamageSystem{
		stores: stores,
		rng:    session.StreamRand("drops"),
	}
}

// Name returns the system's name.
func (s *DamageSystem) Name() string { return "damage" }

// Priority returns the system's priority.
func (s *DamageSystem) Priority() int { return parameter.PriorityDamage }

// Init subscribes to collision events.
func (s *DamageSystem) Init(w *engine.World) {
	s.health = w.NewQuery(s.stores.Health.Kind())
	s.sub = w.On(events.EventCollision, func(ev engine.Event) {
		p, ok := ev.Payload.(*events.CollisionPayload)
		if !ok {
			return
		}
		s.pending = append(s.pending, *p)
	})
}

// Update ticks down immunity windows and applies this frame's recorded
// collisions in both directions.
func (s *DamageSystem) Update(w *engine.World, dt time.Duration) {
	for _, e := range s.health.Entities() {
		hp, ok := s.stores.Health.Get(e)
		if !ok || hp.ImmunityRemaining <= 0 {
			continue
		}
		hp.ImmunityRemaining -= dt
		if hp.ImmunityRemaining < 0 {
			hp.ImmunityRemaining = 0
		}
		s.stores.Health.Set(e, hp)
	}

	for _, pair := range s.pending {
		s.apply(w, pair.A, pair.B)
		s.apply(w, pair.B, pair.A)
	}
	s.pending = s.pending[:0]
}

// Shutdown unsubscribes the collision handler.
func (s *DamageSystem) Shutdown(w *engine.World) {
	w.Off(s.sub)
}

// apply deals dealer's contact damage to receiver, if both still exist and
// the receiver is vulnerable. Projectiles are spent on contact whether or
// not the hit landed.
func (s *DamageSystem) apply(w *engine.World, dealer, receiver core.Entity) {
	if !w.Alive(dealer) || !w.Alive(receiver) {
		return
	}
	dmg, ok := s.stores.Damage.Get(dealer)
	if !ok {
		return
	}
	hp, ok := s.stores.Health.Get(receiver)
	if !ok {
		return
	}

	// A projectile carries damage and a lifetime but no health of its
	// own; contact consumes it.
	if s.stores.Lifetime.Has(dealer) && !s.stores.Health.Has(dealer) {
		w.DestroyEntity(dealer)
	}

	if hp.ImmunityRemaining > 0 {
		return
	}

	hp.HP -= dmg.Amount
	isPlayer := w.HasTag(receiver, PlayerTag)
	if isPlayer {
		hp.ImmunityRemaining = parameter.PlayerImmunity
	}
	s.stores.Health.Set(receiver, hp)

	if isPlayer {
		remaining := hp.HP
		if remaining < 0 {
			remaining = 0
		}
		w.Emit(events.EventPlayerHit, &events.PlayerHitPayload{
			Attacker:  dealer,
			Damage:    dmg.Amount,
			Remaining: remaining,
		})
	}

	if hp.HP > 0 {
		return
	}

	w.DestroyEntity(receiver)
	if isPlayer {
		return
	}

	kill := &events.EnemyKilledPayload{Entity: receiver}
	if pos, ok := s.stores.Position.Get(receiver); ok {
		kill.X, kill.Y = pos.X, pos.Y
	}
	if own, ok := s.stores.Damage.Get(receiver); ok {
		kill.Score = own.Score
	}
	w.Emit(events.EventEnemyKilled, kill)

	if s.rng.Intn(100) < parameter.DropChance {
		s.dropPickup(w, kill.X, kill.Y)
	}
}

// dropPickup leaves a timed score pickup where an enemy died.
func (s *DamageSystem) dropPickup(w *engine.World, x, y float64) {
	p := w.CreateEntity()
	s.stores.Position.Set(p, component.Position{X: x, Y: y})
	s.stores.Sprite.Set(p, component.Sprite{
		Rune:  '+',
		Style: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Layer: 3,
	})
	s.stores.Pickup.Set(p, component.Pickup{Value: parameter.PickupValue})
	s.stores.Lifetime.Set(p, component.Lifetime{Remaining: parameter.PickupLifetime})
}
