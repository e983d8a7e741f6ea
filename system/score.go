package system

import (
	"sync/atomic"
	"time"

	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/events"
	"github.com/duskvale/nightswarm/parameter"
)

// ScoreSystem tallies the run: score, kill count, and current wave. It owns
// no entities; it listens. When the player's remaining health reaches zero
// it closes the run with a game-over event carrying the final tally.
type ScoreSystem struct {
	subs []engine.Subscription

	score *atomic.Int64
	kills *atomic.Int64
	wave  *atomic.Int64

	gameOver bool
}

// NewScoreSystem creates the score system.
func NewScoreSystem() *ScoreSystem {
	return &ScoreSystem{}
}

// Name returns the system's name.
func (s *ScoreSystem) Name() string { return "score" }

// Priority returns the system's priority.
func (s *ScoreSystem) Priority() int { return parameter.PriorityScore }

// Init binds the tally counters into the status registry and subscribes to
// the scoring events.
func (s *ScoreSystem) Init(w *engine.World) {
	s.score = w.Status().Ints.Get("game.score")
	s.kills = w.Status().Ints.Get("game.kills")
	s.wave = w.Status().Ints.Get("game.wave")

	s.subscribe(w, events.EventEnemyKilled, func(ev engine.Event) {
		if p, ok := ev.Payload.(*events.EnemyKilledPayload); ok {
			s.score.Add(int64(p.Score))
			s.kills.Add(1)
		}
	})
	s.subscribe(w, events.EventPickupCollected, func(ev engine.Event) {
		if p, ok := ev.Payload.(*events.PickupCollectedPayload); ok {
			s.score.Add(int64(p.Value))
		}
	})
	s.subscribe(w, events.EventWaveStarted, func(ev engine.Event) {
		if p, ok := ev.Payload.(*events.WaveStartedPayload); ok {
			s.wave.Store(int64(p.Number))
		}
	})
	s.subscribe(w, events.EventPlayerHit, func(ev engine.Event) {
		p, ok := ev.Payload.(*events.PlayerHitPayload)
		if !ok || p.Remaining > 0 || s.gameOver {
			return
		}
		s.gameOver = true
		w.Emit(events.EventGameOver, &events.GameOverPayload{
			Score: int(s.score.Load()),
			Wave:  int(s.wave.Load()),
		})
	})
}

// Update implements engine.System.
func (s *ScoreSystem) Update(w *engine.World, dt time.Duration) {}

// Shutdown unsubscribes all handlers.
func (s *ScoreSystem) Shutdown(w *engine.World) {
	for _, sub := range s.subs {
		w.Off(sub)
	}
	s.subs = nil
}

// Score returns the current score.
func (s *ScoreSystem) Score() int { return int(s.score.Load()) }

func (s *ScoreSystem) subscribe(w *engine.World, t engine.EventType, h engine.Handler) {
	s.subs = append(s.subs, w.On(t, h))
}
