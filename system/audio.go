package system

import (
	"time"

	"github.com/duskvale/nightswarm/audio"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/events"
	"github.com/duskvale/nightswarm/parameter"
)

// SoundPlayer is the slice of the audio player the bridge needs.
type SoundPlayer interface {
	Play(audio.SoundType)
}

// AudioSystem bridges game events to sound effects. It runs no per-frame
// logic; handlers fire sounds directly because Play only queues a streamer.
type AudioSystem struct {
	player SoundPlayer
	subs   []engine.Subscription
}

// NewAudioSystem creates the audio bridge.
func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

// Name returns the system's name.
func (s *AudioSystem) Name() string { return "audio" }

// Priority returns the system's priority.
func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

// Init subscribes the sound triggers.
func (s *AudioSystem) Init(w *engine.World) {
	s.subscribe(w, events.EventEnemyKilled, audio.SoundKill)
	s.subscribe(w, events.EventPlayerHit, audio.SoundHit)
	s.subscribe(w, events.EventPickupCollected, audio.SoundPickup)
	s.subscribe(w, events.EventWaveStarted, audio.SoundWave)
}

// Update implements engine.System.
func (s *AudioSystem) Update(w *engine.World, dt time.Duration) {}

// Shutdown unsubscribes all sound triggers.
func (s *AudioSystem) Shutdown(w *engine.World) {
	for _, sub := range s.subs {
		w.Off(sub)
	}
	s.subs = nil
}

func (s *AudioSystem) subscribe(w *engine.World, t engine.EventType, st audio.SoundType) {
	s.subs = append(s.subs, w.On(t, func(engine.Event) {
		s.player.Play(st)
	}))
}
