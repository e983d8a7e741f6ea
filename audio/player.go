package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/duskvale/nightswarm/parameter"
)

// Player owns the speaker and mixes sound effects into it. A player that
// failed to open the audio device, or was created disabled, degrades to
// silence; Play never errors.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player with the given settings.
func NewPlayer(cfg Config) *Player {
	return &Player{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Start opens the speaker. Failure is not fatal: the player stays silent
// and the error is returned only so the host can log it.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferLen)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Stop silences and detaches all playing effects. The speaker itself has no
// close; clearing the mixer is the whole teardown.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Play mixes one effect into the output. Silent no-op when the player never
// started.
func (p *Player) Play(st SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := GetSoundEffect(st, p.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Enabled reports whether the player produces sound.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SetVolume updates the master volume for effects started afterwards.
func (p *Player) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	p.mu.Lock()
	p.cfg.MasterVolume = vol
	p.mu.Unlock()
}
