package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/duskvale/nightswarm/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator stream of the given wave shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes a stream with linear attack and release ramps.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream in a volume effect. math.Log2(0) is -Inf, so
// zero volume switches to silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateKillSound generates a short descending zap for an enemy kill.
func CreateKillSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(440.0, parameter.KillSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundRelease, rate)

	return newVolume(shaped, cfg.MasterVolume)
}

// CreateHitSound generates a harsh low buzz for damage to the player.
func CreateHitSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(90.0, parameter.HitSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)

	return newVolume(shaped, cfg.MasterVolume)
}

// CreatePickupSound generates a two-note rising chime for collecting a drop.
func CreatePickupSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (B5)
	n1 := NewOscillator(987.77, parameter.PickupSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.PickupSoundNote1Duration, parameter.PickupSoundAttack, parameter.PickupSoundNote1Release, rate)

	// Second note (E6)
	n2 := NewOscillator(1318.51, parameter.PickupSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.PickupSoundNote2Duration, parameter.PickupSoundAttack, parameter.PickupSoundNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	return newVolume(sequence, cfg.MasterVolume*0.8)
}

// CreateWaveSound generates a low swelling tone announcing a new wave.
func CreateWaveSound(cfg Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(110.0, parameter.WaveSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.WaveSoundDuration, parameter.WaveSoundAttack, parameter.WaveSoundRelease, rate)

	over := NewOscillator(220.0, parameter.WaveSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.WaveSoundDuration, parameter.WaveSoundAttack, parameter.WaveSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	return newVolume(mixed, cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for the given sound type.
func GetSoundEffect(st SoundType, cfg Config) beep.Streamer {
	switch st {
	case SoundKill:
		return CreateKillSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundPickup:
		return CreatePickupSound(cfg)
	case SoundWave:
		return CreateWaveSound(cfg)
	default:
		return nil
	}
}
