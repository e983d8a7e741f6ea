// Package audio synthesizes the game's sound effects and plays them through
// the system speaker. Everything is generated; there are no sample assets.
package audio

// SoundType identifies one synthesized effect.
type SoundType int

const (
	SoundKill SoundType = iota
	SoundHit
	SoundPickup
	SoundWave
)

// String returns the sound's name for logs.
func (st SoundType) String() string {
	switch st {
	case SoundKill:
		return "kill"
	case SoundHit:
		return "hit"
	case SoundPickup:
		return "pickup"
	case SoundWave:
		return "wave"
	default:
		return "unknown"
	}
}

// Config holds audio output settings.
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultConfig returns the stock audio settings.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   48000,
	}
}
