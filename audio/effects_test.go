package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(48000)

// drain pulls a streamer to exhaustion, returning all samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestOscillatorDuration(t *testing.T) {
	s := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)
	samples := drain(t, s)
	assert.Equal(t, testRate.N(100*time.Millisecond), len(samples))
}

func TestOscillatorAmplitudeBounds(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		s := NewOscillator(220, 50*time.Millisecond, wave, testRate)
		for _, sample := range drain(t, s) {
			assert.LessOrEqual(t, sample[0], 1.0)
			assert.GreaterOrEqual(t, sample[0], -1.0)
			assert.Equal(t, sample[0], sample[1], "mono source, both channels equal")
		}
	}
}

func TestEnvelopeRampsEnds(t *testing.T) {
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, testRate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 20*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(t, env)
	require.NotEmpty(t, samples)

	assert.InDelta(t, 0.0, samples[0][0], 0.01, "attack starts silent")
	assert.InDelta(t, 1.0, samples[len(samples)/2][0], 0.01, "sustain at unity")
	assert.InDelta(t, 0.0, samples[len(samples)-1][0], 0.01, "release ends silent")
}

func TestSoundEffectsDefined(t *testing.T) {
	cfg := DefaultConfig()
	for _, st := range []SoundType{SoundKill, SoundHit, SoundPickup, SoundWave} {
		s := GetSoundEffect(st, cfg)
		require.NotNil(t, s, st.String())
		samples := drain(t, s)
		assert.NotEmpty(t, samples, st.String())
	}
	assert.Nil(t, GetSoundEffect(SoundType(99), cfg))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	for _, sample := range drain(t, CreateKillSound(cfg)) {
		assert.Zero(t, sample[0])
		assert.Zero(t, sample[1])
	}
}

func TestDisabledPlayerIsInert(t *testing.T) {
	p := NewPlayer(Config{Enabled: false, SampleRate: 48000})
	require.NoError(t, p.Start())
	assert.False(t, p.Enabled())

	// Must not panic with no speaker.
	p.Play(SoundKill)
	p.Stop()
}
