package parameter

import (
	"time"
)

// Audio output.
const (
	AudioSampleRate = 48000
	AudioBufferLen  = 100 * time.Millisecond
)

// Sound effect shaping.
const (
	KillSoundDuration = 120 * time.Millisecond
	KillSoundAttack   = 5 * time.Millisecond
	KillSoundRelease  = 80 * time.Millisecond

	HitSoundDuration = 180 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 120 * time.Millisecond

	PickupSoundNote1Duration = 70 * time.Millisecond
	PickupSoundNote2Duration = 110 * time.Millisecond
	PickupSoundAttack        = 3 * time.Millisecond
	PickupSoundNote1Release  = 40 * time.Millisecond
	PickupSoundNote2Release  = 80 * time.Millisecond

	WaveSoundDuration = 400 * time.Millisecond
	WaveSoundAttack   = 30 * time.Millisecond
	WaveSoundRelease  = 250 * time.Millisecond
)
