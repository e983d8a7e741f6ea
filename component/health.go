package component

import (
	"time"
)

// Health is remaining hit points plus post-hit immunity.
type Health struct {
	HP, MaxHP int

	// ImmunityRemaining is the remaining damage-immunity window after a
	// hit, counted down by the damage system.
	ImmunityRemaining time.Duration
}
