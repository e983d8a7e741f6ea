package component

import (
	"time"
)

// Lifetime marks an entity for destruction after a countdown. Delayed
// effects are explicit countdown state advanced by dt, never suspended
// computations.
type Lifetime struct {
	Remaining time.Duration
}
