package component

import (
	"time"
)

// Weapon auto-fires projectiles at the nearest enemy whenever its cooldown
// elapses.
type Weapon struct {
	Cooldown        time.Duration
	Remaining       time.Duration
	ProjectileSpeed float64
	Damage          int
	Range           float64
}
