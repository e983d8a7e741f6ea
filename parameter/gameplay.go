package parameter

import (
	"time"
)

// Player tuning.
const (
	PlayerSpeed  = 18.0 // cells per second
	PlayerMaxHP  = 10
	PlayerRadius = 0.6

	// PlayerImmunity is the damage-immunity window after a hit.
	PlayerImmunity = 800 * time.Millisecond
)

// Weapon tuning.
const (
	WeaponCooldown   = 350 * time.Millisecond
	WeaponDamage     = 1
	WeaponRange      = 30.0
	ProjectileSpeed  = 40.0
	ProjectileRadius = 0.4

	// ProjectileLifetime culls strays that never hit anything.
	ProjectileLifetime = 2 * time.Second
)

// Enemy tuning.
const (
	EnemyRadius        = 0.6
	EnemyAccel         = 30.0 // homing acceleration, cells/s^2
	EnemyContactDamage = 1
)

// Drop tuning.
const (
	PickupRadius   = 0.5
	PickupValue    = 5
	PickupLifetime = 8 * time.Second

	// DropChance is the per-kill probability of leaving a pickup,
	// in percent.
	DropChance = 25
)
