package events

import (
	"github.com/duskvale/nightswarm/engine"
)

// Game event types. Dispatch is keyed by these integers; the string names
// registered in registry.go exist for logs and fault reports only.
const (
	// EventCollision signals a cross-team collider overlap.
	// Emitted by: CollisionSystem | Payload: *CollisionPayload
	EventCollision engine.EventType = iota

	// EventEnemyKilled signals an enemy's hit points reached zero.
	// Emitted by: DamageSystem | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventPlayerHit signals contact damage applied to the player.
	// Emitted by: DamageSystem | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventPickupCollected signals the player picked up a drop.
	// Emitted by: PickupSystem | Payload: *PickupCollectedPayload
	EventPickupCollected

	// EventWaveStarted signals a new enemy wave began spawning.
	// Emitted by: SpawnSystem | Payload: *WaveStartedPayload
	EventWaveStarted

	// EventGameOver signals the player died, carrying the final tally.
	// The host loop reacts by leaving the frame loop after the current
	// frame completes.
	// Emitted by: ScoreSystem | Payload: *GameOverPayload
	EventGameOver
)
