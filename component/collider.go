package component

// Collision teams. Colliders only interact across teams.
const (
	TeamPlayer uint8 = iota
	TeamEnemy
)

// Collider is a circle participating in collision checks.
type Collider struct {
	Radius float64
	Team   uint8
}
