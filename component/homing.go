package component

import (
	"github.com/duskvale/nightswarm/core"
)

// Homing steers an entity toward a target entity. Target is a weak
// reference by identity, not ownership: the steering system revalidates it
// every frame and retargets when the referenced entity is gone.
type Homing struct {
	Target core.Entity
	Accel  float64
}
