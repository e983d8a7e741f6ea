package engine

import (
	"time"
)

// System is a unit of per-frame behavior. Implementations are independent
// types composed into the world by registration; there is no base class.
//
// Lifecycle: Init runs once at registration, before the first frame. Update
// runs once per frame while the system is enabled, synchronously and
// run-to-completion; anything that must happen "later" is countdown state on
// a component advanced by dt, never a suspended computation. Shutdown runs
// exactly once, at unregister or world teardown.
type System interface {
	// Name identifies the system for enable/disable, metrics and fault
	// reports. Names must be unique within a world.
	Name() string

	// Priority orders systems within a frame; lower runs earlier. Systems
	// sharing a priority run in registration order.
	Priority() int

	Init(w *World)
	Update(w *World, dt time.Duration)
	Shutdown(w *World)
}

// Renderer is an optional extension for systems that draw. The render pass
// runs after the update pass, in the same system order, and is kept separate
// so logic and presentation never interleave within a frame.
type Renderer interface {
	Render(w *World)
}
