package engine

import (
	"github.com/duskvale/nightswarm/core"
)

// AnyStore provides type-erased operations for lifecycle management.
// The World uses it to clear an entity's data from every registered store on
// destroy without knowing the concrete component types.
type AnyStore interface {
	// Kind returns the component kind ID assigned at registration.
	Kind() KindID

	// KindName returns the registered name of the component kind.
	KindName() string

	// Has reports whether the entity has this component.
	Has(e core.Entity) bool

	// Discard removes the entity's component without notifying the world.
	// Called by the World itself during destroy commits, when query index
	// maintenance has already happened.
	Discard(e core.Entity)

	// Count returns the number of entities holding this component.
	Count() int

	// Clear removes all components from the store.
	Clear()
}
