package engine

import (
	"reflect"
	"time"
)

// ResourceStore is a typed container for shared collaborators (time, input,
// session, audio). Systems pull what they need at construction instead of
// reaching for package-level singletons, so independent worlds (tests) never
// share mutable state.
type ResourceStore struct {
	resources map[reflect.Type]any
}

// NewResourceStore creates an empty resource store.
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource in the store. Use pointer
// types so later mutation is visible to all holders.
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.resources[reflect.TypeOf(resource)] = resource
}

// GetResource retrieves a resource of type T. Returns the zero value and
// false if absent.
func GetResource[T any](rs *ResourceStore) (T, bool) {
	var target T
	val, ok := rs.resources[reflect.TypeOf(target)]
	if !ok {
		return target, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics. For core resources wired
// at startup whose absence is a programming error.
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		var target T
		panic("engine: required resource not found: " + reflect.TypeOf(&target).Elem().String())
	}
	return res
}

// TimeResource carries frame timing for systems that want it outside their
// Update signature (render pass, event handlers). The World refreshes it at
// the start of every Update.
type TimeResource struct {
	// DeltaTime is the sanitized delta of the current frame.
	DeltaTime time.Duration

	// Elapsed is total sanitized game time since the world was created.
	Elapsed time.Duration

	// Frame is the current frame number, starting at 1 for the first
	// Update call.
	Frame int64
}
