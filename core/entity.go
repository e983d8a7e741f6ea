package core

// Entity is an opaque handle to a world entity. The lower 32 bits hold the
// slot index, the upper 32 bits the slot generation. The generation is bumped
// every time a slot is reclaimed, so a stale handle to a destroyed entity can
// never alias a newer entity in the same slot.
type Entity uint64

// NoEntity is the zero handle. Slot 0 is never allocated, so the zero value
// of any struct holding an Entity reads as "no entity".
const NoEntity Entity = 0

// NewEntity packs a slot index and generation into a handle.
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index of the handle.
func (e Entity) Index() uint32 { return uint32(e) }

// Generation returns the slot generation of the handle.
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

// IsZero reports whether the handle is the empty handle.
func (e Entity) IsZero() bool { return e == NoEntity }
