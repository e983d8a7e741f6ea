package engine

// KindID identifies one registered component kind. IDs are assigned densely
// at store registration, so the set of kinds is closed once world wiring is
// done and capability checks reduce to bitmask tests.
type KindID uint8

const (
	kindBitsPerWord = 64
	kindMaskWords   = 4

	// MaxKinds is the maximum number of component kinds a world can register.
	MaxKinds = kindBitsPerWord * kindMaskWords
)

// KindMask is a bitset over registered component kinds.
type KindMask [kindMaskWords]uint64

// Has reports whether the mask contains the given kind.
func (m KindMask) Has(id KindID) bool {
	return m[id/kindBitsPerWord]&(1<<(id%kindBitsPerWord)) != 0
}

// ContainsAll reports whether every kind in required is present in m.
func (m KindMask) ContainsAll(required KindMask) bool {
	for i := 0; i < kindMaskWords; i++ {
		if m[i]&required[i] != required[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no kind is set.
func (m KindMask) IsEmpty() bool {
	for i := 0; i < kindMaskWords; i++ {
		if m[i] != 0 {
			return false
		}
	}
	return true
}

func (m KindMask) with(id KindID) KindMask {
	m[id/kindBitsPerWord] |= 1 << (id % kindBitsPerWord)
	return m
}

func (m KindMask) without(id KindID) KindMask {
	m[id/kindBitsPerWord] &^= 1 << (id % kindBitsPerWord)
	return m
}

// MakeKindMask builds a mask from a list of kind IDs.
func MakeKindMask(ids ...KindID) KindMask {
	var m KindMask
	for _, id := range ids {
		m = m.with(id)
	}
	return m
}
