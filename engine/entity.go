package engine

import (
	"github.com/duskvale/nightswarm/core"
)

// entityPool is an arena of entity slots with a free list. Acquire hands out
// a slot index paired with its current generation; invalidate bumps the
// generation so every outstanding handle to the slot goes stale immediately.
// Reclaim (returning the index to the free list) is a separate step so a slot
// destroyed mid-frame is not reused until the end-of-frame commit.
//
// Slot 0 is reserved so core.NoEntity never refers to a live entity.
type entityPool struct {
	generations []uint32
	freeList    []uint32
	nextIndex   uint32
}

func newEntityPool() *entityPool {
	return &entityPool{
		generations: make([]uint32, 1, 1024),
		freeList:    make([]uint32, 0, 256),
		nextIndex:   1,
	}
}

// acquire returns a fresh entity handle, reusing a reclaimed slot if one is
// available.
func (p *entityPool) acquire() core.Entity {
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return core.NewEntity(idx, p.generations[idx])
	}
	idx := p.nextIndex
	p.nextIndex++
	if int(idx) >= len(p.generations) {
		p.generations = append(p.generations, 0)
	}
	return core.NewEntity(idx, p.generations[idx])
}

// alive reports whether the handle still refers to a live slot.
func (p *entityPool) alive(e core.Entity) bool {
	idx := e.Index()
	if idx == 0 || idx >= p.nextIndex {
		return false
	}
	return p.generations[idx] == e.Generation()
}

// invalidate marks the slot dead by bumping its generation. Returns false if
// the handle was already stale, making destruction idempotent.
func (p *entityPool) invalidate(e core.Entity) bool {
	idx := e.Index()
	if idx == 0 || idx >= p.nextIndex {
		return false
	}
	if p.generations[idx] != e.Generation() {
		return false
	}
	p.generations[idx]++
	return true
}

// reclaim returns an invalidated slot to the free list for reuse.
func (p *entityPool) reclaim(index uint32) {
	p.freeList = append(p.freeList, index)
}

// liveCount returns the number of currently live slots.
func (p *entityPool) liveCount() int {
	return int(p.nextIndex) - 1 - len(p.freeList)
}
