package engine

import (
	"runtime/debug"
	"sort"
	"sync/atomic"
	"time"

	"github.com/duskvale/nightswarm/engine/status"
)

// systemState tracks a registered system's lifecycle. Each system is in
// exactly one state; tornDown is terminal.
type systemState uint8

const (
	stateActive systemState = iota
	stateDisabled
	stateTornDown
)

type systemEntry struct {
	sys      System
	state    systemState
	seq      int // registration order, the priority tie-break
	statTime *atomic.Int64
}

// Scheduler owns the ordered system list and drives the per-frame update
// pass. Systems run in ascending priority order with ties broken by
// registration order, so a frame's invocation sequence is deterministic and
// reproducible across runs with identical registration sequences.
//
// A system whose update panics is reported to the fault sink and skipped for
// the rest of the frame; the remaining systems still run. A frozen loop is
// worse than one subsystem missing a frame.
type Scheduler struct {
	entries []*systemEntry
	nextSeq int
	sorted  bool
	sink    FaultSink
	status  *status.Registry
}

// NewScheduler creates an empty scheduler reporting faults to sink and
// publishing per-system update timings to reg.
func NewScheduler(sink FaultSink, reg *status.Registry) *Scheduler {
	return &Scheduler{
		entries: make([]*systemEntry, 0, 16),
		sink:    sink,
		status:  reg,
	}
}

// Register adds a system and immediately runs its Init. The system becomes
// active and will receive Update calls starting with the next frame.
func (s *Scheduler) Register(w *World, sys System) {
	entry := &systemEntry{
		sys:      sys,
		state:    stateActive,
		seq:      s.nextSeq,
		statTime: s.status.Ints.Get("system." + sys.Name() + ".update_ns"),
	}
	s.nextSeq++
	s.entries = append(s.entries, entry)
	s.sorted = false
	sys.Init(w)
}

// SetEnabled toggles a system without unregistering it. A disabled system
// keeps its state and queries; its Update calls are simply skipped. Returns
// false if no system with the given name is registered or it is already torn
// down.
func (s *Scheduler) SetEnabled(name string, enabled bool) bool {
	entry := s.find(name)
	if entry == nil || entry.state == stateTornDown {
		return false
	}
	if enabled {
		entry.state = stateActive
	} else {
		entry.state = stateDisabled
	}
	return true
}

// Unregister tears a system down: its Shutdown runs exactly once and it
// never receives another call. Returns false for unknown names.
func (s *Scheduler) Unregister(w *World, name string) bool {
	entry := s.find(name)
	if entry == nil || entry.state == stateTornDown {
		return false
	}
	s.teardownEntry(w, entry)
	return true
}

// Update runs one frame: every active system's Update, in order.
func (s *Scheduler) Update(w *World, dt time.Duration) {
	s.ensureSorted()
	for _, entry := range s.entries {
		if entry.state != stateActive {
			continue
		}
		s.runUpdate(w, entry, dt)
	}
}

// Render runs the render pass: every active system implementing Renderer,
// in the same order as the update pass.
func (s *Scheduler) Render(w *World) {
	s.ensureSorted()
	for _, entry := range s.entries {
		if entry.state != stateActive {
			continue
		}
		r, ok := entry.sys.(Renderer)
		if !ok {
			continue
		}
		s.runProtected(FaultSystemRender, entry.sys.Name(), func() {
			r.Render(w)
		})
	}
}

// Teardown shuts down every system that has not already been torn down.
// Called at world teardown; shutdown order follows the update order.
func (s *Scheduler) Teardown(w *World) {
	s.ensureSorted()
	for _, entry := range s.entries {
		if entry.state == stateTornDown {
			continue
		}
		s.teardownEntry(w, entry)
	}
}

// Systems returns the registered systems in execution order, including
// disabled ones.
func (s *Scheduler) Systems() []System {
	s.ensureSorted()
	result := make([]System, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.state != stateTornDown {
			result = append(result, entry.sys)
		}
	}
	return result
}

func (s *Scheduler) find(name string) *systemEntry {
	for _, entry := range s.entries {
		if entry.sys.Name() == name {
			return entry
		}
	}
	return nil
}

func (s *Scheduler) teardownEntry(w *World, entry *systemEntry) {
	entry.state = stateTornDown
	s.runProtected(FaultSystemShutdown, entry.sys.Name(), func() {
		entry.sys.Shutdown(w)
	})
}

func (s *Scheduler) runUpdate(w *World, entry *systemEntry, dt time.Duration) {
	start := time.Now()
	s.runProtected(FaultSystemUpdate, entry.sys.Name(), func() {
		entry.sys.Update(w, dt)
	})
	entry.statTime.Store(int64(time.Since(start)))
}

func (s *Scheduler) runProtected(category, origin string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.sink.ReportFault(category, origin, r, debug.Stack())
		}
	}()
	fn()
}

func (s *Scheduler) ensureSorted() {
	if s.sorted {
		return
	}
	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].sys.Priority() != s.entries[j].sys.Priority() {
			return s.entries[i].sys.Priority() < s.entries[j].sys.Priority()
		}
		return s.entries[i].seq < s.entries[j].seq
	})
	s.sorted = true
}
