package status

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
)

// MetricMap holds named metrics of one atomic type. Get creates on first
// use; callers cache the returned pointer during init and write to the
// atomic directly on hot paths, so steady-state updates never touch the map.
type MetricMap[T any] struct {
	mu sync.RWMutex
	m  map[string]*T
}

// NewMetricMap creates an empty metric map.
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{m: make(map[string]*T)}
}

// Get returns the metric with the given name, creating it if needed.
func (mm *MetricMap[T]) Get(name string) *T {
	mm.mu.RLock()
	v, ok := mm.m[name]
	mm.mu.RUnlock()
	if ok {
		return v
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	if v, ok := mm.m[name]; ok {
		return v
	}
	v = new(T)
	mm.m[name] = v
	return v
}

// Count returns the number of registered metrics.
func (mm *MetricMap[T]) Count() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return len(mm.m)
}

// Each visits all metrics in name order.
func (mm *MetricMap[T]) Each(fn func(name string, v *T)) {
	mm.mu.RLock()
	names := make([]string, 0, len(mm.m))
	for name := range mm.m {
		names = append(names, name)
	}
	mm.mu.RUnlock()

	sort.Strings(names)
	for _, name := range names {
		mm.mu.RLock()
		v := mm.m[name]
		mm.mu.RUnlock()
		fn(name, v)
	}
}

// AtomicFloat is a float64 with atomic load/store semantics.
type AtomicFloat struct {
	bits atomic.Uint64
}

// Load returns the current value.
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Store sets the value.
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Registry is the central metrics facade. Systems cache pointers during
// init; update loops write directly to the atomics.
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry.
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types.
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
