package status

import (
	"sync/atomic"
	"testing"
)

func TestMetricMapGetIsStable(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get("engine.frames")
	b := reg.Ints.Get("engine.frames")
	if a != b {
		t.Fatalf("Get must return the same pointer for the same name")
	}

	a.Store(7)
	if b.Load() != 7 {
		t.Errorf("writes through one pointer must be visible through the other")
	}
}

func TestRegistryCounts(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("a")
	reg.Ints.Get("b")
	reg.Floats.Get("c").Store(1.5)
	reg.Bools.Get("d").Store(true)

	if got := reg.TotalCount(); got != 4 {
		t.Errorf("expected 4 metrics, got %d", got)
	}
	if got := reg.Floats.Get("c").Load(); got != 1.5 {
		t.Errorf("expected float metric 1.5, got %v", got)
	}
}

func TestEachVisitsInNameOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("z")
	reg.Ints.Get("a")
	reg.Ints.Get("m")

	var names []string
	reg.Ints.Each(func(name string, _ *atomic.Int64) {
		names = append(names, name)
	})
	want := []string{"a", "m", "z"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, names)
		}
	}
}
