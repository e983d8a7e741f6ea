package engine

import (
	"testing"
)

func TestPoolSlotZeroReserved(t *testing.T) {
	p := newEntityPool()
	e := p.acquire()
	if e.Index() == 0 {
		t.Fatalf("slot 0 must never be handed out")
	}
	if e.IsZero() {
		t.Fatalf("first entity must not equal NoEntity")
	}
}

func TestPoolInvalidateIsIdempotent(t *testing.T) {
	p := newEntityPool()
	e := p.acquire()

	if !p.invalidate(e) {
		t.Fatalf("first invalidate must succeed")
	}
	if p.invalidate(e) {
		t.Errorf("second invalidate must be a no-op")
	}
	if p.alive(e) {
		t.Errorf("invalidated handle must not be alive")
	}
}

func TestPoolReclaimReusesSlotWithNewGeneration(t *testing.T) {
	p := newEntityPool()
	e1 := p.acquire()
	p.invalidate(e1)
	p.reclaim(e1.Index())

	e2 := p.acquire()
	if e2.Index() != e1.Index() {
		t.Errorf("expected slot reuse after reclaim")
	}
	if e2.Generation() != e1.Generation()+1 {
		t.Errorf("expected generation %d, got %d", e1.Generation()+1, e2.Generation())
	}
	if p.alive(e1) {
		t.Errorf("old handle must stay stale after reuse")
	}
	if !p.alive(e2) {
		t.Errorf("new handle must be alive")
	}
}

// A destroyed slot is not reused until reclaimed, so handles destroyed
// mid-frame cannot alias new entities within the same frame.
func TestPoolNoReuseBeforeReclaim(t *testing.T) {
	p := newEntityPool()
	e1 := p.acquire()
	p.invalidate(e1)

	e2 := p.acquire()
	if e2.Index() == e1.Index() {
		t.Errorf("slot must not be reused before reclaim")
	}
}

func TestKindMask(t *testing.T) {
	m := MakeKindMask(0, 3, 200)
	for _, id := range []KindID{0, 3, 200} {
		if !m.Has(id) {
			t.Errorf("expected kind %d in mask", id)
		}
	}
	if m.Has(1) {
		t.Errorf("unexpected kind 1 in mask")
	}

	sub := MakeKindMask(0, 200)
	if !m.ContainsAll(sub) {
		t.Errorf("expected mask to contain subset")
	}
	if sub.ContainsAll(m) {
		t.Errorf("subset must not contain superset")
	}

	if !(KindMask{}).IsEmpty() {
		t.Errorf("zero mask must be empty")
	}
	if m.IsEmpty() {
		t.Errorf("populated mask must not be empty")
	}
}

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()

	type session struct{ Seed uint64 }
	AddResource(rs, &session{Seed: 42})

	got, ok := GetResource[*session](rs)
	if !ok || got.Seed != 42 {
		t.Fatalf("expected stored session, got %+v ok=%v", got, ok)
	}

	if _, ok := GetResource[*KindMask](rs); ok {
		t.Errorf("expected missing resource to report absence")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustGetResource must panic on missing resource")
		}
	}()
	MustGetResource[*KindMask](rs)
}
