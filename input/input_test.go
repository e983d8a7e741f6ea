package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func key(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) tcell.Event {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestMovementIsPersistentDirection(t *testing.T) {
	s := &State{}

	s.Apply(key('l'))
	f := s.Snapshot()
	assert.Equal(t, 1, f.MoveX)
	assert.Equal(t, 0, f.MoveY)

	// Direction persists across snapshots until changed.
	f = s.Snapshot()
	assert.Equal(t, 1, f.MoveX)

	s.Apply(key('k'))
	f = s.Snapshot()
	assert.Equal(t, 0, f.MoveX)
	assert.Equal(t, -1, f.MoveY)

	s.Apply(key(' '))
	f = s.Snapshot()
	assert.Equal(t, 0, f.MoveX)
	assert.Equal(t, 0, f.MoveY)
}

func TestArrowKeysMatchViKeys(t *testing.T) {
	vi := &State{}
	arrows := &State{}

	pairs := []struct {
		r rune
		k tcell.Key
	}{
		{'h', tcell.KeyLeft},
		{'l', tcell.KeyRight},
		{'k', tcell.KeyUp},
		{'j', tcell.KeyDown},
	}
	for _, p := range pairs {
		vi.Apply(key(p.r))
		arrows.Apply(special(p.k))
		assert.Equal(t, vi.Snapshot(), arrows.Snapshot())
	}
}

func TestQuitIsSticky(t *testing.T) {
	for _, ev := range []tcell.Event{key('q'), special(tcell.KeyEscape), special(tcell.KeyCtrlC)} {
		s := &State{}
		s.Apply(ev)
		assert.True(t, s.Snapshot().Quit)

		s.Apply(key('h'))
		assert.True(t, s.Snapshot().Quit, "quit survives later input")
	}
}

func TestPauseToggles(t *testing.T) {
	s := &State{}

	s.Apply(key('p'))
	assert.True(t, s.Snapshot().Pause)

	s.Apply(key('p'))
	assert.False(t, s.Snapshot().Pause)
}

func TestNonKeyEventsIgnored(t *testing.T) {
	s := &State{}
	s.Apply(tcell.NewEventResize(80, 24))
	assert.Equal(t, Frame{}, s.Snapshot())
}
