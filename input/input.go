// Package input decouples systems from raw terminal events: the host event
// goroutine folds tcell events into a State, and systems read per-frame
// snapshots of it.
package input

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// State is the current input state. Terminals deliver key presses but no
// releases, so movement is a persistent direction changed by the last
// movement key, not a held-key poll.
type State struct {
	mu sync.Mutex

	moveX, moveY int
	quit         bool
	pause        bool
}

// Frame is one frame's immutable input snapshot.
type Frame struct {
	MoveX, MoveY int
	Quit         bool
	Pause        bool
}

// Apply folds a terminal event into the state. Movement is vi-style hjkl
// plus arrow keys, space stops; q and Escape quit, p toggles pause.
func (s *State) Apply(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quit = true
		return
	case tcell.KeyLeft:
		s.moveX, s.moveY = -1, 0
		return
	case tcell.KeyRight:
		s.moveX, s.moveY = 1, 0
		return
	case tcell.KeyUp:
		s.moveX, s.moveY = 0, -1
		return
	case tcell.KeyDown:
		s.moveX, s.moveY = 0, 1
		return
	}

	switch key.Rune() {
	case 'q':
		s.quit = true
	case 'h':
		s.moveX, s.moveY = -1, 0
	case 'l':
		s.moveX, s.moveY = 1, 0
	case 'k':
		s.moveX, s.moveY = 0, -1
	case 'j':
		s.moveX, s.moveY = 0, 1
	case ' ':
		s.moveX, s.moveY = 0, 0
	case 'p':
		s.pause = !s.pause
	}
}

// Snapshot returns the current input state as an immutable frame value.
func (s *State) Snapshot() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Frame{
		MoveX: s.moveX,
		MoveY: s.moveY,
		Quit:  s.quit,
		Pause: s.pause,
	}
}
