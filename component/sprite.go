package component

import (
	"github.com/gdamore/tcell/v2"
)

// Sprite is an entity's visual: one cell, one rune. Layer orders drawing,
// higher on top.
type Sprite struct {
	Rune  rune
	Style tcell.Style
	Layer int
}
