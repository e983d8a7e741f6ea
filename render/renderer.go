// Package render draws the world onto a tcell screen. Drawing happens in
// the render pass, after all updates of the frame committed, so every frame
// shows a consistent world state.
package render

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/duskvale/nightswarm/component"
	"github.com/duskvale/nightswarm/content"
	"github.com/duskvale/nightswarm/engine"
	"github.com/duskvale/nightswarm/parameter"
	"github.com/duskvale/nightswarm/system"
)

// HUDRows is the number of screen rows reserved above the arena.
const HUDRows = 1

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHUD     = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleHearts  = styleDefault.Foreground(tcell.ColorRed)
	stylePaused  = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// RenderSystem draws sprites and the HUD. Update is a no-op; all work
// happens in Render.
type RenderSystem struct {
	screen tcell.Screen
	stores *component.Stores
	arena  content.Arena

	drawable *engine.Query
	score    *atomic.Int64
	kills    *atomic.Int64
	wave     *atomic.Int64

	paused atomic.Bool
}

// NewRenderSystem creates the render system for an already-initialized
// screen.
func NewRenderSystem(screen tcell.Screen, stores *component.Stores, arena content.Arena) *RenderSystem {
	return &RenderSystem{
		screen: screen,
		stores: stores,
		arena:  arena,
	}
}

// Name returns the system's name.
func (r *RenderSystem) Name() string { return "render" }

// Priority returns the system's priority.
func (r *RenderSystem) Priority() int { return parameter.PriorityRender }

// Init registers the drawable query and binds the HUD counters.
func (r *RenderSystem) Init(w *engine.World) {
	r.drawable = w.NewQuery(r.stores.Position.Kind(), r.stores.Sprite.Kind())
	r.score = w.Status().Ints.Get("game.score")
	r.kills = w.Status().Ints.Get("game.kills")
	r.wave = w.Status().Ints.Get("game.wave")
}

// Update implements engine.System.
func (r *RenderSystem) Update(w *engine.World, dt time.Duration) {}

// Shutdown implements engine.System.
func (r *RenderSystem) Shutdown(w *engine.World) {}

// SetPaused toggles the pause overlay.
func (r *RenderSystem) SetPaused(paused bool) {
	r.paused.Store(paused)
}

type drawOp struct {
	x, y   int
	sprite component.Sprite
}

// Render draws the full frame: background, sprites in layer order, HUD.
func (r *RenderSystem) Render(w *engine.World) {
	r.screen.Fill(' ', styleDefault)

	ops := make([]drawOp, 0, r.drawable.Count())
	for _, e := range r.drawable.Entities() {
		pos, ok := r.stores.Position.Get(e)
		if !ok {
			continue
		}
		spr, ok := r.stores.Sprite.Get(e)
		if !ok {
			continue
		}
		x, y := int(pos.X), int(pos.Y)
		if x < 0 || y < 0 || x >= int(r.arena.Width) || y >= int(r.arena.Height) {
			continue
		}
		ops = append(ops, drawOp{x: x, y: y, sprite: spr})
	}

	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].sprite.Layer < ops[j].sprite.Layer
	})
	for _, op := range ops {
		r.screen.SetContent(op.x, op.y+HUDRows, op.sprite.Rune, nil, op.sprite.Style)
	}

	r.drawHUD(w)

	if r.paused.Load() {
		r.drawCentered(int(r.arena.Height)/2+HUDRows, " PAUSED ", stylePaused)
	}

	r.screen.Show()
}

// drawHUD draws the status row: health hearts on the left, tallies on the
// right.
func (r *RenderSystem) drawHUD(w *engine.World) {
	col := 0
	if hp, ok := r.playerHealth(w); ok {
		for i := 0; i < hp.MaxHP; i++ {
			ch := '♥'
			if i >= hp.HP {
				ch = '·'
			}
			r.screen.SetContent(col, 0, ch, nil, styleHearts)
			col++
		}
	}

	tally := fmt.Sprintf("wave %d  kills %d  score %d",
		r.wave.Load(), r.kills.Load(), r.score.Load())
	start := int(r.arena.Width) - len(tally)
	if start < col+2 {
		start = col + 2
	}
	r.drawText(start, 0, tally, styleHUD)
}

// playerHealth fetches the player's health component, if the player exists.
func (r *RenderSystem) playerHealth(w *engine.World) (component.Health, bool) {
	player := w.FirstTagged(system.PlayerTag)
	if !w.Alive(player) {
		return component.Health{}, false
	}
	return r.stores.Health.Get(player)
}

func (r *RenderSystem) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *RenderSystem) drawCentered(y int, text string, style tcell.Style) {
	x := (int(r.arena.Width) - len(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}
