package systems

import (
	"github.com/tannerhall/tilewind/common"
	"github.com/tannerhall/tilewind/sim"
)

const (
	// signDebounce is the minimum simulated time between repeated
	// interactions with the same sign.
	signDebounce = 1.0

	// DefaultSignText stands in for a sign object with no text property.
	DefaultSignText = "..."
)

// InteractableSign starts the scene dialogue with its configured text when
// the player is in range of the sign and the interact key edge fires. In
// range means the player's selector rect overlaps the sign's area, or the
// player's body overlapped the sign's sensor collider last tick.
// Interactions are blocked while a dialogue is active anywhere and
// debounced per sign.
type InteractableSign struct {
	// Text is the author-supplied dialogue text.
	Text string

	fired        bool
	lastInteract float64
}

// NewInteractableSign creates a sign behavior with the given dialogue
// text. Empty text falls back to a placeholder rather than failing.
func NewInteractableSign(text string) *InteractableSign {
	if text == "" {
		text = DefaultSignText
	}
	return &InteractableSign{Text: text}
}

// Tick tests the player against the sign and starts the typewriter on an
// interact edge.
func (b *InteractableSign) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	if !ctx.Input.InteractPressed || ctx.Dialogue.Active() {
		return
	}
	if b.fired && ctx.Clock-b.lastInteract < signDebounce {
		return
	}

	pb, ok := w.Behaviors().Get(ctx.Player)
	if !ok {
		return
	}
	player, ok := pb.(*PlayerMovement)
	if !ok {
		return
	}

	if !b.inRange(e, w, ctx, player) {
		return
	}

	ctx.Dialogue.Start(b.Text)
	b.fired = true
	b.lastInteract = ctx.Clock
}

// inRange tests the player's selector against the sign's area, falling
// back to last tick's sensor overlap so standing on the sign counts even
// with the selector pointing away.
func (b *InteractableSign) inRange(e sim.Entity, w *sim.World, ctx *sim.Context, player *PlayerMovement) bool {
	if ctx.Overlapping(e, ctx.Player) {
		return true
	}
	tr, ok := w.Transforms().Get(e)
	if !ok || tr == nil {
		return false
	}
	area := common.Rect{X: tr.Pos.X, Y: tr.Pos.Y, Width: tr.Size.X, Height: tr.Size.Y}
	if col, ok := w.Colliders().Get(e); ok && col != nil {
		area.Width = col.Size.X
		area.Height = col.Size.Y
	}
	return player.Selector().Intersects(area)
}
