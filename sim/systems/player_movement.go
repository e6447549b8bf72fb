package systems

import (
	"github.com/tannerhall/tilewind/common"
	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
)

// Selector rect geometry. The selector is a small probe rectangle offset
// from the player in its facing direction; interactions test against it,
// not against the player's body. The offsets are tuned to the tile art and
// must not drift.
const (
	selectorW = 16
	selectorH = 16

	selectorLeftX  = -19
	selectorRightX = 35
	selectorSideY  = 14
	selectorUpY    = -18
	selectorDownY  = 46
)

// PlayerMovement drives a player entity from the directional input
// snapshot. Horizontal input overrides vertical, so diagonal movement
// never occurs under keyboard input; that is a movement-feel choice, not
// a bug.
type PlayerMovement struct {
	// Speed is the author-configured movement speed in px/s.
	Speed float64

	facing   components.Facing
	selector common.Rect
}

// NewPlayerMovement creates a player movement behavior.
func NewPlayerMovement(speed float64) *PlayerMovement {
	return &PlayerMovement{Speed: speed}
}

// Tick sets intended velocity from held input, updates facing to the last
// pressed direction, and recomputes the selector rect.
func (b *PlayerMovement) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	body, ok := w.Bodies().Get(e)
	if !ok || body == nil {
		return
	}
	tr, ok := w.Transforms().Get(e)
	if !ok || tr == nil {
		return
	}

	// Vertical intent only applies to non-gravity modes; a platformer
	// player's vy belongs to the integrator.
	vertical := !body.Mode.UsesGravity()

	in := ctx.Input
	body.Vel.X = 0
	if vertical {
		body.Vel.Y = 0
	}
	switch {
	case in.Left:
		body.Vel.X = -b.Speed
		b.facing = components.FacingLeft
	case in.Right:
		body.Vel.X = b.Speed
		b.facing = components.FacingRight
	case in.Up && vertical:
		body.Vel.Y = -b.Speed
		b.facing = components.FacingUp
	case in.Down && vertical:
		body.Vel.Y = b.Speed
		b.facing = components.FacingDown
	}

	if anim, ok := w.Animators().Get(e); ok && anim != nil {
		anim.Facing = b.facing
	}

	b.selector = common.Rect{Width: selectorW, Height: selectorH}
	switch b.facing {
	case components.FacingLeft:
		b.selector.X = tr.Pos.X + selectorLeftX
		b.selector.Y = tr.Pos.Y + selectorSideY
	case components.FacingRight:
		b.selector.X = tr.Pos.X + selectorRightX
		b.selector.Y = tr.Pos.Y + selectorSideY
	case components.FacingUp:
		b.selector.X = tr.Pos.X
		b.selector.Y = tr.Pos.Y + selectorUpY
	default:
		b.selector.X = tr.Pos.X
		b.selector.Y = tr.Pos.Y + selectorDownY
	}
}

// Facing returns the last direction the player moved.
func (b *PlayerMovement) Facing() components.Facing {
	return b.facing
}

// Selector returns the interaction probe rect for the current facing.
func (b *PlayerMovement) Selector() common.Rect {
	return b.selector
}
