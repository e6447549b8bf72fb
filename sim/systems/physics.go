package systems

import (
	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
)

// PhysicsSystem integrates velocity into position for every non-static
// body under the fixed step. Whether gravity applies comes from the
// explicit per-mode table on components.Mode.
type PhysicsSystem struct{}

// NewPhysicsSystem creates a PhysicsSystem.
func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

// Update advances every body by ctx.DT. Positions are clamped to world
// bounds on X for all modes; the world floor only arrests gravity-affected
// modes, zeroing vy and grounding the body.
func (s *PhysicsSystem) Update(w *sim.World, ctx *sim.Context) {
	if w == nil || ctx == nil {
		return
	}
	dt := ctx.DT
	trs := w.Transforms()

	w.Bodies().ForEach(func(e sim.Entity, body *components.PhysicsBody) {
		if body == nil || body.Mode == components.ModeStatic {
			return
		}
		tr, ok := trs.Get(e)
		if !ok || tr == nil {
			return
		}
		body.Grounded = false

		if body.Mode.UsesGravity() {
			body.Vel.Y += ctx.Gravity * dt
		}
		tr.Pos = tr.Pos.Add(body.Vel.Mult(dt))

		minX := ctx.Bounds.L
		maxX := ctx.Bounds.R - tr.Size.X
		if maxX < minX {
			maxX = minX
		}
		if tr.Pos.X < minX {
			tr.Pos.X = minX
		} else if tr.Pos.X > maxX {
			tr.Pos.X = maxX
		}

		if body.Mode.UsesGravity() {
			floor := ctx.Bounds.T - tr.Size.Y
			if tr.Pos.Y >= floor {
				tr.Pos.Y = floor
				body.Vel.Y = 0
				body.Grounded = true
			}
		}
	})
}
