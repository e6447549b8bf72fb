package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
)

// CollisionSystem runs pairwise AABB tests between every dynamic-like
// entity and every static entity (plus the tilemap's solid tiles), and
// resolves overlaps along the axis of smaller overlap.
//
// The resolver is a single pass per mover with no iterative solver:
// axis-aligned non-rotated boxes resolve stably, but simultaneous
// multi-body stacking is not guaranteed correct. That limitation is kept
// deliberately to preserve the original movement feel.
type CollisionSystem struct{}

// NewCollisionSystem creates a CollisionSystem.
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Update detects and resolves overlaps. Sensor pairs publish an overlap
// event and never correct position or velocity on either side.
func (s *CollisionSystem) Update(w *sim.World, ctx *sim.Context) {
	if w == nil || ctx == nil {
		return
	}
	trs := w.Transforms()
	cols := w.Colliders()
	bodies := w.Bodies()

	// Partition collidable entities every tick; entity counts are tens,
	// not thousands.
	var movers, statics []sim.Entity
	for _, e := range cols.Entities() {
		if !trs.Has(e) {
			continue
		}
		body, ok := bodies.Get(e)
		if !ok || body == nil || body.Mode == components.ModeStatic {
			statics = append(statics, e)
			continue
		}
		movers = append(movers, e)
	}

	for _, me := range movers {
		mcol, _ := cols.Get(me)
		mtr, _ := trs.Get(me)
		mbody, _ := bodies.Get(me)
		if mcol == nil || mtr == nil || mbody == nil {
			continue
		}

		for _, se := range statics {
			scol, _ := cols.Get(se)
			str, _ := trs.Get(se)
			if scol == nil || str == nil {
				continue
			}
			mbb := mcol.BB(mtr.Pos)
			sbb := scol.BB(str.Pos)
			if !mbb.Intersects(sbb) {
				continue
			}
			if mcol.Sensor || scol.Sensor {
				sensor, mover := se, me
				if mcol.Sensor && !scol.Sensor {
					sensor, mover = me, se
				}
				w.Events().Push(sim.Event{
					Type: sim.EventSensorOverlap,
					Data: sim.SensorOverlap{Sensor: sensor, Mover: mover},
				})
				continue
			}
			resolve(mtr, mbody, mbb, sbb)
		}

		if ctx.Map != nil && !mcol.Sensor {
			for _, tile := range ctx.Map.Query(mcol.BB(mtr.Pos)) {
				mbb := mcol.BB(mtr.Pos)
				if !mbb.Intersects(tile) {
					continue
				}
				resolve(mtr, mbody, mbb, tile)
			}
		}
	}
}

// resolve pushes the mover out of the static box along the axis of smaller
// overlap, zeroing the mover's velocity on that axis. Resolving upward on Y
// grounds the body.
func resolve(tr *components.Transform, body *components.PhysicsBody, mover, static cp.BB) {
	overlapX := min(mover.R-static.L, static.R-mover.L)
	overlapY := min(mover.T-static.B, static.T-mover.B)
	if overlapX <= 0 || overlapY <= 0 {
		return
	}
	if overlapX < overlapY {
		if mover.Center().X < static.Center().X {
			tr.Pos.X -= overlapX
		} else {
			tr.Pos.X += overlapX
		}
		body.Vel.X = 0
		return
	}
	if mover.Center().Y < static.Center().Y {
		tr.Pos.Y -= overlapY
		body.Vel.Y = 0
		body.Grounded = true
	} else {
		tr.Pos.Y += overlapY
		body.Vel.Y = 0
	}
}
