package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/sim"
)

// Chase steers an entity toward a target entity at a configured speed
// while the target is inside the aggro range. Outside the range the
// entity stands still.
type Chase struct {
	Speed float64
	// Range is the aggro radius in px; zero means unlimited.
	Range  float64
	Target sim.Entity
}

// NewChase creates a chase behavior locked onto target.
func NewChase(speed, aggroRange float64, target sim.Entity) *Chase {
	return &Chase{Speed: speed, Range: aggroRange, Target: target}
}

// Tick steers toward the target's position.
func (b *Chase) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	body, ok := w.Bodies().Get(e)
	if !ok || body == nil {
		return
	}
	tr, ok := w.Transforms().Get(e)
	if !ok || tr == nil {
		return
	}
	ttr, ok := w.Transforms().Get(b.Target)
	if !ok || ttr == nil {
		body.Vel = cp.Vector{}
		return
	}

	delta := ttr.Pos.Sub(tr.Pos)
	dist := delta.Length()
	if dist <= patrolArriveDist || (b.Range > 0 && dist > b.Range) {
		body.Vel = cp.Vector{}
		return
	}
	body.Vel = delta.Normalize().Mult(b.Speed)
}
