package systems

import "github.com/tannerhall/tilewind/sim"

// CameraFollow keeps the scene camera tracking a target entity. The camera
// itself owns the clamp-then-smooth math.
type CameraFollow struct {
	Target sim.Entity
}

// NewCameraFollow creates a camera-follow behavior tracking target.
func NewCameraFollow(target sim.Entity) *CameraFollow {
	return &CameraFollow{Target: target}
}

// Tick feeds the target position into the camera's low-pass follow.
func (b *CameraFollow) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	tr, ok := w.Transforms().Get(b.Target)
	if !ok || tr == nil {
		return
	}
	ctx.Camera.Follow(tr.Pos)
}
