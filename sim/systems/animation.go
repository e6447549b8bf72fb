package systems

import (
	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
)

// AnimationSystem maps facing and velocity to a named clip: walk_<facing>
// while the body moved this tick, idle_<facing> otherwise. Facing is
// whatever the movement behavior last wrote, so an idle entity keeps
// facing the direction it last moved.
type AnimationSystem struct{}

// NewAnimationSystem creates an AnimationSystem.
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update reselects every animator's clip.
func (s *AnimationSystem) Update(w *sim.World, ctx *sim.Context) {
	if w == nil {
		return
	}
	bodies := w.Bodies()
	sprites := w.Sprites()

	w.Animators().ForEach(func(e sim.Entity, anim *components.Animator) {
		if anim == nil {
			return
		}
		moving := false
		if body, ok := bodies.Get(e); ok && body != nil {
			moving = body.Vel.X != 0 || body.Vel.Y != 0
		}
		if moving {
			anim.Clip = "walk_" + anim.Facing.String()
		} else {
			anim.Clip = "idle_" + anim.Facing.String()
		}
		if spr, ok := sprites.Get(e); ok && spr != nil {
			spr.FlipX = anim.Facing == components.FacingLeft
		}
	})
}
