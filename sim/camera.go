package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/common"
)

// Camera tracks a world-space view origin and smoothly follows a target.
// Pos is the top-left of the view in world pixels.
type Camera struct {
	Pos      cp.Vector
	Viewport cp.Vector
	// Bounds is the world size in pixels the view stays clamped inside.
	Bounds cp.Vector
	// Smoothing is the per-tick low-pass factor (0..1]. Higher follows
	// faster; 1 snaps.
	Smoothing float64
}

// NewCamera creates a camera with the default smoothing factor.
func NewCamera(viewportW, viewportH, worldW, worldH float64) Camera {
	return Camera{
		Viewport:  cp.Vector{X: viewportW, Y: viewportH},
		Bounds:    cp.Vector{X: worldW, Y: worldH},
		Smoothing: 0.1,
	}
}

// clampTarget clamps a desired view origin into [0, bounds-viewport] on
// both axes. A world smaller than the view pins the origin at zero.
func (c *Camera) clampTarget(target cp.Vector) cp.Vector {
	maxX := c.Bounds.X - c.Viewport.X
	maxY := c.Bounds.Y - c.Viewport.Y
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	return cp.Vector{
		X: common.Clamp(target.X, 0, maxX),
		Y: common.Clamp(target.Y, 0, maxY),
	}
}

// Follow moves the camera toward the tracked position. The desired view
// origin is the tracked position minus half the viewport, clamped to world
// bounds, then low-pass filtered by Smoothing. This is a plain lerp each
// tick, not a physically modeled spring.
func (c *Camera) Follow(tracked cp.Vector) {
	target := c.clampTarget(tracked.Sub(c.Viewport.Mult(0.5)))
	if c.Smoothing <= 0 {
		c.Pos = target
		return
	}
	c.Pos = c.Pos.Lerp(target, c.Smoothing)
}

// SnapTo places the view origin immediately, with clamping but no
// smoothing. Used after scene load.
func (c *Camera) SnapTo(tracked cp.Vector) {
	c.Pos = c.clampTarget(tracked.Sub(c.Viewport.Mult(0.5)))
}
