package components

import "github.com/jakecoffman/cp"

// Shape is a collider shape kind.
type Shape int

const (
	ShapeBox Shape = iota
	ShapeCircle
)

// Collider is an entity's collision volume. Sensors report overlap but never
// cause positional correction for either party. Circle colliders are
// resolved against their bounding box, matching the box-based resolver.
type Collider struct {
	Shape  Shape
	Size   cp.Vector
	Sensor bool
}

// BB returns the collider's bounding box at the given top-left position.
func (c *Collider) BB(pos cp.Vector) cp.BB {
	return cp.BB{L: pos.X, B: pos.Y, R: pos.X + c.Size.X, T: pos.Y + c.Size.Y}
}
