package components

import "github.com/jakecoffman/cp"

// Transform is an entity's placement in world pixels. Pos is the top-left
// corner; Size is the entity's width and height.
type Transform struct {
	Pos      cp.Vector
	Size     cp.Vector
	Rotation float64
}

// BB returns the entity's bounding box.
func (t *Transform) BB() cp.BB {
	return cp.BB{L: t.Pos.X, B: t.Pos.Y, R: t.Pos.X + t.Size.X, T: t.Pos.Y + t.Size.Y}
}
