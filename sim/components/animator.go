package components

// Facing is a four-way heading. It persists across idle frames: an entity
// keeps facing the direction it last moved.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// Animator holds the selected animation clip for an entity. The movement
// behavior writes Facing; the animation selector derives Clip from Facing
// and the body's velocity each tick.
type Animator struct {
	Clip   string
	Facing Facing
}
