package components

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Mode selects how the integrator treats a body.
type Mode int

const (
	ModeStatic Mode = iota
	ModeDynamic
	ModeKinematic
	ModePlatformer
	ModeTopDown
)

// UsesGravity reports whether the integrator applies world gravity to the
// mode. Gravity applicability is an explicit per-mode table, never inferred
// from entity naming.
func (m Mode) UsesGravity() bool {
	switch m {
	case ModeDynamic, ModePlatformer:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeDynamic:
		return "dynamic"
	case ModeKinematic:
		return "kinematic"
	case ModePlatformer:
		return "platformer"
	case ModeTopDown:
		return "topdown"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a scene-document mode name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "static":
		return ModeStatic, nil
	case "dynamic":
		return ModeDynamic, nil
	case "kinematic":
		return ModeKinematic, nil
	case "platformer":
		return ModePlatformer, nil
	case "topdown":
		return ModeTopDown, nil
	default:
		return ModeStatic, fmt.Errorf("components: unknown physics mode %q", s)
	}
}

// PhysicsBody holds per-entity integration state. Static bodies never move,
// from integration or from collision resolution. Mass and Friction are
// read by behaviors, not enforced by the integrator.
type PhysicsBody struct {
	Mode     Mode
	Vel      cp.Vector
	Mass     float64
	Friction float64

	// Grounded is set when downward motion was arrested by a floor or
	// platform this tick.
	Grounded bool
}
