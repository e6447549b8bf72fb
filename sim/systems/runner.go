package systems

import "github.com/tannerhall/tilewind/sim"

// DefaultRunner builds a runner with the standard tick order: behaviors
// set intent, physics integrates, collision corrects, then animation and
// dialogue update derived display state.
func DefaultRunner() *sim.Runner {
	return sim.NewRunner(
		NewBehaviorSystem(),
		NewPhysicsSystem(),
		NewCollisionSystem(),
		NewAnimationSystem(),
		NewDialogueSystem(),
	)
}
