package systems

import "github.com/tannerhall/tilewind/sim"

// DialogueSystem advances the scene's typewriter machine by the fixed step.
type DialogueSystem struct{}

// NewDialogueSystem creates a DialogueSystem.
func NewDialogueSystem() *DialogueSystem {
	return &DialogueSystem{}
}

// Update steps the typewriter by ctx.DT.
func (s *DialogueSystem) Update(w *sim.World, ctx *sim.Context) {
	if ctx == nil {
		return
	}
	ctx.Dialogue.Update(ctx.DT)
}
