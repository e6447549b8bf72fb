// Package systems holds the simulation systems and the closed set of
// behavior variants they dispatch over.
package systems

import "github.com/tannerhall/tilewind/sim"

// BehaviorSystem dispatches every entity's behavior tick. Entities without
// a behavior are simulated physically but run no custom logic.
type BehaviorSystem struct{}

// NewBehaviorSystem creates a BehaviorSystem.
func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{}
}

// Update ticks behaviors in entity insertion order. Behaviors spawned
// during a tick start running on the next tick.
func (s *BehaviorSystem) Update(w *sim.World, ctx *sim.Context) {
	if w == nil || ctx == nil {
		return
	}
	w.Behaviors().ForEach(func(e sim.Entity, b sim.Behavior) {
		if b == nil || !w.IsAlive(e) {
			return
		}
		b.Tick(e, w, ctx, ctx.DT)
	})
}
