package sim

import "github.com/tannerhall/tilewind/sim/components"

// World owns all simulation state: the entity store and one component set
// per kind. It holds no behavior logic of its own. Exactly one tick owns
// the world at a time, so mutation is synchronous and unguarded.
type World struct {
	entities entityStore
	order    []Entity

	transforms Set[*components.Transform]
	bodies     Set[*components.PhysicsBody]
	colliders  Set[*components.Collider]
	sprites    Set[*components.Sprite]
	animators  Set[*components.Animator]
	behaviors  Set[Behavior]

	events EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity id.
func (w *World) CreateEntity() Entity {
	e := w.entities.create()
	w.order = append(w.order, e)
	return e
}

// IsAlive reports whether e is a live entity.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Entities returns all live entities in creation order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.order))
	for _, e := range w.order {
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// Teardown releases every entity and component. The world is reusable but
// empty afterward.
func (w *World) Teardown() {
	for _, e := range w.order {
		if !w.entities.destroy(e) {
			continue
		}
		w.transforms.Remove(e)
		w.bodies.Remove(e)
		w.colliders.Remove(e)
		w.sprites.Remove(e)
		w.animators.Remove(e)
		w.behaviors.Remove(e)
	}
	w.order = w.order[:0]
	w.events.flush()
}

func (w *World) Transforms() *Set[*components.Transform]  { return &w.transforms }
func (w *World) Bodies() *Set[*components.PhysicsBody]    { return &w.bodies }
func (w *World) Colliders() *Set[*components.Collider]    { return &w.colliders }
func (w *World) Sprites() *Set[*components.Sprite]        { return &w.sprites }
func (w *World) Animators() *Set[*components.Animator]    { return &w.animators }
func (w *World) Behaviors() *Set[Behavior]                { return &w.behaviors }

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}
