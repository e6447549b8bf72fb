package sim

// System advances one aspect of the world each tick.
type System interface {
	Update(w *World, ctx *Context)
}

// Behavior is one member of the closed set of entity behaviors. A behavior
// owns its own state exclusively; no other system writes it. Tick may read
// and write the owning entity's components and spawn new entities, but
// never mutates another entity's id.
type Behavior interface {
	Tick(e Entity, w *World, ctx *Context, dt float64)
}

// Runner drives the fixed-step tick: behaviors first (they set intended
// velocities), then integration, then collision resolution, then derived
// display state. A tick runs to completion before the next begins; there is
// no intra-tick parallelism.
type Runner struct {
	systems []System
}

// NewRunner creates a runner over the given systems, run in order each
// tick.
func NewRunner(systems ...System) *Runner {
	return &Runner{systems: append([]System(nil), systems...)}
}

// Add appends a system to the update order.
func (r *Runner) Add(s System) {
	if s == nil {
		return
	}
	r.systems = append(r.systems, s)
}

// Tick advances the simulation by one fixed step. Sensor overlaps
// published last tick are mirrored into ctx.Overlaps for this tick's
// behavior pass, then the queue is cleared so it only ever holds the
// current tick's events.
func (r *Runner) Tick(w *World, ctx *Context) {
	if w == nil || ctx == nil {
		return
	}
	ctx.Overlaps = ctx.Overlaps[:0]
	for _, evt := range w.events.Peek() {
		if so, ok := evt.Data.(SensorOverlap); ok {
			ctx.Overlaps = append(ctx.Overlaps, so)
		}
	}
	w.events.flush()
	for _, s := range r.systems {
		if s != nil {
			s.Update(w, ctx)
		}
	}
	ctx.Clock += ctx.DT
}
