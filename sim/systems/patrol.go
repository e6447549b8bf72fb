package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/sim"
)

// patrolArriveDist is how close to a waypoint counts as arrival.
const patrolArriveDist = 2.0

// Patrol walks an entity through its waypoints at a configured speed,
// advancing to the next waypoint on arrival, with an optional pause at
// each one.
type Patrol struct {
	Speed     float64
	Waypoints []cp.Vector
	// Pause is the dwell time at each waypoint in seconds; zero means
	// no dwell.
	Pause float64

	index int
	wait  float64
}

// NewPatrol creates a patrol behavior over the given waypoints.
func NewPatrol(speed, pause float64, waypoints []cp.Vector) *Patrol {
	return &Patrol{Speed: speed, Pause: pause, Waypoints: waypoints}
}

// Tick steers toward the current waypoint.
func (b *Patrol) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	if len(b.Waypoints) == 0 {
		return
	}
	body, ok := w.Bodies().Get(e)
	if !ok || body == nil {
		return
	}
	tr, ok := w.Transforms().Get(e)
	if !ok || tr == nil {
		return
	}

	if b.wait > 0 {
		b.wait -= dt
		body.Vel = cp.Vector{}
		return
	}

	target := b.Waypoints[b.index%len(b.Waypoints)]
	delta := target.Sub(tr.Pos)
	if delta.Length() <= patrolArriveDist {
		b.index = (b.index + 1) % len(b.Waypoints)
		b.wait = b.Pause
		body.Vel = cp.Vector{}
		return
	}
	body.Vel = delta.Normalize().Mult(b.Speed)
}

// WaypointIndex returns the index of the waypoint currently steered toward.
func (b *Patrol) WaypointIndex() int {
	return b.index
}
