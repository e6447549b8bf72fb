package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/tilemap"
)

// DefaultGravity is the world gravity constant in px/s^2.
const DefaultGravity = 800

// Context is the per-scene simulation context: camera, dialogue, input
// snapshot, world bounds, and the fixed-step clock. It is created at scene
// load, passed into every tick, and destroyed at teardown; nothing here is
// ambient or global.
type Context struct {
	Camera   Camera
	Dialogue Dialogue
	Input    Input

	// Bounds is the world rectangle entities are clamped inside.
	Bounds cp.BB
	// Gravity is applied to gravity-affected physics modes, px/s^2.
	Gravity float64
	// DT is the fixed simulation step in seconds.
	DT float64
	// Clock accumulates simulated seconds across ticks. All runtime
	// timeouts compare against it, never against wall time.
	Clock float64

	// Map is the scene tilemap, if the scene has one.
	Map *tilemap.Tilemap
	// Player is the entity carrying the player movement behavior, if any.
	Player Entity

	// Overlaps holds the sensor overlaps detected last tick, mirrored out
	// of the event queue by the runner so behaviors can react to them one
	// tick after collision reports them.
	Overlaps []SensorOverlap
}

// NewContext creates a context for a world of the given pixel size,
// stepped at dt seconds.
func NewContext(worldW, worldH, dt float64) *Context {
	return &Context{
		Bounds:  cp.BB{L: 0, B: 0, R: worldW, T: worldH},
		Gravity: DefaultGravity,
		DT:      dt,
	}
}

// Overlapping reports whether a and b overlapped as a sensor pair last
// tick, in either role.
func (c *Context) Overlapping(a, b Entity) bool {
	for _, o := range c.Overlaps {
		if (o.Sensor == a && o.Mover == b) || (o.Sensor == b && o.Mover == a) {
			return true
		}
	}
	return false
}
