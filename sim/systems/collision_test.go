package systems

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
	"github.com/tannerhall/tilewind/tilemap"
)

func addCollidable(w *sim.World, mode components.Mode, x, y, width, height float64, sensor bool) sim.Entity {
	e := addBody(w, mode, x, y, width, height)
	w.Colliders().Set(e, &components.Collider{
		Size:   cp.Vector{X: width, Y: height},
		Sensor: sensor,
	})
	return e
}

func TestResolutionAxis(t *testing.T) {
	cases := []struct {
		name       string
		moverPos   cp.Vector
		wantPos    cp.Vector
		wantVel    cp.Vector
		wantGround bool
	}{
		// Static box occupies (100,100)-(164,164); mover is 32x32.
		{"pushed_left", cp.Vector{X: 74, Y: 116}, cp.Vector{X: 68, Y: 116}, cp.Vector{X: 0, Y: 50}, false},
		{"pushed_right", cp.Vector{X: 158, Y: 116}, cp.Vector{X: 164, Y: 116}, cp.Vector{X: 0, Y: 50}, false},
		{"pushed_up_grounds", cp.Vector{X: 116, Y: 74}, cp.Vector{X: 116, Y: 68}, cp.Vector{X: 50, Y: 0}, true},
		{"pushed_down", cp.Vector{X: 116, Y: 158}, cp.Vector{X: 116, Y: 164}, cp.Vector{X: 50, Y: 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := sim.NewWorld()
			ctx := newTestContext(1000, 1000)
			addCollidable(w, components.ModeStatic, 100, 100, 64, 64, false)
			mover := addCollidable(w, components.ModeTopDown, c.moverPos.X, c.moverPos.Y, 32, 32, false)
			body, _ := w.Bodies().Get(mover)
			body.Vel = cp.Vector{X: 50, Y: 50}

			NewCollisionSystem().Update(w, ctx)

			tr, _ := w.Transforms().Get(mover)
			if tr.Pos != c.wantPos {
				t.Fatalf("resolved to %v, want %v", tr.Pos, c.wantPos)
			}
			if body.Vel != c.wantVel {
				t.Fatalf("velocity %v, want %v", body.Vel, c.wantVel)
			}
			if body.Grounded != c.wantGround {
				t.Fatalf("grounded=%v, want %v", body.Grounded, c.wantGround)
			}
		})
	}
}

// After resolution a non-sensor dynamic box may not overlap a non-sensor
// static box on both axes at once.
func TestCollisionContainment(t *testing.T) {
	w := sim.NewWorld()
	ctx := newTestContext(1000, 1000)
	static := addCollidable(w, components.ModeStatic, 100, 100, 64, 64, false)
	mover := addCollidable(w, components.ModeTopDown, 90, 95, 32, 32, false)

	NewCollisionSystem().Update(w, ctx)

	mcol, _ := w.Colliders().Get(mover)
	mtr, _ := w.Transforms().Get(mover)
	scol, _ := w.Colliders().Get(static)
	str, _ := w.Transforms().Get(static)
	mbb := mcol.BB(mtr.Pos)
	sbb := scol.BB(str.Pos)

	overlapX := min(mbb.R-sbb.L, sbb.R-mbb.L)
	overlapY := min(mbb.T-sbb.B, sbb.T-mbb.B)
	if overlapX > 0 && overlapY > 0 {
		t.Fatalf("still overlapping on both axes: x=%v y=%v", overlapX, overlapY)
	}
}

func TestSensorNonCorrection(t *testing.T) {
	cases := []struct {
		name         string
		sensorStatic bool
		sensorMover  bool
	}{
		{"static_sensor", true, false},
		{"mover_sensor", false, true},
		{"both_sensors", true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := sim.NewWorld()
			ctx := newTestContext(1000, 1000)
			static := addCollidable(w, components.ModeStatic, 100, 100, 64, 64, c.sensorStatic)
			mover := addCollidable(w, components.ModeTopDown, 110, 110, 32, 32, c.sensorMover)
			body, _ := w.Bodies().Get(mover)
			body.Vel = cp.Vector{X: 25, Y: -10}

			NewCollisionSystem().Update(w, ctx)

			mtr, _ := w.Transforms().Get(mover)
			str, _ := w.Transforms().Get(static)
			if mtr.Pos != (cp.Vector{X: 110, Y: 110}) || str.Pos != (cp.Vector{X: 100, Y: 100}) {
				t.Fatalf("sensor overlap moved somebody: mover=%v static=%v", mtr.Pos, str.Pos)
			}
			if body.Vel != (cp.Vector{X: 25, Y: -10}) {
				t.Fatalf("sensor overlap changed velocity: %v", body.Vel)
			}

			events := w.Events().Drain()
			if len(events) != 1 || events[0].Type != sim.EventSensorOverlap {
				t.Fatalf("expected one sensor overlap event, got %v", events)
			}
			overlap := events[0].Data.(sim.SensorOverlap)
			if c.sensorMover && !c.sensorStatic {
				if overlap.Sensor != mover || overlap.Mover != static {
					t.Fatalf("wrong event roles: %+v", overlap)
				}
			} else if overlap.Sensor != static || overlap.Mover != mover {
				t.Fatalf("wrong event roles: %+v", overlap)
			}
		})
	}
}

// overlapWatcher counts the ticks on which its entity overlapped the
// sensor according to the context mirror.
type overlapWatcher struct {
	sensor sim.Entity
	seen   int
}

func (b *overlapWatcher) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	if ctx.Overlapping(b.sensor, e) {
		b.seen++
	}
}

func TestSensorOverlapsReachBehaviors(t *testing.T) {
	w := sim.NewWorld()
	ctx := newTestContext(1000, 1000)
	sensor := addCollidable(w, components.ModeStatic, 100, 100, 64, 64, true)
	mover := addCollidable(w, components.ModeTopDown, 110, 110, 32, 32, false)
	watcher := &overlapWatcher{sensor: sensor}
	w.Behaviors().Set(mover, watcher)

	runner := sim.NewRunner(NewBehaviorSystem(), NewCollisionSystem())
	for i := 0; i < 10; i++ {
		runner.Tick(w, ctx)
	}

	// Collision publishes on tick 1; behaviors see the mirror from tick 2
	// on, so a standing overlap is observed on 9 of 10 ticks.
	if watcher.seen != 9 {
		t.Fatalf("behavior observed the overlap on %d ticks, want 9", watcher.seen)
	}
	if !ctx.Overlapping(sensor, mover) || !ctx.Overlapping(mover, sensor) {
		t.Fatalf("context overlap lookup should match either role order")
	}
}

func TestTilemapCollision(t *testing.T) {
	w := sim.NewWorld()
	ctx := newTestContext(1000, 1000)
	ctx.Map = tilemap.New(4, 4, 32)
	// Solid row at grid y=2: tops at world y=64.
	ctx.Map.AddLayer(tilemap.LayerWorld, []int{
		0, 0, 0, 0,
		0, 0, 0, 0,
		1, 1, 1, 1,
		0, 0, 0, 0,
	})
	ctx.Map.MarkCollision([]int{1})

	mover := addCollidable(w, components.ModePlatformer, 32, 40, 24, 24, false)
	body, _ := w.Bodies().Get(mover)
	body.Vel.Y = 60

	runner := sim.NewRunner(NewPhysicsSystem(), NewCollisionSystem())
	for i := 0; i < 120; i++ {
		runner.Tick(w, ctx)
	}

	tr, _ := w.Transforms().Get(mover)
	if tr.Pos.Y != 64-24 {
		t.Fatalf("expected rest on tile row top at y=40, got %v", tr.Pos.Y)
	}
	if !body.Grounded {
		t.Fatalf("tile contact should ground the body")
	}
}
