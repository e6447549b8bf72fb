package sim

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/sim/components"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name   string
		create int
	}{
		{"single", 1},
		{"several", 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if len(w.Entities()) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(w.Entities()))
			}
			seen := map[Entity]bool{}
			for _, e := range ents {
				if !e.Valid() || !w.IsAlive(e) {
					t.Fatalf("entity %v should be alive", e)
				}
				if seen[e] {
					t.Fatalf("duplicate entity id %v", e)
				}
				seen[e] = true
			}

			w.Teardown()
			if len(w.Entities()) != 0 {
				t.Fatalf("expected no entities after teardown, got %d", len(w.Entities()))
			}
			for _, e := range ents {
				if w.IsAlive(e) {
					t.Fatalf("entity %v should be dead after teardown", e)
				}
			}
		})
	}
}

func TestComponentSets(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	w.Transforms().Set(e1, &components.Transform{Pos: cp.Vector{X: 1}})
	w.Transforms().Set(e3, &components.Transform{Pos: cp.Vector{X: 3}})
	w.Bodies().Set(e3, &components.PhysicsBody{Mode: components.ModeDynamic})

	t.Run("has_and_get", func(t *testing.T) {
		if !w.Transforms().Has(e1) || w.Transforms().Has(e2) {
			t.Fatalf("membership wrong: e1=%v e2=%v", w.Transforms().Has(e1), w.Transforms().Has(e2))
		}
		tr, ok := w.Transforms().Get(e3)
		if !ok || tr.Pos.X != 3 {
			t.Fatalf("expected e3 transform x=3, got %v ok=%v", tr, ok)
		}
		if _, ok := w.Transforms().Get(e2); ok {
			t.Fatalf("e2 should have no transform")
		}
	})

	t.Run("filtered_iteration", func(t *testing.T) {
		var got []Entity
		w.Transforms().ForEach(func(e Entity, _ *components.Transform) {
			got = append(got, e)
		})
		if len(got) != 2 || got[0] != e1 || got[1] != e3 {
			t.Fatalf("expected insertion order [e1 e3], got %v", got)
		}
	})

	t.Run("update_in_place", func(t *testing.T) {
		w.Transforms().Set(e1, &components.Transform{Pos: cp.Vector{X: 10}})
		tr, _ := w.Transforms().Get(e1)
		if tr.Pos.X != 10 {
			t.Fatalf("expected updated x=10, got %v", tr.Pos.X)
		}
		if w.Transforms().Len() != 2 {
			t.Fatalf("update should not grow set, len=%d", w.Transforms().Len())
		}
	})

	t.Run("remove", func(t *testing.T) {
		w.Transforms().Remove(e1)
		if w.Transforms().Has(e1) {
			t.Fatalf("e1 should be removed")
		}
		if !w.Transforms().Has(e3) {
			t.Fatalf("e3 should survive removal of e1")
		}
	})
}

func TestEventQueue(t *testing.T) {
	var q EventQueue
	if got := q.Drain(); got != nil {
		t.Fatalf("empty drain should be nil, got %v", got)
	}
	q.Push(Event{Type: EventSensorOverlap, Data: SensorOverlap{Sensor: 1, Mover: 2}})
	q.Push(Event{Type: EventSensorOverlap, Data: SensorOverlap{Sensor: 1, Mover: 3}})
	if len(q.Peek()) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(q.Peek()))
	}
	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 drained events, got %d", len(got))
	}
	if q.Peek() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}
