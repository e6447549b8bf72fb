package scene

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
	"github.com/tannerhall/tilewind/sim/systems"
	"github.com/tannerhall/tilewind/tilemap"
)

// FixedStep is the simulation step in seconds.
const FixedStep = 1.0 / 60.0

// Build instantiates a world and context from a compiled scene document.
// A scene that cannot be fully interpreted degrades to partial simulation:
// unknown physics modes and behavior names are reported and skipped, never
// fatal.
func Build(spec *Spec) (*sim.World, *sim.Context, error) {
	if spec == nil {
		return nil, nil, fmt.Errorf("scene: nil spec")
	}

	ctx := sim.NewContext(spec.World.Width, spec.World.Height, FixedStep)
	if spec.World.Gravity != 0 {
		ctx.Gravity = spec.World.Gravity
	}

	viewW, viewH := spec.Camera.ViewportW, spec.Camera.ViewportH
	if viewW <= 0 {
		viewW = spec.World.Width
	}
	if viewH <= 0 {
		viewH = spec.World.Height
	}
	ctx.Camera = sim.NewCamera(viewW, viewH, spec.World.Width, spec.World.Height)
	if spec.Camera.Smoothing > 0 {
		ctx.Camera.Smoothing = spec.Camera.Smoothing
	}

	if spec.Tilemap != nil {
		ctx.Map = buildTilemap(spec.Tilemap)
	}

	w := sim.NewWorld()

	// Components first so behaviors can resolve entities by name.
	byName := make(map[string]sim.Entity, len(spec.Entities))
	ents := make([]sim.Entity, len(spec.Entities))
	for i, es := range spec.Entities {
		e := w.CreateEntity()
		ents[i] = e
		if es.Name != "" {
			byName[es.Name] = e
		}
		buildComponents(w, e, &es)
	}

	for i, es := range spec.Entities {
		if es.Behavior == nil {
			continue
		}
		b := buildBehavior(es.Behavior, byName)
		if b == nil {
			fmt.Printf("scene: entity %q: unknown behavior %q, simulating without custom logic\n", es.Name, es.Behavior.Name)
			continue
		}
		w.Behaviors().Set(ents[i], b)
		if _, ok := b.(*systems.PlayerMovement); ok && ctx.Player == 0 {
			ctx.Player = ents[i]
		}
	}

	// A camera_follow with no explicit target tracks the player.
	w.Behaviors().ForEach(func(_ sim.Entity, b sim.Behavior) {
		if cf, ok := b.(*systems.CameraFollow); ok && cf.Target == 0 {
			cf.Target = ctx.Player
		}
	})

	if tr, ok := w.Transforms().Get(ctx.Player); ok && tr != nil {
		ctx.Camera.SnapTo(tr.Pos)
	}
	return w, ctx, nil
}

func buildComponents(w *sim.World, e sim.Entity, es *EntitySpec) {
	w.Transforms().Set(e, &components.Transform{
		Pos:      cp.Vector{X: es.Transform.X, Y: es.Transform.Y},
		Size:     cp.Vector{X: es.Transform.W, Y: es.Transform.H},
		Rotation: es.Transform.Rotation,
	})

	if es.Physics != nil {
		mode, err := components.ParseMode(es.Physics.Mode)
		if err != nil {
			fmt.Printf("scene: entity %q: %v, treating as static\n", es.Name, err)
		}
		w.Bodies().Set(e, &components.PhysicsBody{
			Mode:     mode,
			Mass:     es.Physics.Mass,
			Friction: es.Physics.Friction,
		})
	}
	if es.Collider != nil {
		shape := components.ShapeBox
		if es.Collider.Shape == "circle" {
			shape = components.ShapeCircle
		}
		size := cp.Vector{X: es.Collider.W, Y: es.Collider.H}
		if size.X <= 0 {
			size.X = es.Transform.W
		}
		if size.Y <= 0 {
			size.Y = es.Transform.H
		}
		w.Colliders().Set(e, &components.Collider{Shape: shape, Size: size, Sensor: es.Collider.Sensor})
	}
	if es.Sprite != nil {
		w.Sprites().Set(e, &components.Sprite{
			Image: es.Sprite.Image,
			Color: es.Sprite.Color,
			Layer: es.Sprite.Layer,
		})
	}
	if es.Animation {
		w.Animators().Set(e, &components.Animator{})
	}
}

// buildBehavior is the single spot where behavior names from the document
// meet the closed variant set.
func buildBehavior(bs *BehaviorSpec, byName map[string]sim.Entity) sim.Behavior {
	switch bs.Name {
	case "player_movement":
		return systems.NewPlayerMovement(bs.Speed)
	case "patrol":
		pts := make([]cp.Vector, len(bs.Waypoints))
		for i, p := range bs.Waypoints {
			pts[i] = cp.Vector{X: p.X, Y: p.Y}
		}
		return systems.NewPatrol(bs.Speed, bs.Pause, pts)
	case "chase":
		return systems.NewChase(bs.Speed, bs.Range, byName[bs.Target])
	case "sign":
		return systems.NewInteractableSign(bs.Text)
	case "camera_follow":
		return systems.NewCameraFollow(byName[bs.Target])
	case "tilemap_layer":
		return systems.NewTilemapLayer(bs.CollisionIDs)
	case "script":
		return systems.NewScript(bs.Script)
	default:
		return nil
	}
}

func buildTilemap(ts *TilemapSpec) *tilemap.Tilemap {
	m := tilemap.New(ts.Width, ts.Height, ts.TileSize)
	for _, layer := range ts.Layers {
		m.AddLayer(layer.Name, layer.Tiles)
	}
	for _, obj := range ts.Objects {
		m.Objects = append(m.Objects, tilemap.Object{
			Type:  obj.Type,
			Name:  obj.Name,
			X:     obj.X,
			Y:     obj.Y,
			W:     obj.W,
			H:     obj.H,
			Props: obj.Props,
		})
	}
	return m
}
