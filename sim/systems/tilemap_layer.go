package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
	"github.com/tannerhall/tilewind/tilemap"
)

// TilemapLayer performs the tilemap's load-time processing: it marks
// collision tiles and consumes the object layer, relocating the player to
// its spawn point and instancing an invisible sign entity per sign object.
// The work runs exactly once, on the first tick after scene load.
type TilemapLayer struct {
	// CollisionIDs is the set of tile ids that count as solid.
	CollisionIDs []int

	done bool
}

// NewTilemapLayer creates the tilemap processing behavior.
func NewTilemapLayer(collisionIDs []int) *TilemapLayer {
	return &TilemapLayer{CollisionIDs: collisionIDs}
}

// Tick runs the one-shot load processing, then no-ops for the rest of the
// scene's life.
func (b *TilemapLayer) Tick(e sim.Entity, w *sim.World, ctx *sim.Context, dt float64) {
	if b.done {
		return
	}
	b.done = true
	if ctx.Map == nil {
		return
	}

	ctx.Map.MarkCollision(b.CollisionIDs)

	for _, obj := range ctx.Map.Objects {
		switch obj.Type {
		case tilemap.ObjectSpawnPoint:
			if tr, ok := w.Transforms().Get(ctx.Player); ok && tr != nil {
				tr.Pos = cp.Vector{X: obj.X, Y: obj.Y}
			}
		case tilemap.ObjectSign:
			b.spawnSign(w, ctx, obj)
		}
	}
}

func (b *TilemapLayer) spawnSign(w *sim.World, ctx *sim.Context, obj tilemap.Object) {
	width, height := obj.W, obj.H
	if width <= 0 {
		width = float64(ctx.Map.TileSize)
	}
	if height <= 0 {
		height = float64(ctx.Map.TileSize)
	}

	e := w.CreateEntity()
	w.Transforms().Set(e, &components.Transform{
		Pos:  cp.Vector{X: obj.X, Y: obj.Y},
		Size: cp.Vector{X: width, Y: height},
	})
	w.Colliders().Set(e, &components.Collider{
		Shape:  components.ShapeBox,
		Size:   cp.Vector{X: width, Y: height},
		Sensor: true,
	})
	// Sign markers render below the player.
	w.Sprites().Set(e, &components.Sprite{Image: "sign", Layer: 0})
	w.Behaviors().Set(e, NewInteractableSign(obj.Props["text"]))
}
