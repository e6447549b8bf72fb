// Package tilemap holds the scene's composited tile grid: ordered named
// layers of tile ids, a derived collision-tile index, and the typed object
// layer consumed once at scene load.
package tilemap

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/kamstrup/intmap"
)

// Conventional layer names, bottom to top.
const (
	LayerBelowPlayer = "Below Player"
	LayerWorld       = "World"
	LayerAbovePlayer = "Above Player"
	LayerObjects     = "Objects"
)

// Object layer entry types.
const (
	ObjectSpawnPoint = "SpawnPoint"
	ObjectSign       = "Sign"
)

// Layer is one named tile layer: a flat row-major array of tile ids,
// 0 = empty.
type Layer struct {
	Name  string
	Tiles []int
}

// Object is a typed point/rect entry from the object layer, with free-form
// string properties from the scene author.
type Object struct {
	Type  string
	Name  string
	X, Y  float64
	W, H  float64
	Props map[string]string
}

// Tilemap is the grid plus its layers and objects. The solid index is
// empty until MarkCollision derives it from the configured collision ids.
type Tilemap struct {
	Width    int
	Height   int
	TileSize int
	Layers   []Layer
	Objects  []Object

	solid *intmap.Set[int32]
}

// New creates an empty tilemap of the given grid dimensions.
func New(width, height, tileSize int) *Tilemap {
	return &Tilemap{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		solid:    intmap.NewSet[int32](width * height / 4),
	}
}

// AddLayer appends a tile layer. Layers draw in append order. A layer
// whose tile slice does not cover the grid is kept but never matches
// lookups, degrading to partial compositing rather than failing.
func (m *Tilemap) AddLayer(name string, tiles []int) {
	m.Layers = append(m.Layers, Layer{Name: name, Tiles: tiles})
}

// Layer returns the named layer, or nil.
func (m *Tilemap) Layer(name string) *Layer {
	for i := range m.Layers {
		if m.Layers[i].Name == name {
			return &m.Layers[i]
		}
	}
	return nil
}

// TileAt returns the first non-zero tile id at the grid cell across
// layers, or 0.
func (m *Tilemap) TileAt(x, y int) int {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	idx := y*m.Width + x
	for _, layer := range m.Layers {
		if len(layer.Tiles) != m.Width*m.Height {
			continue
		}
		if v := layer.Tiles[idx]; v != 0 {
			return v
		}
	}
	return 0
}

// MarkCollision indexes every tile whose id is in ids as solid. Called
// once at scene load by the tilemap behavior.
func (m *Tilemap) MarkCollision(ids []int) {
	if len(ids) == 0 {
		return
	}
	solid := make(map[int]bool, len(ids))
	for _, id := range ids {
		solid[id] = true
	}
	if m.solid == nil {
		m.solid = intmap.NewSet[int32](m.Width * m.Height / 4)
	}
	for _, layer := range m.Layers {
		if len(layer.Tiles) != m.Width*m.Height {
			continue
		}
		for idx, id := range layer.Tiles {
			if id != 0 && solid[id] {
				m.solid.Add(int32(idx))
			}
		}
	}
}

// Collidable reports whether the grid cell is a marked collision tile.
func (m *Tilemap) Collidable(x, y int) bool {
	if m.solid == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.solid.Has(int32(y*m.Width + x))
}

// SolidCount returns the number of marked collision tiles.
func (m *Tilemap) SolidCount() int {
	if m.solid == nil {
		return 0
	}
	return m.solid.Len()
}

// Query returns the boxes of all collision tiles within one tile of bb,
// for the collision resolver.
func (m *Tilemap) Query(bb cp.BB) []cp.BB {
	if m == nil || m.TileSize <= 0 {
		return nil
	}
	ts := float64(m.TileSize)
	minX := int(math.Floor(bb.L/ts)) - 1
	minY := int(math.Floor(bb.B/ts)) - 1
	maxX := int(math.Floor(bb.R/ts)) + 1
	maxY := int(math.Floor(bb.T/ts)) + 1

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= m.Width {
		maxX = m.Width - 1
	}
	if maxY >= m.Height {
		maxY = m.Height - 1
	}

	var out []cp.BB
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if !m.Collidable(x, y) {
				continue
			}
			out = append(out, cp.BB{
				L: float64(x) * ts,
				B: float64(y) * ts,
				R: float64(x+1) * ts,
				T: float64(y+1) * ts,
			})
		}
	}
	return out
}
