package tilemap

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMap() *Tilemap {
	m := New(4, 3, 32)
	m.AddLayer(LayerBelowPlayer, []int{
		5, 5, 5, 5,
		5, 0, 0, 5,
		5, 5, 5, 5,
	})
	m.AddLayer(LayerWorld, []int{
		0, 0, 0, 0,
		0, 7, 0, 0,
		0, 0, 0, 0,
	})
	return m
}

func TestLayerLookup(t *testing.T) {
	m := newTestMap()

	require.NotNil(t, m.Layer(LayerWorld))
	assert.Equal(t, LayerWorld, m.Layer(LayerWorld).Name)
	assert.Nil(t, m.Layer(LayerAbovePlayer))
}

func TestTileAtPrefersLowerLayers(t *testing.T) {
	m := newTestMap()

	assert.Equal(t, 5, m.TileAt(0, 0))
	// Empty in the first layer falls through to the next.
	assert.Equal(t, 7, m.TileAt(1, 1))
	assert.Equal(t, 0, m.TileAt(2, 1))
	assert.Equal(t, 0, m.TileAt(-1, 0))
	assert.Equal(t, 0, m.TileAt(4, 0))
}

func TestMarkCollision(t *testing.T) {
	m := newTestMap()

	assert.Zero(t, m.SolidCount())
	assert.False(t, m.Collidable(0, 0))

	m.MarkCollision([]int{5})

	assert.Equal(t, 10, m.SolidCount())
	assert.True(t, m.Collidable(0, 0))
	assert.False(t, m.Collidable(1, 1), "id 7 not marked")
	assert.False(t, m.Collidable(-1, 0))
}

func TestMarkCollisionAcrossLayers(t *testing.T) {
	m := newTestMap()
	m.MarkCollision([]int{5, 7})

	assert.Equal(t, 11, m.SolidCount())
	assert.True(t, m.Collidable(1, 1))
}

func TestQuery(t *testing.T) {
	m := newTestMap()
	m.MarkCollision([]int{7})

	// Box near the solid tile at grid (1,1), world (32,32)-(64,64).
	boxes := m.Query(cp.BB{L: 40, B: 10, R: 56, T: 30})
	require.Len(t, boxes, 1)
	assert.Equal(t, cp.BB{L: 32, B: 32, R: 64, T: 64}, boxes[0])

	// Far corner is out of the one-tile query margin.
	assert.Empty(t, m.Query(cp.BB{L: 120, B: 90, R: 126, T: 95}))
}

func TestMalformedLayerNeverMatches(t *testing.T) {
	m := New(4, 3, 32)
	m.AddLayer(LayerWorld, []int{1, 2, 3}) // wrong length, kept but inert

	require.NotNil(t, m.Layer(LayerWorld))
	assert.Zero(t, m.TileAt(0, 0))

	m.MarkCollision([]int{1})
	assert.Zero(t, m.SolidCount())
}
