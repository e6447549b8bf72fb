package main

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/components"
	"github.com/tannerhall/tilewind/tilemap"
)

// tilePalette colors tile ids that have no art bound. Id 0 is empty and
// never drawn.
var tilePalette = []color.RGBA{
	{R: 0x3c, G: 0x78, B: 0xff, A: 0xff},
	{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	{R: 0x8d, G: 0x6e, B: 0x63, A: 0xff},
	{R: 0x78, G: 0x90, B: 0x9c, A: 0xff},
}

// renderer draws the simulation state: tile layers in order, entities
// sorted so lower sprite layers (sign markers) come before the player,
// then the dialogue overlay.
type renderer struct {
	tileImgs map[color.RGBA]*ebiten.Image
	entImgs  map[string]*ebiten.Image
}

func newRenderer() *renderer {
	return &renderer{
		tileImgs: make(map[color.RGBA]*ebiten.Image),
		entImgs:  make(map[string]*ebiten.Image),
	}
}

func (r *renderer) draw(screen *ebiten.Image, w *sim.World, ctx *sim.Context) {
	if w == nil || ctx == nil {
		return
	}
	camX, camY := ctx.Camera.Pos.X, ctx.Camera.Pos.Y

	var above []tilemap.Layer
	if ctx.Map != nil {
		for _, layer := range ctx.Map.Layers {
			if layer.Name == tilemap.LayerAbovePlayer {
				above = append(above, layer)
				continue
			}
			r.drawLayer(screen, ctx.Map, layer, camX, camY)
		}
	}

	r.drawEntities(screen, w, camX, camY)

	if ctx.Map != nil {
		for _, layer := range above {
			r.drawLayer(screen, ctx.Map, layer, camX, camY)
		}
	}

	if ctx.Dialogue.Active() {
		r.drawDialogue(screen, ctx)
	}
}

func (r *renderer) drawLayer(screen *ebiten.Image, m *tilemap.Tilemap, layer tilemap.Layer, camX, camY float64) {
	if len(layer.Tiles) != m.Width*m.Height {
		return
	}
	ts := m.TileSize
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			id := layer.Tiles[y*m.Width+x]
			if id == 0 {
				continue
			}
			img := r.tileImage(ts, tilePalette[(id-1)%len(tilePalette)])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*ts)-camX, float64(y*ts)-camY)
			screen.DrawImage(img, op)
		}
	}
}

func (r *renderer) drawEntities(screen *ebiten.Image, w *sim.World, camX, camY float64) {
	sprites := w.Sprites()
	trs := w.Transforms()

	order := append([]sim.Entity(nil), sprites.Entities()...)
	sort.SliceStable(order, func(i, j int) bool {
		a, _ := sprites.Get(order[i])
		b, _ := sprites.Get(order[j])
		return a.Layer < b.Layer
	})

	for _, e := range order {
		spr, _ := sprites.Get(e)
		tr, ok := trs.Get(e)
		if !ok || tr == nil || spr == nil {
			continue
		}
		img := r.entityImage(tr.Size, spr)
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		if spr.FlipX {
			op.GeoM.Scale(-1, 1)
			op.GeoM.Translate(tr.Size.X, 0)
		}
		op.GeoM.Translate(tr.Pos.X-camX, tr.Pos.Y-camY)
		screen.DrawImage(img, op)
	}
}

func (r *renderer) drawDialogue(screen *ebiten.Image, ctx *sim.Context) {
	msg := ctx.Dialogue.Text()
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	box := r.entImgs["__dialogue_box"]
	if box == nil {
		box = ebiten.NewImage(w-40, 48)
		box.Fill(color.RGBA{A: 0xc0})
		r.entImgs["__dialogue_box"] = box
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(20, float64(h-68))
	screen.DrawImage(box, op)

	text.Draw(screen, msg, basicfont.Face7x13, 32, h-40, color.White)
}

func (r *renderer) tileImage(size int, c color.RGBA) *ebiten.Image {
	if img, ok := r.tileImgs[c]; ok {
		return img
	}
	img := ebiten.NewImage(size, size)
	img.Fill(c)
	r.tileImgs[c] = img
	return img
}

func (r *renderer) entityImage(size cp.Vector, spr *components.Sprite) *ebiten.Image {
	w, h := int(size.X), int(size.Y)
	if w <= 0 || h <= 0 {
		return nil
	}
	key := fmt.Sprintf("%s|%s|%dx%d", spr.Image, spr.Color, w, h)
	if img, ok := r.entImgs[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(parseHexColor(spr.Color))
	r.entImgs[key] = img
	return img
}

// parseHexColor parses "#rrggbb". Returns a neutral fill if the string is
// malformed or empty.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8 = 0xe0, 0xe0, 0xe0
	if len(s) == 7 && s[0] == '#' {
		var ri, gi, bi uint32
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &ri, &gi, &bi); err == nil {
			r = uint8(ri)
			g = uint8(gi)
			b = uint8(bi)
		}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
