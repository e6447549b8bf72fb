package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/tannerhall/tilewind/scene"
	"github.com/tannerhall/tilewind/sim"
	"github.com/tannerhall/tilewind/sim/systems"
)

const (
	baseWidth  = 640
	baseHeight = 360
)

type Game struct {
	frames int

	scenePath string
	world     *sim.World
	ctx       *sim.Context
	runner    *sim.Runner
	renderer  *renderer
	watcher   *scene.Watcher
}

func NewGame(scenePath string, watch bool) (*Game, error) {
	spec, err := scene.Load(scenePath)
	if err != nil {
		return nil, err
	}
	world, ctx, err := scene.Build(spec)
	if err != nil {
		return nil, err
	}

	g := &Game{
		scenePath: scenePath,
		world:     world,
		ctx:       ctx,
		runner:    systems.DefaultRunner(),
		renderer:  newRenderer(),
	}

	if watch {
		w, err := scene.NewWatcher(filepath.Dir(scenePath))
		if err != nil {
			log.Printf("scene watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	g.ctx.Input = pollInput()
	g.runner.Tick(g.world, g.ctx)
	return nil
}

// drainWatcher applies at most one pending scene reload per frame.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		log.Printf("scene changed: %s, reloading", path)
		g.reload()
	case err := <-g.watcher.Errors:
		log.Printf("scene watch error: %v", err)
	default:
	}
}

func (g *Game) reload() {
	spec, err := scene.Load(g.scenePath)
	if err != nil {
		log.Printf("reload failed: %v", err)
		return
	}
	world, ctx, err := scene.Build(spec)
	if err != nil {
		log.Printf("reload failed: %v", err)
		return
	}
	g.world.Teardown()
	g.world = world
	g.ctx = ctx
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.draw(screen, g.world, g.ctx)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
