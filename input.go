package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tannerhall/tilewind/sim"
)

// pollInput snapshots the keyboard into the runtime's input shape.
// Directional state is level-triggered; interact is edge-triggered so a
// held key starts exactly one dialogue.
func pollInput() sim.Input {
	return sim.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		InteractPressed: inpututil.IsKeyJustPressed(ebiten.KeyE) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
