package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scenePath := flag.String("scene", "scenes/meadow.yaml", "compiled scene document to run")
	watch := flag.Bool("watch", false, "reload the scene when its file changes")
	flag.Parse()

	game, err := NewGame(*scenePath, *watch)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth*2, baseHeight*2)
	ebiten.SetWindowTitle("tilewind")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
