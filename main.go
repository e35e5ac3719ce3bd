package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/megaman/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	demo := flag.Bool("demo", false, "let the demo script drive the character")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	joystick := flag.Bool("joystick", false, "show the on-screen joystick")
	levelName := flag.String("level", "", "Tiled level in levels/ or a path on disk (default stage.json)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("megaman")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		Level:    *levelName,
		Debug:    *debug,
		Demo:     *demo,
		Watch:    *watch,
		Joystick: *joystick,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
