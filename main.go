package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/topdown/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and frame stats")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	mapName := flag.String("map", "sandbox.json", "Tiled JSON map in levels/ or a path on disk")
	tmxName := flag.String("tmx", "", "Tiled TMX map; replaces -map when set")
	seed := flag.Uint64("seed", 0, "spawn seed (0 picks one from the clock)")
	watch := flag.Bool("watch", false, "reload prefabs, scripts and maps when they change on disk")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	log.Printf("seed %d", *seed)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("topdown")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(Options{
		MapName: *mapName,
		TMXName: *tmxName,
		Debug:   *debug,
		Seed:    *seed,
		Watch:   *watch,
	})
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer game.Close()

	ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
