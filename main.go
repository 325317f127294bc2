package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/progress"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	level := flag.Int("level", 0, "start directly in level N (1-based)")
	watch := flag.Bool("watch", false, "hot reload ./tuning and ./levels")
	dbPath := flag.String("db", progress.DefaultPath(), "progress database path")
	mute := flag.Bool("mute", false, "disable sound")
	seed := flag.Int64("seed", 0, "random seed for particles (0 uses the clock)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle("Forest Survivor")
	ebiten.SetTPS(common.TPS)

	game := NewGame(Options{
		Level:  *level,
		Debug:  *debug,
		Watch:  *watch,
		Mute:   *mute,
		DBPath: *dbPath,
		Seed:   *seed,
	})

	err := ebiten.RunGame(game)
	game.Close()
	if err != nil {
		log.Fatal(err)
	}
}
