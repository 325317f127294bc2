package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/render"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/sim"
	"github.com/milk9111/forestsurvivor/tuning"
)

// previewGame runs each level hands-off for a few seconds, then moves on.
// The archer walks right so the camera sweeps the map.
type previewGame struct {
	catalog  *levels.Catalog
	tuning   *tuning.Tuning
	renderer *render.Renderer

	sim      *sim.Simulation
	index    int
	tick     int
	perLevel int
}

func (g *previewGame) load(index int) {
	s, err := sim.New(index, g.tuning, sim.Callbacks{}, sim.WithCatalog(g.catalog), sim.WithSeed(1))
	if err != nil {
		log.Printf("preview: level %d: %v", index+1, err)
		return
	}
	g.sim = s
	_, g.index = s.Level()
	g.tick = 0
	ebiten.SetWindowTitle(fmt.Sprintf("Forest Survivor preview: level %d", g.index+1))
}

func (g *previewGame) Update() error {
	if g.sim == nil {
		return nil
	}
	g.tick++
	if g.tick >= g.perLevel || g.sim.Halted() {
		g.load((g.index + 1) % g.catalog.Len())
		return nil
	}
	g.sim.SetInput(component.Input{Right: true, Jump: g.tick%90 == 0})
	g.sim.Update()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	if g.sim == nil {
		return
	}
	g.renderer.Draw(screen, g.sim.World())
	render.DrawHUD(screen, g.sim.HUD())
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func main() {
	level := flag.Int("level", 1, "first level to show (1-based)")
	seconds := flag.Int("seconds", 8, "seconds spent on each level")
	debug := flag.Bool("debug", false, "outline colliders")
	flag.Parse()

	catalog, err := levels.Load()
	if err != nil {
		log.Fatal(err)
	}
	t, err := tuning.Load()
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{
		catalog:  catalog,
		tuning:   t,
		renderer: &render.Renderer{Debug: *debug},
		perLevel: max(*seconds, 1) * common.TPS,
	}
	g.load(*level - 1)

	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
