package main

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs/render"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/progress"
	"github.com/milk9111/forestsurvivor/sim"
	"github.com/milk9111/forestsurvivor/tuning"
)

type gameState int

const (
	stateMenu gameState = iota
	stateSelect
	statePlaying
	stateGameOver
	stateVictory
)

func (s gameState) String() string {
	switch s {
	case stateSelect:
		return "select"
	case statePlaying:
		return "playing"
	case stateGameOver:
		return "game_over"
	case stateVictory:
		return "victory"
	}
	return "menu"
}

type Options struct {
	// Level is 1-based; zero opens the menu.
	Level  int
	Debug  bool
	Watch  bool
	Mute   bool
	DBPath string
	Seed   int64
}

type Game struct {
	opts  Options
	state gameState

	tuning  *tuning.Tuning
	catalog *levels.Catalog
	store   progress.Store
	tracker *progress.Tracker

	sim     *sim.Simulation
	current int
	attempt int64

	input    *Input
	sound    *Sound
	renderer *render.Renderer
	ui       *ebitenui.UI
	watcher  *tuning.Watcher
}

func NewGame(opts Options) *Game {
	t, err := tuning.Load()
	if err != nil {
		log.Printf("game: load tuning: %v", err)
		t = tuning.Default()
	}
	catalog, err := levels.Load()
	if err != nil {
		log.Printf("game: load levels: %v", err)
		catalog = levels.Default()
	}

	var store progress.Store
	if s, err := progress.OpenSQLite(opts.DBPath); err != nil {
		log.Printf("game: progress will not persist: %v", err)
		store = progress.NewMemoryStore()
	} else {
		store = s
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	g := &Game{
		opts:     opts,
		tuning:   t,
		catalog:  catalog,
		store:    store,
		tracker:  progress.NewTracker(context.Background(), store, catalog.Len()),
		input:    NewInput(),
		sound:    NewSound(opts.Mute),
		renderer: render.NewRenderer(),
	}
	g.renderer.Debug = opts.Debug

	if opts.Watch {
		w, err := tuning.NewWatcher("tuning", "levels")
		if err != nil {
			log.Printf("game: watch: %v", err)
		} else {
			g.watcher = w
		}
	}

	if opts.Level > 0 {
		g.startLevel(opts.Level - 1)
	} else {
		g.showMenu()
	}
	return g
}

func (g *Game) setState(s gameState, ui *ebitenui.UI) {
	if g.opts.Debug {
		log.Printf("game: %s -> %s", g.state, s)
	}
	g.state = s
	g.ui = ui
}

func (g *Game) showMenu() { g.setState(stateMenu, NewMenuUI(g)) }

func (g *Game) showSelect() { g.setState(stateSelect, NewSelectUI(g)) }

// startLevel begins a fresh attempt at the zero-based index. Out-of-range
// indexes are clamped by the simulation.
func (g *Game) startLevel(index int) {
	g.attempt++
	s, err := sim.New(index, g.tuning, sim.Callbacks{
		OnGameOver:      g.onGameOver,
		OnLevelComplete: g.onLevelComplete,
	}, sim.WithCatalog(g.catalog), sim.WithSound(g.sound), sim.WithSeed(g.opts.Seed+g.attempt))
	if err != nil {
		log.Printf("game: start level %d: %v", index+1, err)
		g.showSelect()
		return
	}
	g.sim = s
	_, g.current = s.Level()
	g.sound.RestartMusic()
	g.setState(statePlaying, nil)
}

func (g *Game) onGameOver() {
	g.setState(stateGameOver, NewGameOverUI(g))
}

func (g *Game) onLevelComplete() {
	next, victory, err := g.tracker.Complete(context.Background(), g.current)
	if err != nil {
		log.Printf("game: save progress: %v", err)
	}
	if victory {
		g.setState(stateVictory, NewVictoryUI(g))
		return
	}
	g.startLevel(next)
}

func (g *Game) Update() error {
	g.reload()

	g.input.Update()
	if g.input.Interacted() {
		g.sound.Unlock()
	}
	g.sound.Update(g.state == statePlaying)

	if g.state != statePlaying {
		if g.ui != nil {
			g.ui.Update()
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.showSelect()
		return nil
	}
	g.sim.SetInput(g.input.State())
	g.sim.Update()
	return nil
}

// reload applies files changed under ./tuning and ./levels. Tuning takes
// effect on the next frame; levels on the next level start.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadFile(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				// A nil channel never becomes ready again.
				g.watcher.Errors = nil
				continue
			}
			log.Printf("game: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadFile(path string) {
	switch filepath.Base(path) {
	case tuning.File:
		t, err := tuning.Load()
		if err != nil {
			log.Printf("game: reload tuning: %v", err)
			return
		}
		g.tuning = t
		if g.sim != nil {
			g.sim.SetTuning(t)
		}
		log.Printf("game: reloaded %s", path)
	case levels.CatalogFile:
		c, err := levels.Load()
		if err != nil {
			log.Printf("game: reload levels: %v", err)
			return
		}
		g.catalog = c
		g.tracker.SetLevels(c.Len())
		log.Printf("game: reloaded %s", path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case statePlaying, stateGameOver, stateVictory:
		if g.sim != nil {
			g.renderer.Draw(screen, g.sim.World())
		}
	}

	if g.state == statePlaying {
		render.DrawHUD(screen, g.sim.HUD())
		render.DrawButtons(screen, g.input.Buttons())
		return
	}
	if g.ui != nil {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases audio, the watcher and the progress store.
func (g *Game) Close() {
	g.sound.Close()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("game: close watcher: %v", err)
		}
	}
	if err := g.store.Close(); err != nil {
		log.Printf("game: close progress: %v", err)
	}
}
