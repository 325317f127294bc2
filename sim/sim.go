// Package sim drives one attempt at a level. It owns the ECS world, runs the
// gameplay systems once per frame and reports the outcome to its caller
// exactly once.
package sim

import (
	"fmt"
	"time"

	"github.com/milk9111/forestsurvivor/audio"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/entity"
	"github.com/milk9111/forestsurvivor/ecs/system"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/tuning"
)

// Sound plays feedback effects. The simulation never depends on it
// producing output.
type Sound interface {
	Play(e audio.Effect)
}

type nopSound struct{}

func (nopSound) Play(audio.Effect) {}

// Callbacks are invoked synchronously from Update.
type Callbacks struct {
	OnGameOver      func()
	OnLevelComplete func()
}

// HUD is the per-frame snapshot shown above the playfield.
type HUD struct {
	Health int
	Arrows int
	Level  int
}

type Option func(*Simulation)

// WithSeed fixes the random source used for particles and item phases.
func WithSeed(seed int64) Option {
	return func(s *Simulation) { s.seed = seed }
}

func WithCatalog(c *levels.Catalog) Option {
	return func(s *Simulation) { s.catalog = c }
}

func WithSound(snd Sound) Option {
	return func(s *Simulation) {
		if snd != nil {
			s.sound = snd
		}
	}
}

type Simulation struct {
	world  *ecs.World
	sched  *ecs.Scheduler
	env    *system.Env
	player ecs.Entity
	state  *component.LevelState

	catalog   *levels.Catalog
	seed      int64
	sound     Sound
	callbacks Callbacks

	hud    HUD
	halted bool
}

// New builds a fresh world for the level at levelIndex. Indices outside the
// catalog start the first level.
func New(levelIndex int, t *tuning.Tuning, cb Callbacks, opts ...Option) (*Simulation, error) {
	s := &Simulation{
		seed:      time.Now().UnixNano(),
		sound:     nopSound{},
		callbacks: cb,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = levels.Default()
	}

	lvl, index := s.catalog.Lookup(levelIndex)
	if lvl == nil {
		return nil, fmt.Errorf("sim: empty level catalog")
	}

	s.env = system.NewEnv(t, s.seed)
	s.world = ecs.NewWorld()
	player, err := entity.BuildLevel(s.world, s.env.Tuning, index, lvl, s.env.Rand)
	if err != nil {
		return nil, fmt.Errorf("sim: build level %d: %w", lvl.ID, err)
	}
	s.player = player

	stateEnt, ok := ecs.First(s.world, component.LevelStateComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("sim: level state missing")
	}
	s.state, _ = ecs.Get(s.world, stateEnt, component.LevelStateComponent.Kind())

	s.sched = ecs.NewScheduler(system.Gameplay(s.env)...)
	s.publish()
	return s, nil
}

// SetInput replaces the logical keys for the next frame.
func (s *Simulation) SetInput(in component.Input) {
	if s == nil {
		return
	}
	if cur, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		*cur = in
	}
}

// SetTuning swaps gameplay constants; the change applies from the next frame.
func (s *Simulation) SetTuning(t *tuning.Tuning) {
	if s == nil || t == nil {
		return
	}
	s.env.Tuning = t
}

// Update advances one frame. Once an outcome is reached the matching callback
// runs and further calls do nothing.
func (s *Simulation) Update() {
	if s == nil || s.halted {
		return
	}
	s.sched.Update(s.world)

	for _, ev := range s.world.Events().Drain() {
		if fx, ok := audio.ParseEffect(ev.Type); ok {
			s.sound.Play(fx)
		}
	}
	s.publish()

	switch s.state.Outcome {
	case component.OutcomeGameOver:
		s.halted = true
		if s.callbacks.OnGameOver != nil {
			s.callbacks.OnGameOver()
		}
	case component.OutcomeLevelComplete:
		s.halted = true
		if s.callbacks.OnLevelComplete != nil {
			s.callbacks.OnLevelComplete()
		}
	}
}

func (s *Simulation) publish() {
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	s.hud = HUD{Health: p.Health, Arrows: p.Arrows, Level: s.state.Level.ID}
}

func (s *Simulation) HUD() HUD { return s.hud }

func (s *Simulation) World() *ecs.World { return s.world }

func (s *Simulation) Player() ecs.Entity { return s.player }

func (s *Simulation) Halted() bool { return s.halted }

func (s *Simulation) Outcome() component.Outcome { return s.state.Outcome }

// Level returns the level being played and its resolved catalog index.
func (s *Simulation) Level() (*levels.Level, int) { return s.state.Level, s.state.Index }

func (s *Simulation) Frame() int { return s.state.Frame }
