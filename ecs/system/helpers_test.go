package system

import (
	"math/rand"
	"testing"

	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/entity"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/tuning"
)

// flatLevel is a 40 column room with a floor at row 7.
func flatLevel() *levels.Level {
	empty := "                                        "
	wall := "########################################"
	return &levels.Level{ID: 99, Arrows: 12, Map: []string{empty, empty, empty, empty, empty, empty, empty, wall, wall}}
}

type fixture struct {
	w      *ecs.World
	env    *Env
	player playerRef
	state  *component.LevelState
	sched  *ecs.Scheduler
}

func newFixture(t *testing.T, lvl *levels.Level, index int) *fixture {
	t.Helper()
	w := ecs.NewWorld()
	env := &Env{Tuning: tuning.Default(), Rand: rand.New(rand.NewSource(1))}
	if _, err := entity.BuildLevel(w, env.Tuning, index, lvl, env.Rand); err != nil {
		t.Fatalf("BuildLevel failed: %v", err)
	}
	p, ok := findPlayer(w)
	if !ok {
		t.Fatalf("expected player")
	}
	st, ok := levelState(w)
	if !ok {
		t.Fatalf("expected level state")
	}
	return &fixture{w: w, env: env, player: p, state: st, sched: ecs.NewScheduler(Gameplay(env)...)}
}

func catalogFixture(t *testing.T, index int) *fixture {
	t.Helper()
	lvl, idx := levels.Default().Lookup(index)
	return newFixture(t, lvl, idx)
}

func (f *fixture) step(n int) {
	for i := 0; i < n; i++ {
		f.sched.Update(f.w)
	}
}

func (f *fixture) addEnemy(t *testing.T, a levels.Archetype, x, y float64) (ecs.Entity, *component.Enemy) {
	t.Helper()
	e, err := entity.NewEnemy(f.w, f.env.Tuning, f.state.Index, levels.EnemySpawn{Type: a, X: x, Y: y})
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	en, _ := ecs.Get(f.w, e, component.EnemyComponent.Kind())
	return e, en
}

func (f *fixture) arrows() []ecs.Entity {
	var out []ecs.Entity
	ecs.ForEach(f.w, component.ArrowComponent.Kind(), func(e ecs.Entity, _ *component.Arrow) {
		out = append(out, e)
	})
	return out
}

func (f *fixture) drain(name string) int {
	n := 0
	for _, ev := range f.w.Events().Drain() {
		if ev.Type == name {
			n++
		}
	}
	return n
}
