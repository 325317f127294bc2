package system

import (
	"math/rand"

	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/tuning"
)

// Env is shared by the gameplay systems of one world. Tuning may be swapped
// between frames when the tuning file is reloaded.
type Env struct {
	Tuning *tuning.Tuning
	Rand   *rand.Rand
}

func NewEnv(t *tuning.Tuning, seed int64) *Env {
	if t == nil {
		t = tuning.Default()
	}
	return &Env{Tuning: t, Rand: rand.New(rand.NewSource(seed))}
}

// Sound event names pushed on the world queue.
const (
	EventJump     = "jump"
	EventShoot    = "shoot"
	EventHit      = "hit"
	EventCollect  = "collect"
	EventEnemyDie = "enemy_die"
)

func emit(w *ecs.World, name string) {
	w.Events().Push(ecs.Event{Type: name})
}

func levelState(w *ecs.World) (*component.LevelState, bool) {
	e, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.LevelStateComponent.Kind())
}

// running reports whether the attempt is still live. Every system stops
// mutating the world once an outcome is recorded.
func running(w *ecs.World) (*component.LevelState, bool) {
	st, ok := levelState(w)
	if !ok || st.Level == nil || st.Outcome != component.OutcomeNone {
		return nil, false
	}
	return st, true
}

type playerRef struct {
	Entity   ecs.Entity
	Player   *component.Player
	Pos      *component.Transform
	Vel      *component.Velocity
	Collider *component.Collider
	Input    *component.Input
}

func findPlayer(w *ecs.World) (playerRef, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return playerRef{}, false
	}
	ref := playerRef{Entity: e}
	if ref.Player, ok = ecs.Get(w, e, component.PlayerComponent.Kind()); !ok {
		return playerRef{}, false
	}
	if ref.Pos, ok = ecs.Get(w, e, component.TransformComponent.Kind()); !ok {
		return playerRef{}, false
	}
	if ref.Vel, ok = ecs.Get(w, e, component.VelocityComponent.Kind()); !ok {
		return playerRef{}, false
	}
	if ref.Collider, ok = ecs.Get(w, e, component.ColliderComponent.Kind()); !ok {
		return playerRef{}, false
	}
	if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		ref.Input = in
	} else {
		ref.Input = &component.Input{}
	}
	return ref, true
}
