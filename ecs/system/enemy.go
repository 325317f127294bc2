package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
)

// EnemySystem runs each living enemy for one frame. A trapped enemy only
// counts down and dies when its timer runs out.
type EnemySystem struct {
	env *Env
}

func NewEnemySystem(env *Env) *EnemySystem { return &EnemySystem{env: env} }

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	st, ok := running(w)
	if !ok {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	player := cp.Vector{X: p.Pos.X, Y: p.Pos.Y}
	cfg := s.env.Tuning.Enemy
	flash := max(cfg.FlashFrames, 1)

	ecs.ForEach4(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform, v *component.Velocity, c *component.Collider) {
		if !en.Alive() {
			return
		}
		if en.Blink > 0 {
			en.Blink--
		}

		if en.Trapped {
			en.TrapTimer--
			en.Blink = (en.Blink + 1) % flash
			if en.TrapTimer <= 0 {
				killEnemy(w, s.env, e, en)
			}
			return
		}

		b := BehaviorFor(en.Archetype, cfg)
		if b == nil {
			return
		}
		b.Advance(EnemyBody{Enemy: en, Pos: t, Vel: v, Size: c}, player, st.Level, st.Frame)
	})
}
