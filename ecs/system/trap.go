package system

import (
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
)

// TrapSystem lets every open trap catch the first free enemy touching it.
// A trap closes for good after one capture.
type TrapSystem struct {
	env *Env
}

func NewTrapSystem(env *Env) *TrapSystem { return &TrapSystem{env: env} }

func (s *TrapSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, ok := running(w); !ok {
		return
	}
	frames := s.env.Tuning.Trap.CaptureFrames

	ecs.ForEach3(w, component.TrapComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, trap *component.Trap, tt *component.Transform, tc *component.Collider) {
		if !trap.Open {
			return
		}
		tb := tc.Bounds(tt)
		ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, en *component.Enemy, et *component.Transform, ec *component.Collider) {
			if !trap.Open || !en.Alive() || en.Trapped {
				return
			}
			if !common.Overlaps(tb, ec.Bounds(et)) {
				return
			}
			en.Trapped = true
			en.TrapTimer = frames
			trap.Open = false
		})
	})
}
