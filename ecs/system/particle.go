package system

import (
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
)

type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem { return &ParticleSystem{} }

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, ok := running(w); !ok {
		return
	}
	ecs.ForEach3(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, p *component.Particle, t *component.Transform, v *component.Velocity) {
		t.X += v.X
		t.Y += v.Y
		p.Life--
		if p.Life <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
