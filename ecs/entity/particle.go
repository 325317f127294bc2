package entity

import (
	"image/color"
	"math/rand"

	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
)

func NewParticle(w *ecs.World, x, y, vx, vy float64, c color.RGBA, life int) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: vx, Y: vy})
	_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{Color: c, Life: life, MaxLife: life})
	return e
}

// Burst emits count particles from one point with velocities uniform in
// [-spread/2, spread/2) on both axes.
func Burst(w *ecs.World, rng *rand.Rand, x, y float64, c color.RGBA, count int, spread float64, life int) {
	for i := 0; i < count; i++ {
		vx := (rng.Float64() - 0.5) * spread
		vy := (rng.Float64() - 0.5) * spread
		NewParticle(w, x, y, vx, vy, c, life)
	}
}
