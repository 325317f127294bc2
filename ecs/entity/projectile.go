package entity

import (
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/tuning"
)

// NewArrow spawns an arrow whose transform is its tip point.
func NewArrow(w *ecs.World, x, y, vx, vy float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: vx, Y: vy})
	_ = ecs.Add(w, e, component.ArrowComponent.Kind(), &component.Arrow{})
	return e
}

// NewTrap places an open trap with its top-left corner at (x, y).
func NewTrap(w *ecs.World, t *tuning.Tuning, x, y float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	_ = ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: t.Trap.Width, Height: t.Trap.Height})
	_ = ecs.Add(w, e, component.TrapComponent.Kind(), &component.Trap{Open: true})
	return e
}
