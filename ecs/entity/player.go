package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/tuning"
)

// NewPlayer creates the archer at the tuned start position with the given
// quiver. The player entity also carries the frame's Input.
func NewPlayer(w *ecs.World, t *tuning.Tuning, arrows int) (ecs.Entity, error) {
	pt := t.Player
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pt.StartX, Y: pt.StartY}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: pt.Width, Height: pt.Height}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}
	if arrows < 0 {
		arrows = 0
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		Health:      pt.StartHealth,
		Arrows:      arrows,
		FacingRight: true,
		Checkpoint:  cp.Vector{X: pt.StartX, Y: pt.StartY},
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	return e, nil
}
