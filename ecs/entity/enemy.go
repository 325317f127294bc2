package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/tuning"
)

// NewEnemy spawns one enemy with size and hit points scaled for levelIndex.
func NewEnemy(w *ecs.World, t *tuning.Tuning, levelIndex int, spawn levels.EnemySpawn) (ecs.Entity, error) {
	if !spawn.Type.Valid() {
		return 0, fmt.Errorf("enemy: unknown archetype %q", spawn.Type)
	}
	size := t.Enemy.BaseSize * t.Enemy.SizeScale(levelIndex)
	hp := t.Enemy.HP(levelIndex)

	var vx float64
	if spawn.Type == levels.Octopus {
		vx = t.Enemy.Octopus.PatrolSpeed
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: vx}); err != nil {
		return 0, fmt.Errorf("enemy: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: size, Height: size}); err != nil {
		return 0, fmt.Errorf("enemy: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		ID:        uuid.New(),
		Archetype: spawn.Type,
		HP:        hp,
		MaxHP:     hp,
		Origin:    cp.Vector{X: spawn.X, Y: spawn.Y},
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}
	return e, nil
}
