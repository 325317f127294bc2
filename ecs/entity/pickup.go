package entity

import (
	"fmt"

	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/tuning"
)

func NewPickup(w *ecs.World, t *tuning.Tuning, spawn levels.ItemSpawn, phase float64) (ecs.Entity, error) {
	kind := component.PickupHeart
	switch spawn.Tile {
	case levels.TileHeart:
	case levels.TileAmmo:
		kind = component.PickupAmmo
	default:
		return 0, fmt.Errorf("pickup: tile %q is not an item", spawn.Tile)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spawn.X, Y: spawn.Y}); err != nil {
		return 0, fmt.Errorf("pickup: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Width: t.Items.Size, Height: t.Items.Size}); err != nil {
		return 0, fmt.Errorf("pickup: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, FloatOffset: phase}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}
	return e, nil
}
