package entity

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/tuning"
)

// BuildLevel populates an empty world for one attempt at lvl: the level
// state and camera singletons, the player, every enemy spawn and every item
// found in the tile grid.
func BuildLevel(w *ecs.World, t *tuning.Tuning, index int, lvl *levels.Level, rng *rand.Rand) (ecs.Entity, error) {
	if lvl == nil {
		return 0, fmt.Errorf("level: nil level")
	}

	state := ecs.CreateEntity(w)
	if err := ecs.Add(w, state, component.LevelStateComponent.Kind(), &component.LevelState{Index: index, Level: lvl}); err != nil {
		return 0, fmt.Errorf("level: add state: %w", err)
	}
	if err := ecs.Add(w, state, component.CameraComponent.Kind(), &component.Camera{}); err != nil {
		return 0, fmt.Errorf("level: add camera: %w", err)
	}

	player, err := NewPlayer(w, t, lvl.Arrows)
	if err != nil {
		return 0, err
	}

	for i, spawn := range lvl.Enemies {
		if _, err := NewEnemy(w, t, index, spawn); err != nil {
			return 0, fmt.Errorf("level %d: enemy %d: %w", lvl.ID, i, err)
		}
	}

	for _, item := range lvl.Items() {
		if _, err := NewPickup(w, t, item, rng.Float64()*math.Pi); err != nil {
			return 0, fmt.Errorf("level %d: %w", lvl.ID, err)
		}
	}

	return player, nil
}
