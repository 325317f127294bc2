package component

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/levels"
)

// Enemy is never removed from the world while the level runs. Dead enemies
// stay as tombstones and every system skips them.
type Enemy struct {
	ID        uuid.UUID
	Archetype levels.Archetype

	HP    int
	MaxHP int

	Trapped   bool
	TrapTimer int
	Dead      bool
	Blink     int
	Chasing   bool

	// Origin is the spawn point, used as the patrol and drop anchor.
	Origin cp.Vector
}

var EnemyComponent = NewComponent[Enemy]()

// Alive reports whether the enemy still takes part in the simulation.
func (e *Enemy) Alive() bool {
	return e != nil && !e.Dead
}

// Color is the archetype body color, also used for death bursts.
func (e *Enemy) Color() color.RGBA {
	switch e.Archetype {
	case levels.Spider:
		return common.SpiderColor
	case levels.Mosquito:
		return common.MosquitoColor
	}
	return common.OctopusColor
}
