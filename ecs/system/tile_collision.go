package system

import (
	"math"

	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/levels"
)

// TileCollisionSystem clamps the player to the level's horizontal bounds,
// pushes it out of solid tiles and detects the goal flag.
//
// Each overlapping wall is resolved on its own, in row-major order, along
// the axis where the centers are further apart. Landing on a tile zeroes
// vertical velocity and sets Grounded; hitting a ceiling only zeroes
// vertical velocity. Horizontal pushes leave velocity alone.
type TileCollisionSystem struct{}

func NewTileCollisionSystem() *TileCollisionSystem { return &TileCollisionSystem{} }

func (s *TileCollisionSystem) Update(w *ecs.World) {
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
	lvl := st.Level
	pos, vel, size := p.Pos, p.Vel, p.Collider

	pos.X = common.Clamp(pos.X, 0, lvl.PixelWidth()-size.Width)

	p.Player.Grounded = false
	reachedGoal := false

	// One tile of slack on every side covers the cells a push-out can move
	// the player into.
	c0 := levels.TileIndex(pos.X) - 1
	c1 := levels.TileIndex(pos.X+size.Width) + 1
	r0 := levels.TileIndex(pos.Y) - 1
	r1 := levels.TileIndex(pos.Y+size.Height) + 1

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			tile := lvl.Tile(col, row)
			if tile != levels.TileWall && tile != levels.TileGoal {
				continue
			}
			tb := common.Box(float64(col*common.TileSize), float64(row*common.TileSize), common.TileSize, common.TileSize)
			pb := size.Bounds(pos)
			if !common.Overlaps(pb, tb) {
				continue
			}
			if tile == levels.TileGoal {
				reachedGoal = true
				continue
			}

			pc, tc := common.Center(pb), common.Center(tb)
			dx, dy := pc.X-tc.X, pc.Y-tc.Y
			if math.Abs(dx) > math.Abs(dy) {
				if dx > 0 {
					pos.X = tb.R
				} else {
					pos.X = tb.L - size.Width
				}
				continue
			}
			if dy > 0 {
				pos.Y = tb.T
				vel.Y = 0
			} else {
				pos.Y = tb.B - size.Height
				vel.Y = 0
				p.Player.Grounded = true
			}
		}
	}

	// A push-out against an edge column can leave the level.
	pos.X = common.Clamp(pos.X, 0, lvl.PixelWidth()-size.Width)

	if reachedGoal && st.Finish(component.OutcomeLevelComplete) {
		emit(w, EventCollect)
	}
}
