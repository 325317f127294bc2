package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/levels"
	"github.com/milk9111/forestsurvivor/tuning"
)

// EnemyBody is the mutable state of one enemy handed to its behavior.
type EnemyBody struct {
	Enemy *component.Enemy
	Pos   *component.Transform
	Vel   *component.Velocity
	Size  *component.Collider
}

// Behavior advances one archetype by a single frame. player is the
// player's top-left corner.
type Behavior interface {
	Advance(body EnemyBody, player cp.Vector, lvl *levels.Level, frame int)
}

// BehaviorFor returns the behavior for an archetype, or nil when unknown.
func BehaviorFor(a levels.Archetype, t tuning.EnemyTuning) Behavior {
	switch a {
	case levels.Octopus:
		return Octopus{cfg: t.Octopus}
	case levels.Spider:
		return Spider{cfg: t.Spider}
	case levels.Mosquito:
		return Mosquito{cfg: t.Mosquito}
	}
	return nil
}

// Octopus patrols along a ledge and chases the player when close. It turns
// around at a ledge end or a wall ahead.
type Octopus struct {
	cfg tuning.OctopusTuning
}

func (o Octopus) Advance(b EnemyBody, player cp.Vector, lvl *levels.Level, _ int) {
	pos, vel := b.Pos, b.Vel
	here := cp.Vector{X: pos.X, Y: pos.Y}

	b.Enemy.Chasing = here.Distance(player) < o.cfg.ChaseRange && math.Abs(player.Y-pos.Y) < o.cfg.ChaseBand
	if b.Enemy.Chasing {
		dir := -1.0
		if player.X > pos.X {
			dir = 1
		}
		vel.X = dir * o.cfg.ChaseSpeed
	} else {
		dir := common.Sign(vel.X)
		if dir == 0 {
			dir = 1
		}
		vel.X = dir * o.cfg.PatrolSpeed
	}
	pos.X += vel.X

	edge := pos.X
	if vel.X > 0 {
		edge += b.Size.Width
	}
	col := levels.TileIndex(edge)
	floorRow := levels.TileIndex(pos.Y + b.Size.Height + 2)
	bodyRow := levels.TileIndex(pos.Y)
	if !lvl.IsSolid(col, floorRow) || lvl.IsSolid(col, bodyRow) {
		vel.X = -vel.X
	}
}

// Spider hangs at its spawn point, drops when the player passes below and
// climbs back once it has fallen far enough.
type Spider struct {
	cfg tuning.SpiderTuning
}

func (s Spider) Advance(b EnemyBody, player cp.Vector, _ *levels.Level, _ int) {
	pos, vel, origin := b.Pos, b.Vel, b.Enemy.Origin

	below := math.Abs(player.X-pos.X) < s.cfg.TriggerBand && player.Y > pos.Y
	if below && vel.Y == 0 {
		vel.Y = s.cfg.DropSpeed
	}
	pos.Y += vel.Y
	if pos.Y > origin.Y+s.cfg.DropDistance {
		vel.Y = -s.cfg.ClimbSpeed
	}
	if pos.Y <= origin.Y {
		pos.Y = origin.Y
		vel.Y = 0
	}
}

// Mosquito eases toward a point above the player and bobs while flying.
type Mosquito struct {
	cfg tuning.MosquitoTuning
}

func (m Mosquito) Advance(b EnemyBody, player cp.Vector, _ *levels.Level, frame int) {
	here := cp.Vector{X: b.Pos.X, Y: b.Pos.Y}
	target := cp.Vector{X: player.X, Y: player.Y - m.cfg.HoverOffset}
	next := here.Lerp(target, m.cfg.Ease)
	b.Pos.X = next.X
	b.Pos.Y = next.Y + math.Sin(float64(frame)*m.cfg.BobRate)*m.cfg.BobAmplitude
}
