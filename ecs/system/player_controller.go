package system

import (
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/entity"
)

const runDustEvery = 15

// PlayerControllerSystem turns input into velocity, handles jumping and
// gravity, integrates the player's position and records checkpoints.
type PlayerControllerSystem struct {
	env *Env
}

func NewPlayerControllerSystem(env *Env) *PlayerControllerSystem {
	return &PlayerControllerSystem{env: env}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
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
	cfg := s.env.Tuning.Player
	pl, pos, vel, in := p.Player, p.Pos, p.Vel, p.Input

	var vx float64
	switch {
	case in.Left:
		vx = -cfg.Speed
		pl.FacingRight = false
		pl.Anim = component.AnimRun
	case in.Right:
		vx = cfg.Speed
		pl.FacingRight = true
		pl.Anim = component.AnimRun
	default:
		pl.Anim = component.AnimIdle
	}
	if pl.Knockback > 0 {
		pl.Knockback--
		vel.X *= cfg.KnockbackDecay
	} else {
		vel.X = vx
	}

	if !pl.Grounded {
		pl.Anim = component.AnimJump
	}
	if pl.ShootTimer > 0 {
		pl.Anim = component.AnimShoot
		pl.ShootTimer--
	}

	if in.Jump && pl.Grounded && !pl.JumpLock {
		vel.Y = cfg.JumpForce
		pl.Grounded = false
		pl.JumpLock = true
		emit(w, EventJump)
		for i := 0; i < 5; i++ {
			entity.NewParticle(w,
				pos.X+p.Collider.Width/2, pos.Y+p.Collider.Height,
				(s.env.Rand.Float64()-0.5)*2, -s.env.Rand.Float64(),
				common.Dust, 20)
		}
	}
	if !in.Jump {
		pl.JumpLock = false
	}

	vel.Y += cfg.Gravity
	pos.X += vel.X
	pos.Y += vel.Y

	if pl.Grounded {
		pl.GroundedFrames++
		if cfg.CheckpointFrames > 0 && pl.GroundedFrames%cfg.CheckpointFrames == 0 {
			pl.Checkpoint.X = pos.X
			pl.Checkpoint.Y = pos.Y
		}
	} else {
		pl.GroundedFrames = 0
	}

	if pl.Anim == component.AnimRun && st.Frame%runDustEvery == 0 {
		x := pos.X
		if !pl.FacingRight {
			x += p.Collider.Width
		}
		entity.NewParticle(w, x, pos.Y+p.Collider.Height, s.env.Rand.Float64()-0.5, -0.5, common.RunDust, 15)
	}
}
