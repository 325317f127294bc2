package system

import (
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/entity"
	"github.com/milk9111/forestsurvivor/tuning"
)

// ActionSystem fires arrows and sets traps. Both actions repeat on a timed
// lock while their key is held.
type ActionSystem struct {
	env *Env
}

func NewActionSystem(env *Env) *ActionSystem { return &ActionSystem{env: env} }

func (s *ActionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if _, ok := running(w); !ok {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	cfg := s.env.Tuning
	pl, pos, size, in := p.Player, p.Pos, p.Collider, p.Input

	if in.Shoot && pl.Arrows > 0 && pl.ShootLock == 0 {
		pl.ShootTimer = cfg.Player.ShootAnimFrames

		vx, vy := aim(cfg.Arrow, pl.FacingRight, pl.Grounded, in.Left || in.Right, in.Up, in.Down)

		x := pos.X
		if pl.FacingRight {
			x += size.Width
		}
		entity.NewArrow(w, x, pos.Y+size.Height/2, vx, vy)
		pl.Arrows--
		pl.ShootLock = cfg.Player.ShootLockFrames
		emit(w, EventShoot)
	}

	if in.Trap && pl.TrapLock == 0 {
		entity.NewTrap(w, cfg, pos.X, pos.Y+size.Height-4)
		pl.TrapLock = cfg.Player.TrapLockFrames
	}
}

// aim picks the launch velocity. Aiming up tilts the shot, and straight up
// when not moving; aiming down only works in the air.
func aim(a tuning.ArrowTuning, facingRight, grounded, moving, up, down bool) (float64, float64) {
	dir := 1.0
	if !facingRight {
		dir = -1
	}
	switch {
	case up:
		if !moving {
			return 0, -a.StraightSpeed
		}
		return dir * a.AimSpeedX, -a.AimSpeedY
	case down && !grounded:
		if !moving {
			return 0, a.StraightSpeed
		}
		return dir * a.AimSpeedX, a.AimSpeedY
	}
	return dir * a.Speed, a.Lift
}
