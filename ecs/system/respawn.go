package system

import (
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
)

// RespawnSystem handles falling out of the level: one health point is lost
// and the player reappears just above the last checkpoint, or the attempt
// ends when no health is left.
type RespawnSystem struct {
	env *Env
}

func NewRespawnSystem(env *Env) *RespawnSystem { return &RespawnSystem{env: env} }

func (s *RespawnSystem) Update(w *ecs.World) {
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
	if p.Pos.Y <= st.Level.BottomBound()+cfg.FallMargin {
		return
	}

	emit(w, EventHit)
	if damage(p.Player, 1) {
		st.Finish(component.OutcomeGameOver)
		return
	}
	p.Pos.X = p.Player.Checkpoint.X
	p.Pos.Y = p.Player.Checkpoint.Y - cfg.RespawnLift
	p.Vel.Y = 0
	p.Player.Invincible = cfg.InvincibleFrames
}

// damage removes health and reports whether the player is out of it.
// Health never leaves [0, MaxHealth].
func damage(p *component.Player, n int) bool {
	p.Health -= n
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}
