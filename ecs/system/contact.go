package system

import (
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
)

// ContactSystem damages the player on touching a free, living enemy and
// knocks it away from that enemy.
type ContactSystem struct {
	env *Env
}

func NewContactSystem(env *Env) *ContactSystem { return &ContactSystem{env: env} }

func (s *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	st, ok := running(w)
	if !ok {
		return
	}
	p, ok := findPlayer(w)
	if !ok || p.Player.Invincible > 0 {
		return
	}
	cfg := s.env.Tuning.Player
	pb := p.Collider.Bounds(p.Pos)

	hit := false
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, en *component.Enemy, t *component.Transform, c *component.Collider) {
		if hit || !en.Alive() || en.Trapped {
			return
		}
		if !common.Overlaps(pb, c.Bounds(t)) {
			return
		}
		hit = true

		emit(w, EventHit)
		p.Player.Invincible = cfg.InvincibleFrames
		p.Vel.Y = cfg.KnockbackY
		if p.Pos.X < t.X {
			p.Vel.X = -cfg.KnockbackX
		} else {
			p.Vel.X = cfg.KnockbackX
		}
		p.Player.Knockback = cfg.KnockbackFrames
		if damage(p.Player, 1) {
			st.Finish(component.OutcomeGameOver)
		}
	})
}
