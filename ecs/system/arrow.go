package system

import (
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/entity"
	"github.com/milk9111/forestsurvivor/levels"
)

// ArrowSystem moves arrows and resolves their impacts. An arrow is removed
// on its first solid tile, first living enemy or when it leaves the level.
// When several enemies contain the arrow tip, the first in world order takes
// the hit.
type ArrowSystem struct {
	env *Env
}

func NewArrowSystem(env *Env) *ArrowSystem { return &ArrowSystem{env: env} }

func (s *ArrowSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	st, ok := running(w)
	if !ok {
		return
	}
	cfg := s.env.Tuning
	lvl := st.Level
	trail := cfg.Arrow.TrailEvery > 0 && st.Frame%cfg.Arrow.TrailEvery == 0

	ecs.ForEach3(w, component.ArrowComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, _ *component.Arrow, t *component.Transform, v *component.Velocity) {
		t.X += v.X
		t.Y += v.Y
		v.Y += cfg.Arrow.Gravity

		if trail {
			entity.NewParticle(w, t.X, t.Y, s.env.Rand.Float64()-0.5, s.env.Rand.Float64()-0.5, common.ArrowGold, 10)
		}

		if lvl.TileAt(t.X, t.Y) == levels.TileWall {
			ecs.DestroyEntity(w, e)
			return
		}

		if target, ok := s.firstHit(w, t.X, t.Y); ok {
			HitEnemy(w, s.env, target)
			ecs.DestroyEntity(w, e)
			return
		}

		if t.X <= 0 || t.X >= lvl.PixelWidth() || t.Y < 0 || t.Y >= lvl.BottomBound() {
			ecs.DestroyEntity(w, e)
		}
	})
}

func (s *ArrowSystem) firstHit(w *ecs.World, x, y float64) (ecs.Entity, bool) {
	var (
		hit   ecs.Entity
		found bool
	)
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, en *component.Enemy, t *component.Transform, c *component.Collider) {
		if found || !en.Alive() {
			return
		}
		if common.ContainsPoint(c.Bounds(t), x, y) {
			hit, found = e, true
		}
	})
	return hit, found
}

// HitEnemy applies one arrow hit. Hit points never go below zero and the
// death transition happens once.
func HitEnemy(w *ecs.World, env *Env, e ecs.Entity) {
	en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	if !ok || !en.Alive() {
		return
	}
	if en.HP > 0 {
		en.HP--
	}
	en.Blink = env.Tuning.Enemy.FlashFrames
	emit(w, EventHit)
	if en.HP <= 0 {
		killEnemy(w, env, e, en)
	}
}

func killEnemy(w *ecs.World, env *Env, e ecs.Entity, en *component.Enemy) {
	if en.Dead {
		return
	}
	en.HP = 0
	en.Dead = true
	emit(w, EventEnemyDie)

	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return
	}
	center := common.Center(c.Bounds(t))
	entity.Burst(w, env.Rand, center.X, center.Y, en.Color(), 15, 5, 25)
}
