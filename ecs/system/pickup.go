package system

import (
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/entity"
)

type PickupSystem struct {
	env *Env
}

func NewPickupSystem(env *Env) *PickupSystem { return &PickupSystem{env: env} }

func (s *PickupSystem) Update(w *ecs.World) {
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
	pb := p.Collider.Bounds(p.Pos)

	ecs.ForEach3(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, item *component.Pickup, t *component.Transform, c *component.Collider) {
		if item.Collected {
			return
		}
		ib := c.Bounds(t)
		if !common.Overlaps(pb, ib) {
			return
		}
		item.Collected = true
		emit(w, EventCollect)
		switch item.Kind {
		case component.PickupHeart:
			p.Player.Health = min(p.Player.Health+cfg.Items.HeartHeal, cfg.Player.MaxHealth, common.MaxHealth)
		case component.PickupAmmo:
			p.Player.Arrows += cfg.Items.AmmoBonus
		}
		center := common.Center(ib)
		entity.Burst(w, s.env.Rand, center.X, center.Y, common.Sparkle, 8, 3, 20)
	})
}
