package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/levels"
)

func drawEnemies(p *pen, w *ecs.World, frame int) {
	ecs.ForEach4(w, component.EnemyComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, en *component.Enemy, t *component.Transform, v *component.Velocity, c *component.Collider) {
		if en.Dead {
			return
		}
		ep := p
		body := color.Color(en.Color())
		if en.Blink > 0 {
			ep = p.with(p.geo, 0.5)
			body = common.White
		}

		f := float64(frame)
		x, y, wd, ht := t.X, t.Y, c.Width, c.Height
		switch en.Archetype {
		case levels.Octopus:
			ep.rect(x, y, wd, ht-4, body)
			for i := 0; i < 3; i++ {
				fi := float64(i)
				ep.rect(x+fi*(wd/3), y+ht-6+math.Sin(f*0.2+fi)*4, wd/3-2, 8, body)
			}
			eyeX := x + 4
			if v.X > 0 {
				eyeX = x + wd - 8
			}
			ep.rect(eyeX, y+6, 4, 4, common.White)
		case levels.Spider:
			ep.with(ep.geo, ep.alpha*0.3).line(x+wd/2, 0, x+wd/2, y, 1, common.White)
			ep.ellipse(x+wd/2, y+ht/2, wd/2, ht/2, 0, body)
			for i := 0; i < 4; i++ {
				fi := float64(i)
				leg := math.Sin(f*0.2+fi) * 2
				ep.line(x, y+5+fi*4, x-8+leg, y+fi*4, 2, common.SpiderColor)
				ep.line(x+wd, y+5+fi*4, x+wd+8-leg, y+fi*4, 2, common.SpiderColor)
			}
		case levels.Mosquito:
			wing := math.Sin(f*0.8) * 15
			wings := ep.with(ep.geo, ep.alpha*0.6)
			wings.ellipse(x+wd/4, y+ht/4, wd/2, wing, 0.5, common.White)
			wings.ellipse(x+wd*0.75, y+ht/4, wd/2, wing, -0.5, common.White)
			ep.rect(x+wd/4, y+ht/4, wd/2, ht/2, body)
		}

		if en.HP < en.MaxHP && en.MaxHP > 0 {
			ep.rect(x, y-6, wd, 3, common.HPBack)
			ep.rect(x, y-6, wd*float64(en.HP)/float64(en.MaxHP), 3, common.HPFront)
		}
	})
}

// drawPlayer draws the archer in a frame centered on its collider, mirrored
// when facing left.
func drawPlayer(p *pen, w *ecs.World, world ebiten.GeoM, frame int) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	pl, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	var geo ebiten.GeoM
	if !pl.FacingRight {
		geo.Scale(-1, 1)
	}
	geo.Translate(t.X+c.Width/2, t.Y+c.Height/2)
	geo.Concat(world)

	alpha := float32(1)
	if pl.Invincible > 0 && frame%4 < 2 {
		alpha = 0.5
	}
	pp := p.with(geo, alpha)

	f := float64(frame)
	bounce := 0.0
	if pl.Anim == component.AnimIdle {
		bounce = math.Sin(f*0.2) * 2
	}
	legs := 0.0
	if pl.Anim == component.AnimRun {
		legs = math.Sin(f*0.3) * 8
	}

	pp.rect(-8, -10+bounce/2, 16, 16, common.PlayerClothes)
	pp.rect(-6, -22+bounce, 12, 12, common.PlayerSkin)
	pp.rect(2, -18+bounce, 2, 2, common.Eye)

	if pl.Anim == component.AnimJump {
		pp.rect(-6, 6, 5, 6, common.Boots)
		pp.rect(1, 4, 5, 6, common.Boots)
	} else {
		pp.rect(-7+legs, 6, 5, 8, common.Boots)
		pp.rect(2-legs, 6, 5, 8, common.Boots)
	}

	var aim ebiten.GeoM
	aim.Rotate(bowAngle(w, e, pl))
	aim.Concat(geo)
	bow := p.with(aim, alpha)
	if pl.Anim == component.AnimShoot {
		bow.arc(10, 0, 15, -math.Pi/2.5, math.Pi/2.5, 2, common.Bow)
	} else {
		bow.arc(0, 5, 12, -math.Pi/2, math.Pi/2, 2, common.Bow)
	}
}

func bowAngle(w *ecs.World, e ecs.Entity, pl *component.Player) float64 {
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return 0
	}
	rot := 0.0
	if in.Up {
		rot = -math.Pi / 4
	}
	if in.Down && !pl.Grounded {
		rot = math.Pi / 4
	}
	return rot
}
