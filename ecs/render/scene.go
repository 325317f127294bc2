// Package render draws the forest procedurally from the world's state. It
// never mutates the world.
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/levels"
)

const (
	parallaxFactor = 0.4
	treeCount      = 10
	treeSpacing    = 120
	treeWidth      = 40
	treeTop        = 80
	grassHeight    = 6
	particleSize   = 2
)

type Renderer struct {
	// Debug outlines colliders.
	Debug bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders one frame of the level held by w. Nothing is drawn if the
// world has no level state.
func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	if r == nil || screen == nil || w == nil {
		return
	}
	stEnt, ok := ecs.First(w, component.LevelStateComponent.Kind())
	if !ok {
		return
	}
	st, _ := ecs.Get(w, stEnt, component.LevelStateComponent.Kind())
	camX := 0.0
	if cam, ok := ecs.Get(w, stEnt, component.CameraComponent.Kind()); ok {
		camX = cam.X
	}

	p := newPen(screen)
	drawBackground(p, camX)

	var world ebiten.GeoM
	world.Translate(-camX, 0)
	wp := p.with(world, 1)

	drawTiles(wp, st.Level, st.Frame)
	drawPickups(wp, w, st.Frame)
	drawTraps(wp, w)
	drawArrows(p, w, world)
	drawEnemies(wp, w, st.Frame)
	drawPlayer(p, w, world, st.Frame)
	drawParticles(wp, w)

	if r.Debug {
		drawColliders(screen, w, camX)
	}
}

func drawBackground(p *pen, camX float64) {
	p.gradient(0, 0, common.BaseWidth, common.BaseHeight, common.SkyTop, common.SkyBottom)

	var geo ebiten.GeoM
	geo.Translate(-camX*parallaxFactor, 0)
	trees := p.with(geo, 1)
	for i := 0; i < treeCount; i++ {
		trees.rect(float64(i*treeSpacing), treeTop, treeWidth, common.BaseHeight, common.ForestDark)
	}
}

func drawTiles(p *pen, lvl *levels.Level, frame int) {
	if lvl == nil {
		return
	}
	const ts = common.TileSize
	wave := math.Sin(float64(frame)*0.1) * 5
	for row := 0; row < lvl.Rows(); row++ {
		for col := 0; col < lvl.Cols(); col++ {
			tx, ty := float64(col*ts), float64(row*ts)
			switch lvl.Tile(col, row) {
			case levels.TileWall:
				p.rect(tx, ty, ts, ts, common.Ground)
				p.rect(tx, ty, ts, grassHeight, common.Grass)
			case levels.TileGoal:
				p.rect(tx+14, ty, 4, ts, common.FlagPole)
				p.polygon(common.FlagRed, tx+18, ty, tx+38+wave, ty+10, tx+18, ty+20)
			}
		}
	}
}

func drawPickups(p *pen, w *ecs.World, frame int) {
	ecs.ForEach2(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, it *component.Pickup, t *component.Transform) {
		if it.Collected {
			return
		}
		dy := math.Sin(float64(frame)*0.1+it.FloatOffset) * 3
		switch it.Kind {
		case component.PickupHeart:
			p.circle(t.X+8, t.Y+8+dy, 6, common.Heart)
		default:
			p.rect(t.X+4, t.Y+4+dy, 8, 10, common.AmmoBox)
			p.rect(t.X+6, t.Y+6+dy, 4, 6, common.ArrowGold)
		}
	})
}

func drawTraps(p *pen, w *ecs.World) {
	ecs.ForEach3(w, component.TrapComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, tr *component.Trap, t *component.Transform, c *component.Collider) {
		if tr.Open {
			p.rect(t.X, t.Y+4, c.Width, 4, common.TrapMetal)
			p.rect(t.X, t.Y, 4, 8, common.TrapMetal)
			p.rect(t.X+c.Width-4, t.Y, 4, 8, common.TrapMetal)
			return
		}
		p.rect(t.X+c.Width/2-6, t.Y-4, 12, 10, common.TrapMetal)
	})
}

// drawArrows rotates each shaft to its velocity.
func drawArrows(p *pen, w *ecs.World, world ebiten.GeoM) {
	ecs.ForEach3(w, component.ArrowComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(_ ecs.Entity, _ *component.Arrow, t *component.Transform, v *component.Velocity) {
		var geo ebiten.GeoM
		geo.Rotate(math.Atan2(v.Y, v.X))
		geo.Translate(t.X, t.Y)
		geo.Concat(world)
		p.with(geo, 1).rect(-4, -1, 8, 2, common.ArrowGold)
	})
}

func drawParticles(p *pen, w *ecs.World) {
	ecs.ForEach2(w, component.ParticleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pt *component.Particle, t *component.Transform) {
		p.with(p.geo, float32(pt.Fade())).rect(t.X, t.Y, particleSize, particleSize, pt.Color)
	})
}

func drawColliders(screen *ebiten.Image, w *ecs.World, camX float64) {
	ecs.ForEach2(w, component.ColliderComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collider, t *component.Transform) {
		vector.StrokeRect(screen, float32(t.X-camX), float32(t.Y), float32(c.Width), float32(c.Height), 1, common.DebugOutline, false)
	})
}
