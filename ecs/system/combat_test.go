package system

import (
	"math"
	"testing"

	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/entity"
	"github.com/milk9111/forestsurvivor/levels"
)

func TestShootSpawnsArrow(t *testing.T) {
	f := catalogFixture(t, 0)
	f.player.Input.Shoot = true

	f.step(1)

	p := f.player
	if p.Pos.X != 50 {
		t.Fatalf("expected player to stay at x=50, got %v", p.Pos.X)
	}
	if p.Player.Arrows != 11 {
		t.Fatalf("expected 11 arrows left, got %d", p.Player.Arrows)
	}
	arrows := f.arrows()
	if len(arrows) != 1 {
		t.Fatalf("expected one arrow, got %d", len(arrows))
	}
	at, _ := ecs.Get(f.w, arrows[0], component.TransformComponent.Kind())
	av, _ := ecs.Get(f.w, arrows[0], component.VelocityComponent.Kind())
	wantY := p.Pos.Y + p.Collider.Height/2
	if at.X != 50+p.Collider.Width || at.Y != wantY {
		t.Fatalf("expected arrow at (68, %v), got (%v, %v)", wantY, at.X, at.Y)
	}
	if av.X != 8 || av.Y != -0.5 {
		t.Fatalf("expected velocity (8, -0.5), got (%v, %v)", av.X, av.Y)
	}
	if p.Player.ShootTimer != f.env.Tuning.Player.ShootAnimFrames {
		t.Fatalf("expected shoot animation to start, got %d", p.Player.ShootTimer)
	}
	if f.drain(EventShoot) != 1 {
		t.Fatalf("expected one shoot event")
	}

	f.step(1)
	if p.Player.Arrows != 11 || len(f.arrows()) != 1 {
		t.Fatalf("held shoot should be locked, arrows=%d live=%d", p.Player.Arrows, len(f.arrows()))
	}
}

func TestShootWithoutAmmo(t *testing.T) {
	f := catalogFixture(t, 0)
	f.player.Player.Arrows = 0
	f.player.Input.Shoot = true

	f.step(30)

	if f.player.Player.Arrows != 0 {
		t.Fatalf("ammo should stay 0, got %d", f.player.Player.Arrows)
	}
	if n := len(f.arrows()); n != 0 {
		t.Fatalf("expected no arrows, got %d", n)
	}
}

func TestAim(t *testing.T) {
	cfg := catalogFixture(t, 0).env.Tuning.Arrow
	tests := []struct {
		name                        string
		right, grounded, moving, up bool
		down                        bool
		wantX, wantY                float64
	}{
		{"forward_right", true, true, false, false, false, 8, -0.5},
		{"forward_left", false, true, false, false, false, -8, -0.5},
		{"up_moving", true, true, true, true, false, 5, -6},
		{"up_still", false, true, false, true, false, 0, -8},
		{"down_grounded_ignored", true, true, true, false, true, 8, -0.5},
		{"down_air_moving", false, false, true, false, true, -5, 6},
		{"down_air_still", true, false, false, false, true, 0, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vx, vy := aim(cfg, tc.right, tc.grounded, tc.moving, tc.up, tc.down)
			if vx != tc.wantX || vy != tc.wantY {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.wantX, tc.wantY, vx, vy)
			}
		})
	}
}

func TestOctopusDiesOnSixthHit(t *testing.T) {
	f := catalogFixture(t, 2)
	e, en := f.addEnemy(t, levels.Octopus, 600, 200)
	if en.HP != 6 || en.MaxHP != 6 {
		t.Fatalf("expected hp 6 at level index 2, got %d/%d", en.HP, en.MaxHP)
	}
	f.w.Events().Drain()

	for i := 1; i <= 6; i++ {
		prev := en.HP
		HitEnemy(f.w, f.env, e)
		if en.HP != prev-1 {
			t.Fatalf("hit %d: expected hp %d, got %d", i, prev-1, en.HP)
		}
		if en.Dead != (i == 6) {
			t.Fatalf("hit %d: dead=%v", i, en.Dead)
		}
	}

	HitEnemy(f.w, f.env, e)
	HitEnemy(f.w, f.env, e)
	if en.HP != 0 || !en.Dead {
		t.Fatalf("dead enemy changed: hp=%d dead=%v", en.HP, en.Dead)
	}
	if n := f.drain(EventEnemyDie); n != 1 {
		t.Fatalf("expected one death, got %d", n)
	}
}

func TestOctopusDiesOnSixthArrow(t *testing.T) {
	f := newFixture(t, flatLevel(), 2)
	_, en := f.addEnemy(t, levels.Octopus, 300, 100)
	arrowSys := NewArrowSystem(f.env)
	f.w.Events().Drain()

	for i := 1; i <= 6; i++ {
		arrow := entity.NewArrow(f.w, 295, 110, 8, 0)
		arrowSys.Update(f.w)
		if ecs.IsAlive(f.w, arrow) {
			t.Fatalf("arrow %d: expected removal on impact", i)
		}
		if en.HP != 6-i {
			t.Fatalf("arrow %d: expected hp %d, got %d", i, 6-i, en.HP)
		}
		if en.Dead != (i == 6) {
			t.Fatalf("arrow %d: dead=%v", i, en.Dead)
		}
	}

	// A dead enemy no longer stops arrows.
	arrow := entity.NewArrow(f.w, 295, 110, 8, 0)
	arrowSys.Update(f.w)
	if !ecs.IsAlive(f.w, arrow) {
		t.Fatalf("arrow should fly through a dead enemy")
	}
	if en.HP != 0 {
		t.Fatalf("dead enemy hp changed to %d", en.HP)
	}
	if n := f.drain(EventEnemyDie); n != 1 {
		t.Fatalf("expected one death, got %d", n)
	}
}

func TestArrowHitsOneEnemy(t *testing.T) {
	f := newFixture(t, flatLevel(), 0)
	_, first := f.addEnemy(t, levels.Mosquito, 300, 100)
	_, second := f.addEnemy(t, levels.Mosquito, 300, 100)
	arrow := entity.NewArrow(f.w, 295, 110, 8, 0)

	NewArrowSystem(f.env).Update(f.w)

	if first.HP != 3 || second.HP != 4 {
		t.Fatalf("expected exactly one hit on the first enemy, got %d and %d", first.HP, second.HP)
	}
	if first.Blink != f.env.Tuning.Enemy.FlashFrames {
		t.Fatalf("expected flash, got %d", first.Blink)
	}
	if ecs.IsAlive(f.w, arrow) {
		t.Fatalf("arrow should be removed after a hit")
	}
}

func TestArrowRemoval(t *testing.T) {
	tests := []struct {
		name         string
		x, y, vx, vy float64
		wantAlive    bool
	}{
		{"flies_on", 100, 100, 8, 0, true},
		{"hits_wall", 100, 220, 0, 8, false},
		{"leaves_left", 4, 100, -8, 0, false},
		{"leaves_right", 1275, 100, 8, 0, false},
		{"leaves_top", 100, 3, 0, -8, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, flatLevel(), 0)
			a := entity.NewArrow(f.w, tc.x, tc.y, tc.vx, tc.vy)
			NewArrowSystem(f.env).Update(f.w)
			if ecs.IsAlive(f.w, a) != tc.wantAlive {
				t.Fatalf("expected alive=%v", tc.wantAlive)
			}
		})
	}
}

func TestArrowGravity(t *testing.T) {
	f := newFixture(t, flatLevel(), 0)
	a := entity.NewArrow(f.w, 100, 100, 8, -0.5)
	NewArrowSystem(f.env).Update(f.w)

	at, _ := ecs.Get(f.w, a, component.TransformComponent.Kind())
	av, _ := ecs.Get(f.w, a, component.VelocityComponent.Kind())
	if at.X != 108 || at.Y != 99.5 {
		t.Fatalf("unexpected position (%v, %v)", at.X, at.Y)
	}
	if math.Abs(av.Y-(-0.48)) > 1e-9 {
		t.Fatalf("expected vy -0.48, got %v", av.Y)
	}
}

func TestTrapCapturesOnlyOne(t *testing.T) {
	f := newFixture(t, flatLevel(), 0)
	_, a := f.addEnemy(t, levels.Octopus, 300, 200)
	_, b := f.addEnemy(t, levels.Octopus, 305, 200)
	trapEnt := entity.NewTrap(f.w, f.env.Tuning, 300, 216)
	trap, _ := ecs.Get(f.w, trapEnt, component.TrapComponent.Kind())

	traps := NewTrapSystem(f.env)
	traps.Update(f.w)
	traps.Update(f.w)

	if !a.Trapped || b.Trapped {
		t.Fatalf("expected only the first enemy trapped, got %v %v", a.Trapped, b.Trapped)
	}
	if a.TrapTimer != f.env.Tuning.Trap.CaptureFrames {
		t.Fatalf("expected trap timer %d, got %d", f.env.Tuning.Trap.CaptureFrames, a.TrapTimer)
	}
	if trap.Open {
		t.Fatalf("trap should be closed")
	}
}

func TestTrappedEnemyExpires(t *testing.T) {
	f := newFixture(t, flatLevel(), 0)
	_, en := f.addEnemy(t, levels.Octopus, 600, 200)
	en.Trapped = true
	en.TrapTimer = 3
	f.w.Events().Drain()

	enemies := NewEnemySystem(f.env)
	for i := 0; i < 2; i++ {
		enemies.Update(f.w)
		if en.Dead {
			t.Fatalf("died early at step %d", i)
		}
	}
	enemies.Update(f.w)
	if !en.Dead || en.HP != 0 {
		t.Fatalf("expected death when timer expires, hp=%d dead=%v", en.HP, en.Dead)
	}
	if f.drain(EventEnemyDie) != 1 {
		t.Fatalf("expected one death event")
	}
}

func TestContactDamage(t *testing.T) {
	t.Run("knockback_away", func(t *testing.T) {
		f := newFixture(t, flatLevel(), 0)
		p := f.player
		f.addEnemy(t, levels.Octopus, p.Pos.X+10, p.Pos.Y)

		NewContactSystem(f.env).Update(f.w)

		if p.Player.Health != 2 || p.Player.Invincible != 60 {
			t.Fatalf("expected health 2 and invincible 60, got %d %d", p.Player.Health, p.Player.Invincible)
		}
		if p.Vel.X != -8 || p.Vel.Y != -6 {
			t.Fatalf("expected knockback (-8, -6), got (%v, %v)", p.Vel.X, p.Vel.Y)
		}
	})

	t.Run("invincible_ignores", func(t *testing.T) {
		f := newFixture(t, flatLevel(), 0)
		p := f.player
		p.Player.Invincible = 5
		f.addEnemy(t, levels.Octopus, p.Pos.X, p.Pos.Y)

		NewContactSystem(f.env).Update(f.w)

		if p.Player.Health != 3 {
			t.Fatalf("expected no damage, got health %d", p.Player.Health)
		}
	})

	t.Run("dead_and_trapped_ignored", func(t *testing.T) {
		f := newFixture(t, flatLevel(), 0)
		p := f.player
		_, dead := f.addEnemy(t, levels.Octopus, p.Pos.X, p.Pos.Y)
		_, trapped := f.addEnemy(t, levels.Octopus, p.Pos.X, p.Pos.Y)
		dead.Dead = true
		trapped.Trapped = true

		NewContactSystem(f.env).Update(f.w)

		if p.Player.Health != 3 {
			t.Fatalf("expected no damage, got health %d", p.Player.Health)
		}
	})

	t.Run("game_over_once", func(t *testing.T) {
		f := newFixture(t, flatLevel(), 0)
		p := f.player
		p.Player.Health = 1
		f.addEnemy(t, levels.Octopus, p.Pos.X, p.Pos.Y)
		f.addEnemy(t, levels.Octopus, p.Pos.X, p.Pos.Y)

		NewContactSystem(f.env).Update(f.w)
		if p.Player.Health != 0 || f.state.Outcome != component.OutcomeGameOver {
			t.Fatalf("expected game over, health=%d outcome=%v", p.Player.Health, f.state.Outcome)
		}

		frame := f.state.Frame
		x := p.Pos.X
		p.Player.Invincible = 0
		f.step(10)
		if f.state.Frame != frame || p.Pos.X != x || p.Player.Health != 0 {
			t.Fatalf("world changed after game over")
		}
	})
}

func TestPickups(t *testing.T) {
	tests := []struct {
		name       string
		tile       byte
		health     int
		arrows     int
		wantHealth int
		wantArrows int
	}{
		{"heart_heals", levels.TileHeart, 3, 0, 4, 0},
		{"heart_capped", levels.TileHeart, 5, 0, 5, 0},
		{"ammo_bonus", levels.TileAmmo, 3, 2, 3, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, flatLevel(), 0)
			p := f.player
			p.Player.Health = tc.health
			p.Player.Arrows = tc.arrows
			e, err := entity.NewPickup(f.w, f.env.Tuning, levels.ItemSpawn{Tile: tc.tile, X: p.Pos.X, Y: p.Pos.Y}, 0)
			if err != nil {
				t.Fatalf("NewPickup failed: %v", err)
			}

			sys := NewPickupSystem(f.env)
			sys.Update(f.w)
			sys.Update(f.w)

			if p.Player.Health != tc.wantHealth || p.Player.Arrows != tc.wantArrows {
				t.Fatalf("expected %d/%d, got %d/%d", tc.wantHealth, tc.wantArrows, p.Player.Health, p.Player.Arrows)
			}
			item, _ := ecs.Get(f.w, e, component.PickupComponent.Kind())
			if !item.Collected {
				t.Fatalf("item should be collected")
			}
			if n := f.drain(EventCollect); n != 1 {
				t.Fatalf("expected one collect, got %d", n)
			}
		})
	}
}

func TestTrapPlacement(t *testing.T) {
	f := newFixture(t, flatLevel(), 0)
	p := f.player
	p.Input.Trap = true

	actions := NewActionSystem(f.env)
	actions.Update(f.w)
	actions.Update(f.w)

	count := 0
	ecs.ForEach2(f.w, component.TrapComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, tr *component.Trap, tt *component.Transform) {
		count++
		if !tr.Open || tt.X != p.Pos.X || tt.Y != p.Pos.Y+p.Collider.Height-4 {
			t.Fatalf("unexpected trap %+v at (%v, %v)", tr, tt.X, tt.Y)
		}
	})
	if count != 1 {
		t.Fatalf("expected one trap while locked, got %d", count)
	}
	if p.Player.TrapLock != f.env.Tuning.Player.TrapLockFrames {
		t.Fatalf("expected trap lock, got %d", p.Player.TrapLock)
	}
}
