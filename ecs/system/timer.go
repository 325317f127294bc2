package system

import "github.com/milk9111/forestsurvivor/ecs"

// TimerSystem advances the frame counter and counts the player's windows
// down. It runs first so every later system sees the same frame number.
type TimerSystem struct{}

func NewTimerSystem() *TimerSystem { return &TimerSystem{} }

func (s *TimerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	st, ok := running(w)
	if !ok {
		return
	}
	st.Frame++

	p, ok := findPlayer(w)
	if !ok {
		return
	}
	if p.Player.Invincible > 0 {
		p.Player.Invincible--
	}
	if p.Player.ShootLock > 0 {
		p.Player.ShootLock--
	}
	if p.Player.TrapLock > 0 {
		p.Player.TrapLock--
	}
}
