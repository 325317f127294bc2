package system

import "github.com/milk9111/forestsurvivor/ecs"

// Gameplay returns the frame's systems in update order.
func Gameplay(env *Env) []ecs.System {
	return []ecs.System{
		NewTimerSystem(),
		NewPlayerControllerSystem(env),
		NewRespawnSystem(env),
		NewTileCollisionSystem(),
		NewPickupSystem(env),
		NewArrowSystem(env),
		NewActionSystem(env),
		NewEnemySystem(env),
		NewContactSystem(env),
		NewTrapSystem(env),
		NewParticleSystem(),
		NewCameraSystem(),
	}
}
