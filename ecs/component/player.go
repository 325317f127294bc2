package component

import "github.com/jakecoffman/cp"

type PlayerAnim int

const (
	AnimIdle PlayerAnim = iota
	AnimRun
	AnimJump
	AnimShoot
)

func (a PlayerAnim) String() string {
	switch a {
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimShoot:
		return "shoot"
	}
	return "idle"
}

// Player holds everything about the archer that is not position or size.
// Timers count frames and are decremented by TimerSystem.
type Player struct {
	Health      int
	Arrows      int
	Grounded    bool
	FacingRight bool
	Anim        PlayerAnim

	ShootTimer int
	Invincible int

	// Checkpoint is the last stable grounded position.
	Checkpoint     cp.Vector
	GroundedFrames int

	JumpLock  bool
	ShootLock int
	TrapLock  int

	// Knockback keeps horizontal knockback velocity alive against input.
	Knockback int
}

var PlayerComponent = NewComponent[Player]()
