package component

import "github.com/milk9111/forestsurvivor/levels"

type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeGameOver
	OutcomeLevelComplete
)

func (o Outcome) String() string {
	switch o {
	case OutcomeGameOver:
		return "game_over"
	case OutcomeLevelComplete:
		return "level_complete"
	}
	return "none"
}

// LevelState is the singleton describing the running attempt.
type LevelState struct {
	Index   int
	Level   *levels.Level
	Frame   int
	Outcome Outcome
}

var LevelStateComponent = NewComponent[LevelState]()

// Finish records the first outcome of the attempt and ignores later ones.
// It reports whether this call set the outcome.
func (s *LevelState) Finish(o Outcome) bool {
	if s == nil || s.Outcome != OutcomeNone || o == OutcomeNone {
		return false
	}
	s.Outcome = o
	return true
}

// Camera stores the horizontal scroll offset.
type Camera struct {
	X float64
}

var CameraComponent = NewComponent[Camera]()
