package audio

import (
	"strconv"
	"time"
)

// MusicStep is the time between bassline notes.
const MusicStep = 250 * time.Millisecond

// Bassline is the background loop in Hz.
var Bassline = []float64{110, 110, 130, 110, 146, 130, 110, 98}

// Sequencer steps through a looping note list on a frame clock. The first
// Tick plays the first note.
type Sequencer struct {
	notes []float64
	step  int
	frame int
	index int
}

// NewSequencer plays one note every stepFrames frames.
func NewSequencer(notes []float64, stepFrames int) *Sequencer {
	if stepFrames <= 0 {
		stepFrames = 1
	}
	return &Sequencer{notes: append([]float64(nil), notes...), step: stepFrames}
}

// Tick advances one frame and returns the note to start, if any.
func (s *Sequencer) Tick() (float64, bool) {
	if s == nil || len(s.notes) == 0 {
		return 0, false
	}
	play := s.frame%s.step == 0
	s.frame++
	if !play {
		return 0, false
	}
	note := s.notes[s.index]
	s.index = (s.index + 1) % len(s.notes)
	return note, true
}

// Reset rewinds to the first note.
func (s *Sequencer) Reset() {
	s.frame = 0
	s.index = 0
}

func formatFreq(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
