package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// SampleRate matches the ebiten audio context.
const SampleRate = beep.SampleRate(44100)

const (
	bassNoteLength = 200 * time.Millisecond
	bassGain       = 0.05
	bassGainEnd    = 0.001
)

// NewEffect builds the streamer for one effect at the given master volume.
// Unknown effects return nil.
func NewEffect(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case EffectJump:
		d := 100 * time.Millisecond
		s = NewGain(NewOscillator(WaveSquare, 150, 300, RampLinear, d, rate), 0.1, 0.01, RampExponential, d, rate)
	case EffectShoot:
		d := 100 * time.Millisecond
		s = NewGain(NewOscillator(WaveTriangle, 400, 100, RampExponential, d, rate), 0.1, 0.01, RampExponential, d, rate)
	case EffectHit:
		d := 200 * time.Millisecond
		s = NewGain(NewOscillator(WaveSaw, 100, 50, RampLinear, d, rate), 0.2, 0.01, RampLinear, d, rate)
	case EffectCollect:
		// Two-step chirp under one fade.
		half := 50 * time.Millisecond
		chirp := beep.Seq(
			NewOscillator(WaveSine, 600, 600, RampLinear, half, rate),
			NewOscillator(WaveSine, 1200, 1200, RampLinear, half, rate),
		)
		s = NewGain(chirp, 0.1, 0.01, RampLinear, 2*half, rate)
	case EffectEnemyDie:
		d := 150 * time.Millisecond
		s = NewGain(NewOscillator(WaveSquare, 200, 50, RampExponential, d, rate), 0.1, 0.01, RampLinear, d, rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// NewBassNote is one plucked triangle note of the background loop.
func NewBassNote(freq float64, rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(WaveTriangle, freq, freq, RampLinear, bassNoteLength, rate)
	return newVolume(NewGain(osc, bassGain, bassGainEnd, RampExponential, bassNoteLength, rate), volume)
}
