package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveSaw
)

// Ramp is how a parameter moves from its start to its end value.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExponential
)

// ramp interpolates from a to b at progress p in [0, 1]. Exponential ramps
// need both ends strictly positive and fall back to linear otherwise.
func ramp(kind Ramp, a, b, p float64) float64 {
	if kind == RampExponential && a > 0 && b > 0 {
		return a * math.Pow(b/a, p)
	}
	return a + (b-a)*p
}

// oscillator sweeps its frequency from 'from' to 'to' over its duration.
type oscillator struct {
	wave     Wave
	from, to float64
	sweep    Ramp
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewOscillator creates a tone that sweeps from one frequency to another.
// Pass the same value twice for a steady pitch.
func NewOscillator(wave Wave, from, to float64, sweep Ramp, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		wave:     wave,
		from:     from,
		to:       to,
		sweep:    sweep,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := ramp(o.sweep, o.from, o.to, float64(o.position)/float64(o.duration))
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// gain shapes a stream from one level to another over a fixed duration and
// ends the stream when the duration is over.
type gain struct {
	streamer   beep.Streamer
	start, end float64
	shape      Ramp
	position   int
	total      int
}

func NewGain(s beep.Streamer, start, end float64, shape Ramp, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &gain{streamer: s, start: start, end: end, shape: shape, total: rate.N(duration)}
}

func (g *gain) Stream(samples [][2]float64) (n int, ok bool) {
	if g.position >= g.total {
		return 0, false
	}
	if left := g.total - g.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = g.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		v := ramp(g.shape, g.start, g.end, float64(g.position)/float64(g.total))
		samples[i][0] *= v
		samples[i][1] *= v
		g.position++
	}
	return n, ok
}

func (g *gain) Err() error { return g.streamer.Err() }

// newVolume wraps s in a beep volume effect. math.Log2(0) is -Inf, so zero
// volume becomes a silent stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
