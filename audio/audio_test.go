package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave Wave
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"triangle", WaveTriangle},
		{"saw", WaveSaw},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(tc.wave, 440, 440, RampLinear, 50*time.Millisecond, rate)
			samples := drain(osc)
			if len(samples) != rate.N(50*time.Millisecond) {
				t.Fatalf("expected %d samples, got %d", rate.N(50*time.Millisecond), len(samples))
			}
			for i, s := range samples {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d out of range or not mono: %v", i, s)
				}
			}
			if osc.Err() != nil {
				t.Fatalf("unexpected error %v", osc.Err())
			}
		})
	}
}

func TestSquareOnlyFullScale(t *testing.T) {
	osc := NewOscillator(WaveSquare, 150, 300, RampLinear, 10*time.Millisecond, SampleRate)
	for i, s := range drain(osc) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d: expected +-1, got %v", i, s[0])
		}
	}
}

func TestRamp(t *testing.T) {
	tests := []struct {
		name    string
		kind    Ramp
		a, b, p float64
		want    float64
	}{
		{"linear_mid", RampLinear, 100, 50, 0.5, 75},
		{"exp_start", RampExponential, 400, 100, 0, 400},
		{"exp_mid", RampExponential, 400, 100, 0.5, 200},
		{"exp_end", RampExponential, 0.1, 0.01, 1, 0.01},
		{"exp_zero_falls_back", RampExponential, 0, 1, 0.5, 0.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ramp(tc.kind, tc.a, tc.b, tc.p); math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestGainEndsStream(t *testing.T) {
	osc := NewOscillator(WaveSquare, 200, 200, RampLinear, time.Second, SampleRate)
	g := NewGain(osc, 0.5, 0.5, RampLinear, 10*time.Millisecond, SampleRate)
	samples := drain(g)
	if len(samples) != SampleRate.N(10*time.Millisecond) {
		t.Fatalf("expected gain to cut at 10ms, got %d samples", len(samples))
	}
	for _, s := range samples {
		if math.Abs(s[0]) != 0.5 {
			t.Fatalf("expected amplitude 0.5, got %v", s[0])
		}
	}
}

func TestEffects(t *testing.T) {
	want := map[Effect]time.Duration{
		EffectJump:     100 * time.Millisecond,
		EffectShoot:    100 * time.Millisecond,
		EffectHit:      200 * time.Millisecond,
		EffectCollect:  100 * time.Millisecond,
		EffectEnemyDie: 150 * time.Millisecond,
	}
	for _, e := range Effects() {
		t.Run(string(e), func(t *testing.T) {
			s := NewEffect(e, SampleRate, 1)
			if s == nil {
				t.Fatalf("expected streamer")
			}
			samples := drain(s)
			if len(samples) != SampleRate.N(want[e]) {
				t.Fatalf("expected %d samples, got %d", SampleRate.N(want[e]), len(samples))
			}
			peak := 0.0
			for _, smp := range samples {
				peak = math.Max(peak, math.Abs(smp[0]))
			}
			if peak == 0 || peak > 0.2+1e-9 {
				t.Fatalf("unexpected peak %v", peak)
			}
		})
	}
	if NewEffect("roar", SampleRate, 1) != nil {
		t.Fatalf("unknown effect should be nil")
	}
}

func TestMutedEffectIsSilent(t *testing.T) {
	for _, s := range drain(NewEffect(EffectHit, SampleRate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("expected silence, got %v", s)
		}
	}
}

func TestParseEffect(t *testing.T) {
	for _, e := range Effects() {
		got, ok := ParseEffect(string(e))
		if !ok || got != e {
			t.Fatalf("ParseEffect(%q) = %q, %v", e, got, ok)
		}
	}
	if _, ok := ParseEffect("level_complete"); ok {
		t.Fatalf("expected unknown name to fail")
	}
}

func TestRenderAndCache(t *testing.T) {
	c := NewCache(SampleRate, 1)
	pcm := c.Effect(EffectJump)
	if len(pcm) != SampleRate.N(100*time.Millisecond)*4 {
		t.Fatalf("expected 4 bytes per stereo frame, got %d bytes", len(pcm))
	}
	again := c.Effect(EffectJump)
	if &again[0] != &pcm[0] {
		t.Fatalf("expected cached buffer")
	}
	if c.Effect("roar") != nil {
		t.Fatalf("unknown effect should render nothing")
	}
	if n := len(c.Note(110)); n != SampleRate.N(bassNoteLength)*4 {
		t.Fatalf("unexpected note length %d", n)
	}
}

func TestSequencerLoops(t *testing.T) {
	seq := NewSequencer(Bassline, 15)
	var played []float64
	for frame := 0; frame < 15*len(Bassline)+1; frame++ {
		if note, ok := seq.Tick(); ok {
			if frame%15 != 0 {
				t.Fatalf("note on frame %d", frame)
			}
			played = append(played, note)
		}
	}
	if len(played) != len(Bassline)+1 {
		t.Fatalf("expected %d notes, got %d", len(Bassline)+1, len(played))
	}
	for i, n := range Bassline {
		if played[i] != n {
			t.Fatalf("note %d: expected %v, got %v", i, n, played[i])
		}
	}
	if played[len(Bassline)] != Bassline[0] {
		t.Fatalf("expected loop back to the first note")
	}

	seq.Reset()
	if note, ok := seq.Tick(); !ok || note != Bassline[0] {
		t.Fatalf("expected first note after reset")
	}
}
