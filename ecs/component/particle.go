package component

import "image/color"

type Particle struct {
	Color   color.RGBA
	Life    int
	MaxLife int
}

var ParticleComponent = NewComponent[Particle]()

// Fade is the remaining lifetime fraction in [0, 1].
func (p *Particle) Fade() float64 {
	if p == nil || p.MaxLife <= 0 {
		return 0
	}
	f := float64(p.Life) / float64(p.MaxLife)
	if f < 0 {
		return 0
	}
	return f
}
