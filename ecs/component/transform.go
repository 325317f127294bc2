package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/common"
)

// Transform is the top-left corner of an entity in level pixels.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is in pixels per frame.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()

// Collider is an axis-aligned box anchored at the transform.
type Collider struct {
	Width  float64
	Height float64
}

var ColliderComponent = NewComponent[Collider]()

// Bounds returns the collider box placed at t.
func (c *Collider) Bounds(t *Transform) cp.BB {
	return common.Box(t.X, t.Y, c.Width, c.Height)
}
