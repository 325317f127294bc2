package system

import (
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs"
	"github.com/milk9111/forestsurvivor/ecs/component"
)

// CameraSystem centers the player horizontally, clamped to the level.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem { return &CameraSystem{} }

func (s *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	st, ok := running(w)
	if !ok {
		return
	}
	p, ok := findPlayer(w)
	if !ok {
		return
	}
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
	cam.X = common.Clamp(p.Pos.X-common.BaseWidth/2, 0, st.Level.PixelWidth()-common.BaseWidth)
}
