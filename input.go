package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/ecs/component"
	"github.com/milk9111/forestsurvivor/ecs/render"
)

// control is one logical key of the player's input.
type control int

const (
	ctrlLeft control = iota
	ctrlRight
	ctrlUp
	ctrlDown
	ctrlJump
	ctrlShoot
	ctrlTrap
)

// Up and W double as jump.
var keyBindings = map[ebiten.Key][]control{
	ebiten.KeyArrowLeft:  {ctrlLeft},
	ebiten.KeyA:          {ctrlLeft},
	ebiten.KeyArrowRight: {ctrlRight},
	ebiten.KeyD:          {ctrlRight},
	ebiten.KeyArrowUp:    {ctrlUp, ctrlJump},
	ebiten.KeyW:          {ctrlUp, ctrlJump},
	ebiten.KeyArrowDown:  {ctrlDown},
	ebiten.KeyS:          {ctrlDown},
	ebiten.KeyZ:          {ctrlJump},
	ebiten.KeySpace:      {ctrlJump},
	ebiten.KeyX:          {ctrlShoot},
	ebiten.KeyC:          {ctrlTrap},
	ebiten.KeyJ:          {ctrlShoot},
	ebiten.KeyK:          {ctrlTrap},
}

var padBindings = map[ebiten.StandardGamepadButton]control{
	ebiten.StandardGamepadButtonLeftLeft:    ctrlLeft,
	ebiten.StandardGamepadButtonLeftRight:   ctrlRight,
	ebiten.StandardGamepadButtonLeftTop:     ctrlUp,
	ebiten.StandardGamepadButtonLeftBottom:  ctrlDown,
	ebiten.StandardGamepadButtonRightBottom: ctrlJump,
	ebiten.StandardGamepadButtonRightLeft:   ctrlShoot,
	ebiten.StandardGamepadButtonRightRight:  ctrlTrap,
}

func (c control) apply(in *component.Input) {
	switch c {
	case ctrlLeft:
		in.Left = true
	case ctrlRight:
		in.Right = true
	case ctrlUp:
		in.Up = true
	case ctrlDown:
		in.Down = true
	case ctrlJump:
		in.Jump = true
	case ctrlShoot:
		in.Shoot = true
	case ctrlTrap:
		in.Trap = true
	}
}

type touchButton struct {
	render.Button
	control control
}

// The on-screen up arrow aims only; jumping has its own button.
func defaultTouchButtons() []touchButton {
	const y = common.BaseHeight - 68
	return []touchButton{
		{render.Button{Label: "<", Box: common.Box(12, y, 48, 48)}, ctrlLeft},
		{render.Button{Label: "^", Box: common.Box(64, y, 48, 22)}, ctrlUp},
		{render.Button{Label: "v", Box: common.Box(64, y+26, 48, 22)}, ctrlDown},
		{render.Button{Label: ">", Box: common.Box(116, y, 48, 48)}, ctrlRight},
		{render.Button{Label: "JUMP", Box: common.Box(common.BaseWidth-172, y+4, 48, 44)}, ctrlJump},
		{render.Button{Label: "SHOOT", Box: common.Box(common.BaseWidth-116, y+4, 48, 44)}, ctrlShoot},
		{render.Button{Label: "TRAP", Box: common.Box(common.BaseWidth-60, y+4, 48, 44)}, ctrlTrap},
	}
}

// Input polls keyboard, gamepad and pointers once per frame.
type Input struct {
	buttons []touchButton
	state   component.Input

	// interacted is set on the frame of any fresh key, click or touch.
	interacted bool
	// touched turns the overlay on. Pointers only drive buttons once it is
	// visible, so the first press just reveals it.
	touched bool
}

func NewInput() *Input {
	return &Input{buttons: defaultTouchButtons()}
}

func (i *Input) Update() {
	keys := inpututil.AppendPressedKeys(nil)
	points := pointers()

	var pads []ebiten.StandardGamepadButton
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for b := range padBindings {
			if ebiten.IsStandardGamepadButtonPressed(id, b) {
				pads = append(pads, b)
			}
		}
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if x < -0.3 {
			pads = append(pads, ebiten.StandardGamepadButtonLeftLeft)
		} else if x > 0.3 {
			pads = append(pads, ebiten.StandardGamepadButtonLeftRight)
		}
	}

	i.state = i.resolve(keys, pads, points)

	pointerDown := len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	if pointerDown {
		i.touched = true
	}
	i.interacted = pointerDown || len(inpututil.AppendJustPressedKeys(nil)) > 0
}

// resolve maps held keys, gamepad buttons and pointer positions to a
// logical input and marks the touch buttons under a pointer as pressed.
// Pointers are ignored while the overlay is hidden.
func (i *Input) resolve(keys []ebiten.Key, pads []ebiten.StandardGamepadButton, points []cp.Vector) component.Input {
	var in component.Input
	for _, k := range keys {
		for _, c := range keyBindings[k] {
			c.apply(&in)
		}
	}
	for _, b := range pads {
		if c, ok := padBindings[b]; ok {
			c.apply(&in)
		}
	}
	for j := range i.buttons {
		b := &i.buttons[j]
		b.Pressed = false
		if !i.touched {
			continue
		}
		for _, pt := range points {
			if common.ContainsPoint(b.Box, pt.X, pt.Y) {
				b.Pressed = true
				b.control.apply(&in)
				break
			}
		}
	}
	return in
}

func (i *Input) State() component.Input { return i.state }

func (i *Input) Interacted() bool { return i.interacted }

// Buttons returns the overlay to draw, or nil until the first touch or
// click.
func (i *Input) Buttons() []render.Button {
	if !i.touched {
		return nil
	}
	out := make([]render.Button, len(i.buttons))
	for j, b := range i.buttons {
		out[j] = b.Button
	}
	return out
}

func pointers() []cp.Vector {
	var pts []cp.Vector
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, cp.Vector{X: float64(x), Y: float64(y)})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, cp.Vector{X: float64(x), Y: float64(y)})
	}
	return pts
}
