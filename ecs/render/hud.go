package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/forestsurvivor/common"
	"github.com/milk9111/forestsurvivor/sim"
)

const (
	hudMargin    = 8
	heartRadius  = 5
	heartSpacing = 14
)

var (
	hudPanel     = color.RGBA{0x00, 0x00, 0x00, 0x80}
	emptyHeart   = color.RGBA{0x40, 0x40, 0x40, 0xff}
	buttonIdle   = color.RGBA{0x20, 0x20, 0x20, 0x60}
	buttonActive = color.RGBA{0x60, 0x60, 0x60, 0x90}
	buttonEdge   = color.RGBA{0xb0, 0xb0, 0xb0, 0xb0}
)

// DrawHUD draws level number, hearts and arrow count along the top edge.
func DrawHUD(screen *ebiten.Image, h sim.HUD) {
	if screen == nil {
		return
	}
	vector.FillRect(screen, 0, 0, common.BaseWidth, 24, hudPanel, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LVL %d", h.Level), hudMargin, 4)

	p := newPen(screen)
	for i := 0; i < common.MaxHealth; i++ {
		clr := color.Color(emptyHeart)
		if i < h.Health {
			clr = common.Heart
		}
		p.circle(float64(80+i*heartSpacing), 12, heartRadius, clr)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ARROWS %d", h.Arrows), 170, 4)
}

// Button is an on-screen control in screen pixels.
type Button struct {
	Label   string
	Box     cp.BB
	Pressed bool
}

// DrawButtons draws the touch overlay.
func DrawButtons(screen *ebiten.Image, buttons []Button) {
	if screen == nil {
		return
	}
	for _, b := range buttons {
		x, y := float32(b.Box.L), float32(b.Box.B)
		w, h := float32(b.Box.R-b.Box.L), float32(b.Box.T-b.Box.B)
		fill := buttonIdle
		if b.Pressed {
			fill = buttonActive
		}
		vector.FillRect(screen, x, y, w, h, fill, false)
		vector.StrokeRect(screen, x, y, w, h, 1, buttonEdge, false)
		ebitenutil.DebugPrintAt(screen, b.Label, int(x+w/2)-3*len(b.Label), int(y+h/2)-8)
	}
}
