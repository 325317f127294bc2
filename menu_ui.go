package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/forestsurvivor/common"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	menuBackground    = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	gameOverBackdrop  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xcc}
	victoryBackdrop   = color.NRGBA{R: 0x14, G: 0x53, B: 0x2d, A: 0xcc}
	greenButton       = color.NRGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}
	redButton         = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	greyButton        = color.NRGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
	lockedButton      = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0x80}
	yellowButton      = color.NRGBA{R: 0xea, G: 0xb3, B: 0x08, A: 0xff}
	lockedTextColor   = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	controlsHintColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80}
)

func uiFace() *ebtext.Face {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	return &face
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

func label(text string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, uiFace(), clr),
		widget.TextOpts.WidgetOpts(centered()),
	)
}

func button(text string, bg, fg color.Color, onClick func()) *widget.Button {
	img := imageui.NewNineSliceColor(bg)
	return widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     img,
			Pressed:  img,
			Disabled: imageui.NewNineSliceColor(lockedButton),
		}),
		widget.ButtonOpts.Text(text, uiFace(), &widget.ButtonTextColor{Idle: fg, Disabled: lockedTextColor}),
		widget.ButtonOpts.WidgetOpts(centered(), widget.WidgetOpts.MinSize(160, 32)),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// screenUI fills the viewport with bg and stacks children in a centered
// column.
func screenUI(bg color.Color, children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(common.BaseWidth, common.BaseHeight)),
	)
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

func NewMenuUI(g *Game) *ebitenui.UI {
	return screenUI(menuBackground,
		label("FOREST SURVIVOR", colornames.Limegreen),
		button("START GAME", greenButton, colornames.White, g.showSelect),
		label("Arrows/WASD move, Z/Space jump, X/J shoot, C/K trap", controlsHintColor),
	)
}

// NewSelectUI lays out one button per level; locked levels are disabled.
func NewSelectUI(g *Game) *ebitenui.UI {
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(5),
			widget.GridLayoutOpts.Spacing(12, 12),
		)),
		widget.ContainerOpts.WidgetOpts(centered()),
	)
	for idx := 0; idx < g.catalog.Len(); idx++ {
		lvl, _ := g.catalog.Lookup(idx)
		btn := button(fmt.Sprintf("%d", lvl.ID), greenButton, colornames.White, func() {
			g.startLevel(idx)
		})
		btn.GetWidget().MinWidth = 40
		btn.GetWidget().MinHeight = 40
		btn.GetWidget().Disabled = !g.tracker.IsUnlocked(idx)
		grid.AddChild(btn)
	}

	return screenUI(menuBackground,
		label("SELECT LEVEL", colornames.White),
		grid,
		button("BACK TO MENU", greyButton, colornames.White, g.showMenu),
	)
}

func NewGameOverUI(g *Game) *ebitenui.UI {
	return screenUI(gameOverBackdrop,
		label("GAME OVER", colornames.Red),
		button("TRY AGAIN", redButton, colornames.White, func() { g.startLevel(g.current) }),
		button("LEVEL SELECT", greyButton, colornames.White, g.showSelect),
	)
}

func NewVictoryUI(g *Game) *ebitenui.UI {
	return screenUI(victoryBackdrop,
		label("YOU SURVIVED!", colornames.Gold),
		label("All levels cleared.", colornames.White),
		button("MAIN MENU", yellowButton, colornames.Black, g.showMenu),
	)
}
