package common

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Forest palette shared by particles and drawing.
var (
	SkyTop        = color.RGBA{0x1a, 0x2a, 0x6c, 0xff}
	SkyBottom     = color.RGBA{0xb2, 0x1f, 0x1f, 0xff}
	ForestDark    = color.RGBA{0x0b, 0x1d, 0x12, 0xff}
	Ground        = color.RGBA{0x3d, 0x2b, 0x1f, 0xff}
	Grass         = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	PlayerClothes = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	PlayerSkin    = color.RGBA{0xff, 0xdb, 0xac, 0xff}
	Bow           = color.RGBA{0x5d, 0x40, 0x37, 0xff}
	OctopusColor  = color.RGBA{0xff, 0x40, 0x81, 0xff}
	SpiderColor   = color.RGBA{0x7e, 0x57, 0xc2, 0xff}
	MosquitoColor = color.RGBA{0xd4, 0xe1, 0x57, 0xff}
	TrapMetal     = color.RGBA{0x90, 0xa4, 0xae, 0xff}
	ArrowGold     = colornames.Gold
	FlagRed       = color.RGBA{0xf4, 0x43, 0x36, 0xff}
	FlagPole      = color.RGBA{0x79, 0x55, 0x48, 0xff}
	Heart         = colornames.Red
	AmmoBox       = color.RGBA{0x79, 0x55, 0x48, 0xff}
	Sparkle       = colornames.Yellow
	Dust          = colornames.White
	White         = colornames.White
	Eye           = colornames.Black
	Boots         = color.RGBA{0x33, 0x33, 0x33, 0xff}
	HPBack        = colornames.Red
	HPFront       = colornames.Green
	DebugOutline  = color.RGBA{0xc8, 0x00, 0x00, 0xc8}
	// RunDust is white at 30% opacity, premultiplied.
	RunDust = color.RGBA{0x4d, 0x4d, 0x4d, 0x4d}
)
