package common

const (
	// Internal render resolution. The window scales this up.
	BaseWidth  = 640
	BaseHeight = 360

	TileSize = 32

	TPS = 60

	MaxHealth = 5
)
