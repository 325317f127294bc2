package levels

import (
	"math"

	"github.com/milk9111/forestsurvivor/common"
)

// Tile legend characters.
const (
	TileEmpty = ' '
	TileWall  = '#'
	TileGoal  = 'B'
	TileHeart = 'H'
	TileAmmo  = 'A'
)

// Archetype names one of the three enemy behavior classes.
type Archetype string

const (
	Octopus  Archetype = "OCTOPUS"
	Spider   Archetype = "SPIDER"
	Mosquito Archetype = "MOSQUITO"
)

func (a Archetype) Valid() bool {
	switch a {
	case Octopus, Spider, Mosquito:
		return true
	}
	return false
}

type EnemySpawn struct {
	Type Archetype `yaml:"type"`
	X    float64   `yaml:"x"`
	Y    float64   `yaml:"y"`
}

// Level is immutable static data. Rows all share the same width.
type Level struct {
	ID      int          `yaml:"id"`
	Arrows  int          `yaml:"arrows"`
	Map     []string     `yaml:"map"`
	Enemies []EnemySpawn `yaml:"enemies"`
}

func (l *Level) Rows() int {
	if l == nil {
		return 0
	}
	return len(l.Map)
}

func (l *Level) Cols() int {
	if l == nil || len(l.Map) == 0 {
		return 0
	}
	return len(l.Map[0])
}

func (l *Level) PixelWidth() float64 {
	return float64(l.Cols() * common.TileSize)
}

func (l *Level) PixelHeight() float64 {
	return float64(l.Rows() * common.TileSize)
}

// BottomBound is the y past which something has left the level. Maps shorter
// than the viewport still use the viewport height.
func (l *Level) BottomBound() float64 {
	return math.Max(l.PixelHeight(), common.BaseHeight)
}

// Tile returns the legend character at a grid cell. Cells outside the grid
// read as empty.
func (l *Level) Tile(col, row int) byte {
	if l == nil || row < 0 || row >= len(l.Map) {
		return TileEmpty
	}
	line := l.Map[row]
	if col < 0 || col >= len(line) {
		return TileEmpty
	}
	return line[col]
}

// TileAt returns the tile under a pixel coordinate.
func (l *Level) TileAt(x, y float64) byte {
	return l.Tile(TileIndex(x), TileIndex(y))
}

func (l *Level) IsSolid(col, row int) bool {
	return l.Tile(col, row) == TileWall
}

// TileIndex converts a pixel coordinate to a grid index.
func TileIndex(v float64) int {
	return int(math.Floor(v / common.TileSize))
}

// ItemSpawn is a pickup derived from the tile grid.
type ItemSpawn struct {
	Tile byte
	X    float64
	Y    float64
}

// Items scans the grid for heart and ammo tiles. Each item sits 8px inside
// its cell, so a 16px pickup box is centered on the tile.
func (l *Level) Items() []ItemSpawn {
	var out []ItemSpawn
	for row, line := range l.Map {
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case TileHeart, TileAmmo:
				out = append(out, ItemSpawn{
					Tile: line[col],
					X:    float64(col*common.TileSize) + 8,
					Y:    float64(row*common.TileSize) + 8,
				})
			}
		}
	}
	return out
}
