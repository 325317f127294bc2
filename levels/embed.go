package levels

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// CatalogFile is the catalog file name, both embedded and on disk.
const CatalogFile = "levels.yaml"

// Catalog is the ordered list of playable levels.
type Catalog struct {
	Levels []Level `yaml:"levels"`
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Levels)
}

// Lookup resolves a zero-based index. Out-of-range indices fall back to the
// first entry; the resolved index is returned alongside the level.
func (c *Catalog) Lookup(index int) (*Level, int) {
	if c == nil || len(c.Levels) == 0 {
		return nil, 0
	}
	if index < 0 || index >= len(c.Levels) {
		index = 0
	}
	return &c.Levels[index], index
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if len(c.Levels) == 0 {
		return nil, fmt.Errorf("levels: catalog is empty")
	}
	for i := range c.Levels {
		if err := validate(&c.Levels[i]); err != nil {
			return nil, fmt.Errorf("levels: level %d: %w", c.Levels[i].ID, err)
		}
	}
	return &c, nil
}

func validate(l *Level) error {
	if len(l.Map) == 0 {
		return fmt.Errorf("empty map")
	}
	width := len(l.Map[0])
	if width == 0 {
		return fmt.Errorf("empty first row")
	}
	for row, line := range l.Map {
		if len(line) != width {
			return fmt.Errorf("row %d has width %d, want %d", row, len(line), width)
		}
		for col := 0; col < len(line); col++ {
			switch line[col] {
			case TileEmpty, TileWall, TileGoal, TileHeart, TileAmmo:
			default:
				return fmt.Errorf("row %d col %d: unknown tile %q", row, col, line[col])
			}
		}
	}
	if l.Arrows < 0 {
		return fmt.Errorf("negative arrow count %d", l.Arrows)
	}
	for i, e := range l.Enemies {
		if !e.Type.Valid() {
			return fmt.Errorf("enemy %d: unknown archetype %q", i, e.Type)
		}
	}
	return nil
}

// Load reads the catalog from ./levels on disk when present, falling back to
// the embedded copy.
func Load() (*Catalog, error) {
	data, err := os.ReadFile(filepath.Join("levels", CatalogFile))
	if err != nil {
		data, err = LevelsFS.ReadFile(CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", CatalogFile, err)
		}
	}
	return Parse(data)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. A broken embedded file is a build
// defect, so it is fatal.
func Default() *Catalog {
	defaultOnce.Do(func() {
		data, err := LevelsFS.ReadFile(CatalogFile)
		if err != nil {
			log.Fatalf("levels: read embedded %s: %v", CatalogFile, err)
		}
		c, err := Parse(data)
		if err != nil {
			log.Fatalf("levels: %v", err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
