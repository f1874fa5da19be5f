package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TileDef describes how one tile type looks. The id matches world.TileType.String().
type TileDef struct {
	ID       string `json:"id"`       // Tile identifier (e.g., "coal")
	Name     string `json:"name"`     // Display name (e.g., "Coal")
	Glyph    string `json:"glyph"`    // Single character for rendering
	Color    string `json:"color"`    // Hex color while revealed
	DimColor string `json:"dimColor"` // Hex color once explored but out of sight
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	if len(t.Glyph) == 0 {
		return '?'
	}
	return []rune(t.Glyph)[0]
}

// TCellColor returns the revealed color.
func (t *TileDef) TCellColor() tcell.Color {
	return colorOr(t.Color, tcell.ColorWhite)
}

// TCellDimColor returns the color used for explored tiles outside vision.
func (t *TileDef) TCellDimColor() tcell.Color {
	return colorOr(t.DimColor, tcell.ColorDarkGray)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

func (f *TilesFile) validate() error {
	ids := make([]string, len(f.Tiles))
	for i, t := range f.Tiles {
		ids[i] = t.ID
		if t.Glyph == "" {
			return fmt.Errorf("tile %q has no glyph", t.ID)
		}
	}
	return uniqueIDs("tile", ids)
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
