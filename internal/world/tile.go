// Package world provides mine grid generation and map management.
package world

import "fmt"

// TileType represents the material or content of a single grid cell.
type TileType int

const (
	// TileRock is solid rock. Mining it yields a single point.
	TileRock TileType = iota
	// TileEmpty is a passable, already mined cell. Once empty, always empty.
	TileEmpty
	// TileCoal restores energy and fuels powers.
	TileCoal
	// TileOre is a plain scoring resource.
	TileOre
	// TileDiamond is rare and widens the player's vision.
	TileDiamond
	// TileTrap hurts the player when mined.
	TileTrap
	// TileLight reveals a wide area around itself when mined.
	TileLight
)

// tileIDs maps tile types to their data identifiers (see gamedata tiles.json).
var tileIDs = map[TileType]string{
	TileRock:    "rock",
	TileEmpty:   "empty",
	TileCoal:    "coal",
	TileOre:     "ore",
	TileDiamond: "diamond",
	TileTrap:    "trap",
	TileLight:   "light",
}

// String returns the tile type identifier.
func (t TileType) String() string {
	if id, ok := tileIDs[t]; ok {
		return id
	}
	return "unknown"
}

// ParseTileType converts a tile identifier back into a TileType.
func ParseTileType(id string) (TileType, error) {
	for t, name := range tileIDs {
		if name == id {
			return t, nil
		}
	}
	return TileRock, fmt.Errorf("unknown tile type %q", id)
}

// TileTypes returns every tile type in declaration order.
func TileTypes() []TileType {
	return []TileType{TileRock, TileEmpty, TileCoal, TileOre, TileDiamond, TileTrap, TileLight}
}

// IsPassable returns true if the tile can be walked on without mining.
func (t TileType) IsPassable() bool {
	return t == TileEmpty
}

// Tile is a single grid cell.
// Revealed means the cell is currently lit; Explored means it has ever been lit.
type Tile struct {
	Type     TileType
	Revealed bool
	Explored bool
}
