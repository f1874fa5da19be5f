package world

import "fmt"

const (
	// Default grid dimensions
	DefaultWidth  = 25
	DefaultHeight = 25
)

// Grid represents the mine. Tiles are stored row-major: Tiles[y][x].
// Width and Height never change after creation.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewGrid creates a new grid filled with unrevealed rock.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Type: TileRock}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// Bounds returns the rect covering the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{Width: g.Width, Height: g.Height}
}

// InBounds returns true if the position lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at the given position.
// Indexing outside the grid is a programming error and panics.
func (g *Grid) At(p Position) Tile {
	g.mustContain(p)
	return g.Tiles[p.Y][p.X]
}

// Set replaces the tile at the given position.
func (g *Grid) Set(p Position, t Tile) {
	g.mustContain(p)
	g.Tiles[p.Y][p.X] = t
}

// SetType changes only the type of the tile at the given position.
func (g *Grid) SetType(p Position, tt TileType) {
	g.mustContain(p)
	g.Tiles[p.Y][p.X].Type = tt
}

// IsPassable returns true if the given position can be walked on.
// Positions outside the grid are never passable.
func (g *Grid) IsPassable(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.Tiles[p.Y][p.X].Type.IsPassable()
}

// Center returns the middle cell of the grid (rounded down).
func (g *Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([][]Tile, g.Height)
	for y := range g.Tiles {
		tiles[y] = make([]Tile, g.Width)
		copy(tiles[y], g.Tiles[y])
	}
	return &Grid{
		Width:  g.Width,
		Height: g.Height,
		Tiles:  tiles,
	}
}

// Count returns how many tiles have the given type.
func (g *Grid) Count(tt TileType) int {
	n := 0
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x].Type == tt {
				n++
			}
		}
	}
	return n
}

// ExploredCount returns how many tiles have ever been revealed.
func (g *Grid) ExploredCount() int {
	n := 0
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x].Explored {
				n++
			}
		}
	}
	return n
}

// Equal reports whether two grids have identical dimensions and tiles.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			if g.Tiles[y][x] != other.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) mustContain(p Position) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("world: position %v outside %dx%d grid", p, g.Width, g.Height))
	}
}
