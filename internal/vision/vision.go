// Package vision computes fog-of-war: which cells are lit and which enemies wake up.
package vision

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/world"
)

// InRange reports whether p lies within the Euclidean disk of the given radius around center.
func InRange(center, p world.Position, radius int) bool {
	return center.DistanceSq(p) <= radius*radius
}

// Disk returns every in-bounds cell of the grid inside the disk, row by row.
func Disk(grid *world.Grid, center world.Position, radius int) []world.Position {
	var cells []world.Position
	for _, p := range world.Square(center, radius).Intersect(grid.Bounds()).Positions() {
		if InRange(center, p, radius) {
			cells = append(cells, p)
		}
	}
	return cells
}

// Reveal lights every cell within radius of center and wakes the enemies standing there.
//
// It only ever adds light: cells outside the disk keep whatever Revealed and
// Explored flags they had, and an active enemy is never put back to sleep.
// The grid and enemies passed in are not modified; fresh copies are returned.
func Reveal(center world.Position, radius int, grid *world.Grid, enemies []*entity.Enemy) (*world.Grid, []*entity.Enemy) {
	next := grid.Clone()
	nextEnemies := entity.CloneEnemies(enemies)

	lit := mapset.New[world.Position]()
	for _, p := range Disk(next, center, radius) {
		tile := next.At(p)
		tile.Revealed = true
		tile.Explored = true
		next.Set(p, tile)
		lit.Put(p)
	}

	for _, e := range nextEnemies {
		if !e.Active && lit.Has(e.Position) {
			e.Active = true
		}
	}

	return next, nextEnemies
}
