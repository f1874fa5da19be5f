package entity

import (
	"math/rand"

	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

const (
	// SafeRadius keeps the area around the start free of enemies.
	// A cell must be strictly farther than this (Manhattan) to host one.
	SafeRadius = 6

	// EnemyProbability is the chance that an eligible cell hosts an enemy.
	EnemyProbability = 0.04
)

// SpawnEnemies seeds enemies onto a freshly generated grid.
// Cells are scanned row by row; each eligible cell rolls once and holds at
// most one enemy. Ids are sequential from zero.
func SpawnEnemies(grid *world.Grid, start world.Position, rng *rand.Rand, registry *gamedata.EnemyRegistry) []*Enemy {
	enemies := make([]*Enemy, 0)
	nextID := 0

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			pos := world.Position{X: x, Y: y}
			if pos.Manhattan(start) <= SafeRadius {
				continue
			}
			if grid.At(pos).Type == world.TileEmpty {
				continue
			}
			if rng.Float64() >= EnemyProbability {
				continue
			}

			var def *gamedata.EnemyDef
			if registry != nil {
				def = registry.SpawnRandom(rng)
			}
			if def != nil {
				enemies = append(enemies, NewEnemyFromDef(def, nextID, pos))
			} else {
				enemies = append(enemies, NewEnemy(nextID, EnemyGloomBat, pos))
			}
			nextID++
		}
	}

	return enemies
}
