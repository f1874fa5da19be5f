// Package sim plays DarkMine without a terminal, for balancing and smoke tests.
package sim

import (
	"math/rand"

	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/game"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

// Move is one decision: a power when UsePower is set, otherwise a step.
type Move struct {
	UsePower  bool
	Power     game.PowerType
	Direction world.Direction
}

// Policy picks the next move from what a player could see on screen.
type Policy interface {
	Next(snap game.Snapshot, rng *rand.Rand) Move
}

// Greedy blasts with mega mine when it can afford to, fights bats that are
// next to it, heads for the nearest visible resource, and wanders otherwise.
type Greedy struct {
	MegaMineCost int
	MinHealth    int // below this it stops using mega mine and flees fights
	LowEnergy    int // below this it only looks for coal
}

// NewGreedy builds a Greedy policy with power costs taken from powers.
func NewGreedy(powers *gamedata.PowerRegistry) Greedy {
	g := Greedy{MegaMineCost: 5, MinHealth: 40, LowEnergy: 15}
	if powers != nil {
		if def := powers.GetByID(game.PowerMegaMine.String()); def != nil {
			g.MegaMineCost = def.Cost
		}
	}
	return g
}

// Next implements Policy.
func (g Greedy) Next(snap game.Snapshot, rng *rand.Rand) Move {
	p := snap.Player

	if snap.Inventory.Coal >= g.MegaMineCost && p.Health > g.MinHealth {
		return Move{UsePower: true, Power: game.PowerMegaMine}
	}

	if p.Health > g.MinHealth/2 {
		if dir, ok := adjacentEnemy(p.Position, snap.VisibleEnemies()); ok {
			return Move{Direction: dir}
		}
	}

	wanted := []world.TileType{world.TileDiamond, world.TileOre, world.TileCoal, world.TileLight}
	if p.Energy < g.LowEnergy {
		wanted = []world.TileType{world.TileCoal}
	}
	if target, ok := nearest(snap.Grid, p.Position, wanted); ok {
		if dir, ok := stepToward(snap.Grid, p.Position, target); ok {
			return Move{Direction: dir}
		}
	}

	return Move{Direction: wander(snap.Grid, p.Position, rng)}
}

func adjacentEnemy(from world.Position, enemies []*entity.Enemy) (world.Direction, bool) {
	for _, dir := range world.Directions() {
		if entity.EnemyAt(enemies, from.Step(dir)) != nil {
			return dir, true
		}
	}
	return 0, false
}

// nearest finds the closest revealed cell holding one of the wanted types,
// by Manhattan distance, scanning row by row so ties are stable.
func nearest(g *world.Grid, from world.Position, wanted []world.TileType) (world.Position, bool) {
	best, bestDist := world.Position{}, -1
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := world.Position{X: x, Y: y}
			tile := g.At(p)
			if !tile.Revealed || !contains(wanted, tile.Type) {
				continue
			}
			if d := from.Manhattan(p); bestDist < 0 || d < bestDist {
				best, bestDist = p, d
			}
		}
	}
	return best, bestDist >= 0
}

// stepToward picks the axis with the larger gap first and avoids traps.
func stepToward(g *world.Grid, from, to world.Position) (world.Direction, bool) {
	dx, dy := to.X-from.X, to.Y-from.Y

	var options []world.Direction
	horizontal := world.DirRight
	if dx < 0 {
		horizontal = world.DirLeft
	}
	vertical := world.DirDown
	if dy < 0 {
		vertical = world.DirUp
	}
	switch {
	case dx == 0 && dy == 0:
		return 0, false
	case dx == 0:
		options = []world.Direction{vertical}
	case dy == 0:
		options = []world.Direction{horizontal}
	case abs(dx) >= abs(dy):
		options = []world.Direction{horizontal, vertical}
	default:
		options = []world.Direction{vertical, horizontal}
	}

	for _, dir := range options {
		next := from.Step(dir)
		if next == to || safe(g, next) {
			return dir, true
		}
	}
	return 0, false
}

// wander picks a random in-bounds direction, stepping on a known trap only
// when nothing else is left.
func wander(g *world.Grid, from world.Position, rng *rand.Rand) world.Direction {
	dirs := world.Directions()
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, dir := range dirs {
		if safe(g, from.Step(dir)) {
			return dir
		}
	}
	for _, dir := range dirs {
		if g.InBounds(from.Step(dir)) {
			return dir
		}
	}
	return dirs[0]
}

func safe(g *world.Grid, p world.Position) bool {
	if !g.InBounds(p) {
		return false
	}
	tile := g.At(p)
	return !(tile.Revealed && tile.Type == world.TileTrap)
}

func contains(types []world.TileType, t world.TileType) bool {
	for _, tt := range types {
		if tt == t {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
