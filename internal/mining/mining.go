// Package mining resolves what happens when the miner digs out a single cell.
package mining

import (
	"github.com/samdwyer/darkmine/internal/effects"
	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/vision"
	"github.com/samdwyer/darkmine/internal/world"
)

const (
	// LightRadius is the reveal radius of a mined light crystal.
	LightRadius = 5

	CoalEnergy   = 20
	CoalScore    = 10
	OreScore     = 50
	DiamondScore = 200
	TrapDamage   = 20
	TrapPenalty  = 25
	RockScore    = 1
)

const (
	MsgCoal    = "You found coal! Restored 20 energy."
	MsgOre     = "You found ore!"
	MsgDiamond = "A rare diamond! Your vision expands."
	MsgTrap    = "It's a trap! You lost 20 health."
	MsgLight   = "A burst of light reveals the area!"
	MsgRock    = "You mined through solid rock."
)

// Outcome is the state after mining one cell.
type Outcome struct {
	Player    entity.Player
	Inventory entity.Inventory
	Grid      *world.Grid
	Enemies   []*entity.Enemy
	Message   string
	Mined     world.TileType
	Particle  effects.ParticleKind
}

// Mine digs out one cell and applies its reward or penalty.
// The cell always ends up empty, so mining it again takes the rock path.
// The grid and enemies passed in are left untouched.
func Mine(at world.Position, player entity.Player, inv entity.Inventory, grid *world.Grid, enemies []*entity.Enemy) Outcome {
	mined := grid.At(at).Type

	out := Outcome{
		Player:    player,
		Inventory: inv,
		Grid:      grid.Clone(),
		Enemies:   entity.CloneEnemies(enemies),
		Mined:     mined,
		Particle:  ParticleFor(mined),
	}

	switch mined {
	case world.TileCoal:
		out.Inventory.Coal++
		out.Player.RestoreEnergy(CoalEnergy)
		out.Player.AddScore(CoalScore)
		out.Message = MsgCoal
	case world.TileOre:
		out.Inventory.Ore++
		out.Player.AddScore(OreScore)
		out.Message = MsgOre
	case world.TileDiamond:
		out.Inventory.Diamond++
		out.Player.AddScore(DiamondScore)
		out.Player.VisionRange++
		out.Message = MsgDiamond
	case world.TileTrap:
		out.Player.TakeDamage(TrapDamage)
		out.Player.LoseScore(TrapPenalty)
		out.Message = MsgTrap
	case world.TileLight:
		out.Grid, out.Enemies = vision.Reveal(at, LightRadius, out.Grid, out.Enemies)
		out.Message = MsgLight
	default:
		out.Player.AddScore(RockScore)
		out.Message = MsgRock
	}

	out.Grid.SetType(at, world.TileEmpty)
	return out
}

// ParticleFor returns the particle burst shown for a mined tile type.
// Light crystals have no burst of their own and use the rock one.
func ParticleFor(t world.TileType) effects.ParticleKind {
	switch t {
	case world.TileTrap:
		return effects.ParticleTrap
	case world.TileCoal:
		return effects.ParticleCoal
	case world.TileOre:
		return effects.ParticleOre
	case world.TileDiamond:
		return effects.ParticleDiamond
	default:
		return effects.ParticleRock
	}
}
