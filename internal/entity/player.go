// Package entity provides the miner, their inventory and the creatures of the mine.
package entity

import (
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

// MaxEnergy caps energy restored by coal.
const MaxEnergy = 100

// Player is the miner. It is a plain value: copying a Player never aliases state.
// Health and Energy may go to zero or below, which ends the game.
type Player struct {
	Position    world.Position
	Health      int
	Energy      int
	MaxEnergy   int
	MiningPower int
	VisionRange int
	Score       int
	Direction   world.Direction
}

// NewPlayer creates a miner at pos with the starting stats from def.
func NewPlayer(def *gamedata.PlayerDef, pos world.Position) Player {
	dir, err := world.ParseDirection(def.Direction)
	if err != nil {
		dir = world.DirDown
	}
	maxEnergy := def.MaxEnergy
	if maxEnergy <= 0 {
		maxEnergy = MaxEnergy
	}
	return Player{
		Position:    pos,
		Health:      def.Health,
		Energy:      def.Energy,
		MaxEnergy:   maxEnergy,
		MiningPower: def.MiningPower,
		VisionRange: def.VisionRange,
		Score:       0,
		Direction:   dir,
	}
}

// IsDead returns true once health has run out.
func (p Player) IsDead() bool { return p.Health <= 0 }

// IsExhausted returns true once energy has run out.
func (p Player) IsExhausted() bool { return p.Energy <= 0 }

// TakeDamage reduces health. Health is not floored at zero.
func (p *Player) TakeDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.Health -= amount
}

// SpendEnergy reduces energy. Energy is not floored at zero.
func (p *Player) SpendEnergy(amount int) {
	if amount <= 0 {
		return
	}
	p.Energy -= amount
}

// RestoreEnergy adds energy, capped at MaxEnergy, and returns the new energy.
func (p *Player) RestoreEnergy(amount int) int {
	p.Energy = min(p.MaxEnergy, p.Energy+amount)
	return p.Energy
}

// AddScore adds points.
func (p *Player) AddScore(points int) {
	p.Score += points
}

// LoseScore removes points, never going below zero.
func (p *Player) LoseScore(points int) {
	p.Score -= points
	if p.Score < 0 {
		p.Score = 0
	}
}

// MoveTo places the player on pos, facing dir.
func (p *Player) MoveTo(pos world.Position, dir world.Direction) {
	p.Position = pos
	p.Direction = dir
}
