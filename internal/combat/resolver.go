// Package combat resolves the miner's attacks and the Gloom Bats' reaction turn.
package combat

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/world"
)

const (
	// PlayerDamage is dealt by every pickaxe strike.
	PlayerDamage = 15
	// AttackCost is the energy an attack takes, hit or not.
	AttackCost = 3
	// DefeatScore is awarded for each enemy killed.
	DefeatScore = 100
)

// AttackResult contains the outcome of the player striking an enemy.
type AttackResult struct {
	Player   entity.Player
	Enemies  []*entity.Enemy
	Damage   int
	Defeated bool
	Message  string
}

// PlayerAttack strikes the enemy with targetID. A killed enemy is removed
// from the returned slice. The player pays AttackCost either way.
// The input enemies are not modified.
func PlayerAttack(player entity.Player, enemies []*entity.Enemy, targetID int) AttackResult {
	result := AttackResult{
		Player:  player,
		Enemies: entity.CloneEnemies(enemies),
	}
	result.Player.SpendEnergy(AttackCost)

	target := entity.FindEnemy(result.Enemies, targetID)
	if target == nil {
		// Caller bug: attacks are only resolved against an enemy on the target cell.
		panic("combat: attack target not found")
	}

	result.Damage = PlayerDamage
	target.TakeDamage(PlayerDamage)
	if !target.IsAlive() {
		result.Enemies = entity.RemoveEnemy(result.Enemies, targetID)
		result.Defeated = true
		result.Player.AddScore(DefeatScore)
		result.Message = "You defeated the " + target.Name() + "! +100 score."
	} else {
		result.Message = "You hit the " + target.Name() + "!"
	}

	return result
}

// =============================================================================
// Enemy turn
// =============================================================================

// EnemyAction records what one enemy did during its turn.
type EnemyAction int

const (
	ActionIdle EnemyAction = iota
	ActionAttack
	ActionMove
	ActionBlocked
)

// String returns a short name for the action.
func (a EnemyAction) String() string {
	switch a {
	case ActionIdle:
		return "idle"
	case ActionAttack:
		return "attack"
	case ActionMove:
		return "move"
	case ActionBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// TurnResult contains the outcome of every active enemy acting once.
type TurnResult struct {
	Player      entity.Player
	Enemies     []*entity.Enemy
	Attacks     int
	DamageTaken int
	Moves       int
	Actions     map[int]EnemyAction // by enemy id
	Message     string              // empty when no enemy attacked
}

// PlayerDied reports whether the enemy turn took the player's health to zero or below.
func (r TurnResult) PlayerDied() bool {
	return r.DamageTaken > 0 && r.Player.IsDead()
}

// EnemyTurn lets every active enemy act once, in slice order.
//
// An enemy sharing an edge with the player attacks and stays put. One that
// only touches the player diagonally does not attack. Everyone else steps
// one cell toward the player, along x only when the x gap is strictly the
// larger one. A step is blocked by the grid edge, by any non-empty tile, or
// by a cell some enemy occupied when the turn began; moves made earlier in
// the same turn are not seen.
func EnemyTurn(player entity.Player, enemies []*entity.Enemy, grid *world.Grid) TurnResult {
	result := TurnResult{
		Player:  player,
		Enemies: entity.CloneEnemies(enemies),
		Actions: make(map[int]EnemyAction, len(enemies)),
	}

	occupied := mapset.New[world.Position]()
	for _, e := range enemies {
		occupied.Put(e.Position)
	}

	for _, e := range result.Enemies {
		if !e.Active {
			result.Actions[e.ID] = ActionIdle
			continue
		}

		dx := player.Position.X - e.Position.X
		dy := player.Position.Y - e.Position.Y
		adx, ady := abs(dx), abs(dy)

		diagonal := adx == 1 && ady == 1
		if !diagonal && adx+ady <= 1 {
			result.Player.TakeDamage(e.Damage())
			result.DamageTaken += e.Damage()
			result.Attacks++
			result.Actions[e.ID] = ActionAttack
			result.Message = "A " + e.Name() + " attacks you!"
			continue
		}

		next := e.Position
		if adx > ady {
			next.X += sign(dx)
		} else {
			next.Y += sign(dy)
		}

		if blocked(next, occupied, grid) {
			result.Actions[e.ID] = ActionBlocked
			continue
		}
		e.Position = next
		result.Moves++
		result.Actions[e.ID] = ActionMove
	}

	return result
}

func blocked(next world.Position, occupied mapset.Set[world.Position], grid *world.Grid) bool {
	if occupied.Has(next) {
		return true
	}
	return !grid.IsPassable(next)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
