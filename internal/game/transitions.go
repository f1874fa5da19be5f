package game

import (
	"github.com/samdwyer/darkmine/internal/combat"
	"github.com/samdwyer/darkmine/internal/effects"
	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/mining"
	"github.com/samdwyer/darkmine/internal/vision"
	"github.com/samdwyer/darkmine/internal/world"
)

const (
	// MoveCost is the energy spent walking onto an empty cell.
	MoveCost = 1
	// MineCost is the energy spent digging into any other cell.
	MineCost = 2
)

const (
	MsgWelcome    = "Use arrow keys or WASD to move and mine."
	MsgBlocked    = "You can't go that way."
	MsgMoved      = "Moved to an empty space."
	MsgNoCoal     = "Not enough coal!"
	MsgMegaMine   = "You unleash a powerful mining blast!"
	MsgIlluminate = "A brilliant flash illuminates the area!"
	MsgNotStarted = "Press any key to start."
	MsgGameOver   = "The game is over. Restart to play again."
)

// turnState is everything a turn reads and writes. Transition functions take
// one by value and return the next; the grid and enemies inside are replaced,
// never edited in place, so an old turnState stays valid.
type turnState struct {
	Grid      *world.Grid
	Player    entity.Player
	Inventory entity.Inventory
	Enemies   []*entity.Enemy
	Defeated  int
	Message   string
}

// minedCell is one dug-out cell, kept for the particle burst.
type minedCell struct {
	At       world.Position
	Tile     world.TileType
	Particle effects.ParticleKind
}

// moveKind says which branch a directional action took.
type moveKind int

const (
	moveRejected moveKind = iota
	moveAttack
	moveWalk
	moveMine
)

func (k moveKind) String() string {
	switch k {
	case moveRejected:
		return "rejected"
	case moveAttack:
		return "attack"
	case moveWalk:
		return "walk"
	case moveMine:
		return "mine"
	default:
		return "unknown"
	}
}

// moveEvent describes what applyMove did.
type moveEvent struct {
	Kind     moveKind
	Target   world.Position
	Mined    *minedCell
	Defeated bool
}

// applyMove resolves one directional action: attack, walk, or mine-and-step.
// A step off the grid is rejected and only the message changes.
func applyMove(s turnState, dir world.Direction) (turnState, moveEvent) {
	target := s.Player.Position.Step(dir)
	ev := moveEvent{Target: target}

	if !s.Grid.InBounds(target) {
		s.Message = MsgBlocked
		ev.Kind = moveRejected
		return s, ev
	}

	if enemy := entity.EnemyAt(s.Enemies, target); enemy != nil {
		res := combat.PlayerAttack(s.Player, s.Enemies, enemy.ID)
		s.Player = res.Player
		s.Player.Direction = dir
		s.Enemies = res.Enemies
		s.Message = res.Message
		if res.Defeated {
			s.Defeated++
		}
		ev.Kind = moveAttack
		ev.Defeated = res.Defeated
		return s, ev
	}

	if s.Grid.IsPassable(target) {
		s.Player.MoveTo(target, dir)
		s.Player.SpendEnergy(MoveCost)
		s.Message = MsgMoved
		ev.Kind = moveWalk
		return s, ev
	}

	// The dig cost comes off the energy held before the dig, so coal found
	// on this step does not refill it.
	energy := s.Player.Energy
	s, mined := applyMine(s, target)
	s.Player.MoveTo(target, dir)
	s.Player.Energy = energy
	s.Player.SpendEnergy(MineCost)
	ev.Kind = moveMine
	ev.Mined = &mined
	return s, ev
}

// applyMine digs out one cell and folds the outcome into the state.
func applyMine(s turnState, at world.Position) (turnState, minedCell) {
	out := mining.Mine(at, s.Player, s.Inventory, s.Grid, s.Enemies)
	s.Player = out.Player
	s.Inventory = out.Inventory
	s.Grid = out.Grid
	s.Enemies = out.Enemies
	s.Message = out.Message
	return s, minedCell{At: at, Tile: out.Mined, Particle: out.Particle}
}

// applyPower spends coal on a power. It returns the player state the
// enemy turn should react to: the final player after a mega mine, the
// player as it was before the power for illuminate.
// Callers check the coal balance first.
func applyPower(s turnState, power PowerType, def *gamedata.PowerDef) (turnState, []minedCell, entity.Player) {
	before := s.Player
	if !s.Inventory.SpendCoal(def.Cost) {
		panic("game: not enough coal for " + power.String())
	}

	switch power {
	case PowerMegaMine:
		var mined []minedCell
		center := s.Player.Position
		area := world.Square(center, def.Radius).Intersect(s.Grid.Bounds())
		for _, at := range area.Positions() {
			if at == center || s.Grid.IsPassable(at) {
				continue
			}
			var cell minedCell
			s, cell = applyMine(s, at)
			mined = append(mined, cell)
		}
		s.Message = MsgMegaMine
		return s, mined, s.Player

	case PowerIlluminate:
		s.Grid, s.Enemies = vision.Reveal(s.Player.Position, def.Radius, s.Grid, s.Enemies)
		s.Message = MsgIlluminate
		return s, nil, before

	default:
		panic("game: unknown power " + power.String())
	}
}

// applyEnemyTurn lets the active enemies react to from. Only the damage
// they deal is carried onto the current player.
func applyEnemyTurn(s turnState, from entity.Player) (turnState, combat.TurnResult) {
	res := combat.EnemyTurn(from, s.Enemies, s.Grid)
	s.Enemies = res.Enemies
	if res.DamageTaken > 0 {
		s.Player.Health = res.Player.Health
	}
	if res.Message != "" {
		s.Message = res.Message
	}
	return s, res
}

// applyVisibility lights the player's surroundings.
func applyVisibility(s turnState) turnState {
	s.Grid, s.Enemies = vision.Reveal(s.Player.Position, s.Player.VisionRange, s.Grid, s.Enemies)
	return s
}
