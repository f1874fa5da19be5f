package entity

import (
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

// EnemyType represents a kind of enemy.
type EnemyType int

const (
	// EnemyGloomBat is the only creature living in the mine.
	EnemyGloomBat EnemyType = iota
)

const (
	// Fallback stats for enemies created without a definition.
	GloomBatHealth = 30
	GloomBatDamage = 10
)

// String returns the enemy type identifier used in enemies.json.
func (t EnemyType) String() string {
	switch t {
	case EnemyGloomBat:
		return "gloom_bat"
	default:
		return "unknown"
	}
}

// ParseEnemyType maps a definition id onto an EnemyType.
func ParseEnemyType(id string) (EnemyType, bool) {
	switch id {
	case "gloom_bat":
		return EnemyGloomBat, true
	default:
		return EnemyGloomBat, false
	}
}

// Enemy is a creature in the mine.
// Active latches to true the first time the enemy is seen; inactive
// enemies neither move, attack nor render.
type Enemy struct {
	ID       int
	Position world.Position
	Health   int
	Type     EnemyType
	Active   bool
	Def      *gamedata.EnemyDef // nil for enemies built with NewEnemy
}

// NewEnemy creates a dormant enemy of the given type with default stats.
func NewEnemy(id int, enemyType EnemyType, pos world.Position) *Enemy {
	return &Enemy{
		ID:       id,
		Position: pos,
		Health:   GloomBatHealth,
		Type:     enemyType,
	}
}

// NewEnemyFromDef creates a dormant enemy from a data-driven definition.
func NewEnemyFromDef(def *gamedata.EnemyDef, id int, pos world.Position) *Enemy {
	enemyType, _ := ParseEnemyType(def.ID)
	return &Enemy{
		ID:       id,
		Position: pos,
		Health:   def.HP,
		Type:     enemyType,
		Def:      def,
	}
}

// IsAlive returns true while the enemy has health left.
func (e *Enemy) IsAlive() bool { return e.Health > 0 }

// TakeDamage reduces health and reports whether the enemy died.
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Health <= 0
}

// Damage returns how much health a contact attack takes from the player.
func (e *Enemy) Damage() int {
	if e.Def != nil {
		return e.Def.Damage
	}
	return GloomBatDamage
}

// Name returns the display name.
func (e *Enemy) Name() string {
	if e.Def != nil {
		return e.Def.Name
	}
	return "Gloom Bat"
}

// Clone returns a copy of the enemy. The definition pointer is shared; it is read-only.
func (e *Enemy) Clone() *Enemy {
	c := *e
	return &c
}

// CloneEnemies copies a slice of enemies so the result can be changed freely.
func CloneEnemies(enemies []*Enemy) []*Enemy {
	out := make([]*Enemy, len(enemies))
	for i, e := range enemies {
		out[i] = e.Clone()
	}
	return out
}

// EnemyAt returns the first enemy standing on pos, or nil.
func EnemyAt(enemies []*Enemy, pos world.Position) *Enemy {
	for _, e := range enemies {
		if e.Position == pos {
			return e
		}
	}
	return nil
}

// FindEnemy returns the enemy with the given id, or nil.
func FindEnemy(enemies []*Enemy, id int) *Enemy {
	for _, e := range enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RemoveEnemy returns enemies without the one carrying id. The input slice is not modified.
func RemoveEnemy(enemies []*Enemy, id int) []*Enemy {
	out := make([]*Enemy, 0, len(enemies))
	for _, e := range enemies {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// ActiveCount returns how many enemies are awake.
func ActiveCount(enemies []*Enemy) int {
	n := 0
	for _, e := range enemies {
		if e.Active {
			n++
		}
	}
	return n
}
