package game

import (
	"time"

	"github.com/samdwyer/darkmine/internal/effects"
	"github.com/samdwyer/darkmine/internal/entity"
	"github.com/samdwyer/darkmine/internal/world"
)

// Snapshot is a read-only copy of the session for renderers.
// Changing it has no effect on the engine.
type Snapshot struct {
	SessionID       string
	Status          Status
	Grid            *world.Grid // nil before the first Start
	Player          entity.Player
	Inventory       entity.Inventory
	Enemies         []*entity.Enemy
	EnemiesDefeated int
	Turns           int
	Message         string
	Swings          []effects.MiningSwing
	Particles       []effects.Particle
	Summary         *Summary // set after a game over
}

// Snapshot copies the current state, keeping only effects still alive at now.
func (e *Engine) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		SessionID:       e.sessionID,
		Status:          e.status,
		Player:          e.state.Player,
		Inventory:       e.state.Inventory,
		Enemies:         entity.CloneEnemies(e.state.Enemies),
		EnemiesDefeated: e.state.Defeated,
		Turns:           e.turns,
		Message:         e.state.Message,
		Swings:          e.effects.Swings(now),
		Particles:       e.effects.Particles(now),
	}
	if e.state.Grid != nil {
		s.Grid = e.state.Grid.Clone()
	}
	if e.summary != nil {
		summary := *e.summary
		s.Summary = &summary
	}
	return s
}

// VisibleEnemies returns the active enemies standing on revealed cells.
func (s Snapshot) VisibleEnemies() []*entity.Enemy {
	if s.Grid == nil {
		return nil
	}
	var out []*entity.Enemy
	for _, e := range s.Enemies {
		if e.Active && s.Grid.InBounds(e.Position) && s.Grid.At(e.Position).Revealed {
			out = append(out, e)
		}
	}
	return out
}
