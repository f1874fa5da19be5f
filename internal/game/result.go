package game

import "github.com/samdwyer/darkmine/internal/entity"

// Outcome tags the result of an action or power.
type Outcome int

const (
	// OutcomeContinue means the turn resolved and the game goes on.
	OutcomeContinue Outcome = iota
	// OutcomeRejected means nothing happened apart from the message.
	OutcomeRejected
	// OutcomeGameOver means this turn ended the session.
	OutcomeGameOver
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeRejected:
		return "rejected"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause says what ended a game.
type Cause int

const (
	CauseNone Cause = iota
	// CauseInjury is health lost to the player's own action, i.e. traps.
	CauseInjury
	// CauseExhaustion is energy running out.
	CauseExhaustion
	// CauseEnemy is health lost during the enemy turn.
	CauseEnemy
)

// String returns a human-readable cause name.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseInjury:
		return "injury"
	case CauseExhaustion:
		return "exhaustion"
	case CauseEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Summary is the final tally of a finished game.
type Summary struct {
	SessionID       string
	Seed            int64
	Score           int
	Inventory       entity.Inventory
	EnemiesDefeated int
	Turns           int
	Cause           Cause
}

// Result is returned from every action and power.
// Summary is set only when Outcome is OutcomeGameOver.
type Result struct {
	Outcome Outcome
	Message string
	Summary *Summary
}

// IsGameOver reports whether this result ended the game.
func (r Result) IsGameOver() bool {
	return r.Outcome == OutcomeGameOver
}
