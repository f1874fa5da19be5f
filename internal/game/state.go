// Package game provides the turn controller that owns a DarkMine session.
package game

// Status represents where the session is in its lifecycle.
type Status int

const (
	// StatusStart is the title screen before the first game.
	StatusStart Status = iota
	// StatusPlaying accepts actions and powers.
	StatusPlaying
	// StatusGameOver rejects everything until Restart.
	StatusGameOver
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusStart:
		return "start"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
