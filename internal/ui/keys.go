package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/darkmine/internal/game"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

// Command is what a key press asks the app to do.
type Command int

const (
	CmdNone Command = iota
	CmdMove
	CmdPower
	CmdRestart
	CmdCopy
	CmdQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdMove:
		return "move"
	case CmdPower:
		return "power"
	case CmdRestart:
		return "restart"
	case CmdCopy:
		return "copy"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Input is a decoded key press. Direction is set for CmdMove, Power for CmdPower.
type Input struct {
	Command   Command
	Direction world.Direction
	Power     game.PowerType
}

// DecodeKey maps a key press onto a command. Arrow keys and WASD move;
// power keys come from powers.json.
func DecodeKey(key tcell.Key, r rune, powers *gamedata.PowerRegistry) Input {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Command: CmdQuit}
	case tcell.KeyUp:
		return move(world.DirUp)
	case tcell.KeyDown:
		return move(world.DirDown)
	case tcell.KeyLeft:
		return move(world.DirLeft)
	case tcell.KeyRight:
		return move(world.DirRight)
	case tcell.KeyRune:
	default:
		return Input{}
	}

	switch r {
	case 'w', 'W':
		return move(world.DirUp)
	case 's', 'S':
		return move(world.DirDown)
	case 'a', 'A':
		return move(world.DirLeft)
	case 'd', 'D':
		return move(world.DirRight)
	case 'r', 'R':
		return Input{Command: CmdRestart}
	case 'c', 'C':
		return Input{Command: CmdCopy}
	case 'q', 'Q':
		return Input{Command: CmdQuit}
	}

	if powers != nil {
		if def := powers.GetByKey(string(r)); def != nil {
			if p, err := game.ParsePowerType(def.ID); err == nil {
				return Input{Command: CmdPower, Power: p}
			}
		}
	}
	return Input{}
}

func move(dir world.Direction) Input {
	return Input{Command: CmdMove, Direction: dir}
}
