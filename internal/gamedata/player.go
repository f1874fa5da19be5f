package gamedata

import "fmt"

// PlayerDef holds the stats a new miner starts with.
type PlayerDef struct {
	Health      int    `json:"health"`
	Energy      int    `json:"energy"`
	MaxEnergy   int    `json:"maxEnergy"`
	MiningPower int    `json:"miningPower"`
	VisionRange int    `json:"visionRange"`
	Direction   string `json:"direction"`
}

func (d *PlayerDef) validate() error {
	if d.Health <= 0 || d.Energy <= 0 {
		return fmt.Errorf("starting health and energy must be positive, got %d and %d", d.Health, d.Energy)
	}
	if d.VisionRange < 0 {
		return fmt.Errorf("vision range must not be negative, got %d", d.VisionRange)
	}
	switch d.Direction {
	case "up", "down", "left", "right":
		return nil
	default:
		return fmt.Errorf("unknown starting direction %q", d.Direction)
	}
}

// LoadPlayer loads the starting stats from the embedded player.json file.
func LoadPlayer() (*PlayerDef, error) {
	def, err := Load[PlayerDef]("player.json")
	if err != nil {
		return nil, err
	}
	return &def, nil
}

// MustLoadPlayer loads the starting stats, panicking on error.
func MustLoadPlayer() *PlayerDef {
	def, err := LoadPlayer()
	if err != nil {
		panic(err)
	}
	return def
}
