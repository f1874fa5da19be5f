package game

import "fmt"

// PowerType identifies a coal-fuelled power.
type PowerType int

const (
	// PowerMegaMine mines the ring of cells around the player.
	PowerMegaMine PowerType = iota
	// PowerIlluminate lights a wide disk around the player.
	PowerIlluminate
)

// String returns the power id used in powers.json.
func (p PowerType) String() string {
	switch p {
	case PowerMegaMine:
		return "mega_mine"
	case PowerIlluminate:
		return "illuminate"
	default:
		return "unknown"
	}
}

// PowerTypes returns every power in key order.
func PowerTypes() []PowerType {
	return []PowerType{PowerMegaMine, PowerIlluminate}
}

// ParsePowerType converts a power id back into a PowerType.
func ParsePowerType(id string) (PowerType, error) {
	for _, p := range PowerTypes() {
		if p.String() == id {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown power %q", id)
}
