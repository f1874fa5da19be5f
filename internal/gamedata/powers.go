package gamedata

import "fmt"

// PowerDef defines a coal-fuelled power loaded from JSON.
//
// Radius means different things per power: for mega_mine it is the half
// size of the square that gets mined, for illuminate the vision radius.
type PowerDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`   // Coal consumed per use
	Radius      int    `json:"radius"` // Area of effect
	Key         string `json:"key"`    // Default key binding
}

// PowersFile represents the structure of powers.json.
type PowersFile struct {
	Powers []PowerDef `json:"powers"`
}

func (f *PowersFile) validate() error {
	ids := make([]string, len(f.Powers))
	keys := make([]string, len(f.Powers))
	for i, p := range f.Powers {
		ids[i], keys[i] = p.ID, p.Key
		if p.Cost <= 0 || p.Radius < 0 {
			return fmt.Errorf("power %q: cost %d radius %d", p.ID, p.Cost, p.Radius)
		}
	}
	if err := uniqueIDs("power", ids); err != nil {
		return err
	}
	return uniqueIDs("power key", keys)
}

// LoadPowers loads power definitions from the embedded powers.json file.
func LoadPowers() ([]PowerDef, error) {
	file, err := Load[PowersFile]("powers.json")
	if err != nil {
		return nil, err
	}
	return file.Powers, nil
}
