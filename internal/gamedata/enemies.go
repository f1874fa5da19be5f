package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "gloom_bat")
	Name        string `json:"name"`        // Display name (e.g., "Gloom Bat")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "b")
	Color       string `json:"color"`       // Hex color code (e.g., "#9B59B6")
	HP          int    `json:"hp"`          // Starting hit points
	Damage      int    `json:"damage"`      // Damage dealt per contact attack
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return []rune(e.Glyph)[0]
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	return colorOr(e.Color, tcell.ColorPurple)
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

func (f *EnemiesFile) validate() error {
	ids := make([]string, len(f.Enemies))
	for i, e := range f.Enemies {
		ids[i] = e.ID
		if e.HP <= 0 {
			return fmt.Errorf("enemy %q: hp must be positive, got %d", e.ID, e.HP)
		}
		if e.Damage < 0 || e.SpawnWeight < 0 {
			return fmt.Errorf("enemy %q: negative damage or spawn weight", e.ID)
		}
	}
	return uniqueIDs("enemy", ids)
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
