package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/world"
)

// SeedEnv names the environment variable read by ConfigFromEnv.
const SeedEnv = "DARKMINE_SEED"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mine generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width        int
	Height       int
	Distribution world.Distribution

	// Clock stamps mining effects. Defaults to time.Now.
	Clock func() time.Time

	Enemies *gamedata.EnemyRegistry
	Powers  *gamedata.PowerRegistry
	Player  *gamedata.PlayerDef
}

// DefaultConfig returns the standard 25x25 mine with the embedded game data.
func DefaultConfig() Config {
	return Config{
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
		Distribution: world.DefaultDistribution(),
		Clock:        time.Now,
		Enemies:      gamedata.MustLoadEnemyRegistry(),
		Powers:       gamedata.MustLoadPowerRegistry(),
		Player:       gamedata.MustLoadPlayer(),
	}
}

// ConfigFromEnv returns DefaultConfig with the seed taken from DARKMINE_SEED when set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	raw := os.Getenv(SeedEnv)
	if raw == "" {
		return cfg, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", SeedEnv, err)
	}
	cfg.Seed = seed
	return cfg, nil
}

// Validate reports configuration that would break the engine's invariants.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid size %dx%d must be positive", c.Width, c.Height)
	}
	if err := c.Distribution.Validate(); err != nil {
		return fmt.Errorf("tile distribution: %w", err)
	}
	if c.Player == nil {
		return errors.New("missing player definition")
	}
	if c.Powers == nil {
		return errors.New("missing power definitions")
	}
	for _, p := range PowerTypes() {
		if c.Powers.GetByID(p.String()) == nil {
			return fmt.Errorf("missing power definition %q", p)
		}
	}
	return nil
}
