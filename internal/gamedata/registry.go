package gamedata

import (
	"errors"
	"math/rand"
	"sort"
)

// EnemyRegistry holds the enemy definitions and picks which one spawns.
type EnemyRegistry struct {
	enemies    []EnemyDef
	byID       map[string]int
	cumulative []int // running spawn weight, cumulative[i] covers enemies[:i+1]
}

// NewEnemyRegistry indexes enemy definitions by id and spawn weight.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	r := &EnemyRegistry{
		enemies:    enemies,
		byID:       make(map[string]int, len(enemies)),
		cumulative: make([]int, len(enemies)),
	}
	total := 0
	for i, e := range enemies {
		r.byID[e.ID] = i
		total += max(e.SpawnWeight, 0)
		r.cumulative[i] = total
	}
	return r
}

// LoadEnemyRegistry builds a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("gamedata: enemies.json defines no enemies")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

func (r *EnemyRegistry) totalWeight() int {
	if len(r.cumulative) == 0 {
		return 0
	}
	return r.cumulative[len(r.cumulative)-1]
}

// SpawnRandom picks an enemy definition with probability proportional to
// its spawn weight. With a single definition no random number is consumed,
// so the mine layout for a seed only changes once a second creature exists.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	total := r.totalWeight()
	if total <= 0 {
		return nil
	}
	if len(r.enemies) == 1 {
		return &r.enemies[0]
	}

	roll := rng.Intn(total)
	i := sort.Search(len(r.cumulative), func(i int) bool { return r.cumulative[i] > roll })
	return &r.enemies[i]
}

// GetByID returns the enemy definition with the given id, or nil.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.enemies[i]
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// PowerRegistry
// =============================================================================

// PowerRegistry holds loaded power definitions keyed by ID.
type PowerRegistry struct {
	powers map[string]*PowerDef
	all    []PowerDef
}

// NewPowerRegistry creates a registry from loaded power definitions.
func NewPowerRegistry(powers []PowerDef) *PowerRegistry {
	registry := &PowerRegistry{
		powers: make(map[string]*PowerDef),
		all:    powers,
	}
	for i := range powers {
		registry.powers[powers[i].ID] = &powers[i]
	}
	return registry
}

// LoadPowerRegistry loads and creates a registry from the embedded powers.json.
func LoadPowerRegistry() (*PowerRegistry, error) {
	powers, err := LoadPowers()
	if err != nil {
		return nil, err
	}
	if len(powers) == 0 {
		return nil, errors.New("gamedata: powers.json defines no powers")
	}
	return NewPowerRegistry(powers), nil
}

// MustLoadPowerRegistry loads a registry, panicking on error.
func MustLoadPowerRegistry() *PowerRegistry {
	registry, err := LoadPowerRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the power definition with the given ID, or nil if not found.
func (r *PowerRegistry) GetByID(id string) *PowerDef {
	return r.powers[id]
}

// GetByKey returns the power bound to a key, or nil.
func (r *PowerRegistry) GetByKey(key string) *PowerDef {
	for i := range r.all {
		if r.all[i].Key == key {
			return &r.all[i]
		}
	}
	return nil
}

// All returns all power definitions.
func (r *PowerRegistry) All() []PowerDef {
	return r.all
}

// Count returns the number of powers in the registry.
func (r *PowerRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// TileRegistry
// =============================================================================

// TileRegistry maps tile ids to their display definitions.
type TileRegistry struct {
	tiles map[string]*TileDef
}

// NewTileRegistry creates a registry from loaded tile definitions.
func NewTileRegistry(tiles []TileDef) *TileRegistry {
	registry := &TileRegistry{tiles: make(map[string]*TileDef, len(tiles))}
	for i := range tiles {
		registry.tiles[tiles[i].ID] = &tiles[i]
	}
	return registry
}

// LoadTileRegistry loads and creates a registry from the embedded tiles.json.
func LoadTileRegistry() (*TileRegistry, error) {
	tiles, err := LoadTiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, errors.New("gamedata: tiles.json defines no tiles")
	}
	return NewTileRegistry(tiles), nil
}

// MustLoadTileRegistry loads a registry, panicking on error.
func MustLoadTileRegistry() *TileRegistry {
	registry, err := LoadTileRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the tile definition with the given ID, or nil if not found.
func (r *TileRegistry) GetByID(id string) *TileDef {
	return r.tiles[id]
}

// Count returns the number of tile definitions in the registry.
func (r *TileRegistry) Count() int {
	return len(r.tiles)
}
