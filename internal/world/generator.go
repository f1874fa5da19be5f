package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/darkmine/internal/telemetry"
)

// Weight is the probability that a freshly generated cell holds a given tile type.
type Weight struct {
	Type        TileType
	Probability float64
}

// Distribution is an ordered list of tile weights. Each roll is compared
// against the running sum in order; whatever is left over becomes rock.
type Distribution []Weight

// DefaultDistribution returns the standard mine composition.
func DefaultDistribution() Distribution {
	return Distribution{
		{Type: TileDiamond, Probability: 0.01},
		{Type: TileOre, Probability: 0.08},
		{Type: TileCoal, Probability: 0.15},
		{Type: TileTrap, Probability: 0.05},
		{Type: TileLight, Probability: 0.03},
	}
}

// Validate checks that no probability is negative and that they sum to at most 1.
func (d Distribution) Validate() error {
	total := 0.0
	for _, w := range d {
		if w.Probability < 0 {
			return fmt.Errorf("negative probability %v for %s", w.Probability, w.Type)
		}
		if w.Type == TileEmpty {
			return errors.New("empty tiles cannot be generated")
		}
		total += w.Probability
	}
	if total > 1 {
		return fmt.Errorf("tile probabilities sum to %v, want <= 1", total)
	}
	return nil
}

// Pick maps a uniform roll in [0,1) to a tile type.
func (d Distribution) Pick(roll float64) TileType {
	cumulative := 0.0
	for _, w := range d {
		cumulative += w.Probability
		if roll < cumulative {
			return w.Type
		}
	}
	return TileRock
}

// Generate builds a width x height grid. The start cell is always empty and
// every other cell is drawn independently from dist using one roll of rng.
// No connectivity is guaranteed; rock can always be mined through.
func Generate(ctx context.Context, rng *rand.Rand, width, height int, start Position, dist Distribution) *Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Position{X: x, Y: y}
			if p == start {
				g.Tiles[y][x] = Tile{Type: TileEmpty}
				continue
			}
			g.Tiles[y][x].Type = dist.Pick(rng.Float64())
		}
	}

	span.SetAttributes(
		attribute.Int("grid.width", width),
		attribute.Int("grid.height", height),
		attribute.Int("grid.coal", g.Count(TileCoal)),
		attribute.Int("grid.ore", g.Count(TileOre)),
		attribute.Int("grid.diamond", g.Count(TileDiamond)),
		attribute.Int("grid.trap", g.Count(TileTrap)),
		attribute.Int("grid.light", g.Count(TileLight)),
		attribute.Int64("grid.generation_us", time.Since(startTime).Microseconds()),
	)

	return g
}
