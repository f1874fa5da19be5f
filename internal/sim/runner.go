package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/darkmine/internal/game"
	"github.com/samdwyer/darkmine/internal/telemetry"
)

// Options controls a batch of simulated games.
type Options struct {
	Runs     int
	SeedBase int64
	SeedStep int64
	MaxTurns int
}

// DefaultOptions returns a small batch suitable for a quick balance check.
func DefaultOptions() Options {
	return Options{Runs: 20, SeedBase: 1, SeedStep: 1, MaxTurns: 1000}
}

// Validate checks that the batch can run.
func (o Options) Validate() error {
	if o.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", o.Runs)
	}
	if o.MaxTurns <= 0 {
		return fmt.Errorf("max turns must be positive, got %d", o.MaxTurns)
	}
	if o.SeedBase == 0 && o.SeedStep == 0 {
		return errors.New("seed 0 picks a random seed; set a non-zero seed base or step")
	}
	return nil
}

// RunResult is the outcome of one simulated game.
type RunResult struct {
	Seed      int64
	Turns     int
	Score     int
	Finished  bool          // false when MaxTurns was reached first
	Summary   *game.Summary // set when Finished
	Rejected  int
	PowerUses int
	Explored  int // cells ever lit when the run stopped
}

// Report aggregates a batch.
type Report struct {
	Runs        []RunResult
	Finished    int
	AvgScore    float64
	AvgTurns    float64
	AvgExplored float64
	MaxScore    int
	BestSeed    int64
}

// Play runs one game with cfg until it ends or maxTurns actions were taken.
// The policy draws from its own source seeded with cfg.Seed.
func Play(ctx context.Context, cfg game.Config, policy Policy, maxTurns int) (RunResult, error) {
	engine, err := game.New(cfg)
	if err != nil {
		return RunResult{}, fmt.Errorf("create engine: %w", err)
	}
	engine.Start(ctx)

	rng := rand.New(rand.NewSource(engine.Seed()))
	result := RunResult{Seed: engine.Seed()}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	for i := 0; i < maxTurns; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		move := policy.Next(engine.Snapshot(now()), rng)
		var r game.Result
		if move.UsePower {
			result.PowerUses++
			r = engine.HandlePower(ctx, move.Power)
		} else {
			r = engine.HandleAction(ctx, move.Direction)
		}

		switch r.Outcome {
		case game.OutcomeRejected:
			result.Rejected++
		case game.OutcomeGameOver:
			result.Explored = engine.Snapshot(now()).Grid.ExploredCount()
			result.Finished = true
			result.Summary = r.Summary
			result.Score = r.Summary.Score
			result.Turns = r.Summary.Turns
			return result, nil
		}
	}

	snap := engine.Snapshot(now())
	result.Score = snap.Player.Score
	result.Turns = snap.Turns
	result.Explored = snap.Grid.ExploredCount()
	return result, nil
}

// Run plays opts.Runs games with seeds SeedBase, SeedBase+SeedStep, ...
// newConfig is called once per game so every run gets fresh state.
func Run(ctx context.Context, opts Options, newConfig func() game.Config, policy Policy) (Report, error) {
	if err := opts.Validate(); err != nil {
		return Report{}, err
	}

	ctx, span := telemetry.Tracer("sim").Start(ctx, "sim.batch")
	defer span.End()

	var report Report
	totalScore, totalTurns, totalExplored := 0, 0, 0
	for i := 0; i < opts.Runs; i++ {
		cfg := newConfig()
		cfg.Seed = opts.SeedBase + int64(i)*opts.SeedStep
		if cfg.Seed == 0 {
			return report, fmt.Errorf("run %d: seed 0 is reserved for random seeds", i)
		}

		res, err := Play(ctx, cfg, policy, opts.MaxTurns)
		if err != nil {
			return report, fmt.Errorf("run %d (seed %d): %w", i, cfg.Seed, err)
		}

		report.Runs = append(report.Runs, res)
		if res.Finished {
			report.Finished++
		}
		if i == 0 || res.Score > report.MaxScore {
			report.MaxScore = res.Score
			report.BestSeed = res.Seed
		}
		totalScore += res.Score
		totalTurns += res.Turns
		totalExplored += res.Explored
	}

	report.AvgScore = float64(totalScore) / float64(len(report.Runs))
	report.AvgTurns = float64(totalTurns) / float64(len(report.Runs))
	report.AvgExplored = float64(totalExplored) / float64(len(report.Runs))

	span.SetAttributes(
		attribute.Int("sim.runs", len(report.Runs)),
		attribute.Int("sim.finished", report.Finished),
		attribute.Float64("sim.avg_score", report.AvgScore),
		attribute.Int("sim.max_score", report.MaxScore),
	)
	return report, nil
}
