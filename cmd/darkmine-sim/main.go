// Package main plays batches of DarkMine games without a terminal and
// prints a balance report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/joho/godotenv"

	"github.com/samdwyer/darkmine/internal/game"
	"github.com/samdwyer/darkmine/internal/sim"
	"github.com/samdwyer/darkmine/internal/telemetry"
)

var (
	colorTitle    = color.Style{color.FgCyan, color.OpBold}
	colorFinished = color.Style{color.FgGreen}
	colorCapped   = color.Style{color.FgYellow}
	colorScore    = color.Style{color.FgMagenta, color.OpBold}
	colorSubtle   = color.Style{color.FgGray}
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	opts := sim.DefaultOptions()
	flag.IntVar(&opts.Runs, "runs", opts.Runs, "number of games to play")
	flag.Int64Var(&opts.SeedBase, "seed-base", opts.SeedBase, "seed for the first game")
	flag.Int64Var(&opts.SeedStep, "seed-step", opts.SeedStep, "seed increment between games")
	flag.IntVar(&opts.MaxTurns, "max-turns", opts.MaxTurns, "actions per game before giving up")
	flag.Parse()

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, "darkmine-sim")
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	base, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	newConfig := func() game.Config { return base }

	fmt.Println(colorTitle.Sprint("=== DarkMine Simulation Report ==="))
	fmt.Println(colorSubtle.Sprintf("runs=%d max_turns=%d seed_base=%d seed_step=%d",
		opts.Runs, opts.MaxTurns, opts.SeedBase, opts.SeedStep))
	fmt.Println()

	report, err := sim.Run(ctx, opts, newConfig, sim.NewGreedy(base.Powers))
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	for i, r := range report.Runs {
		printRun(i+1, r)
	}
	printAggregate(report)
}

func printRun(index int, r sim.RunResult) {
	status := colorCapped.Sprint("capped")
	detail := ""
	if r.Finished {
		status = colorFinished.Sprint(r.Summary.Cause.String())
		detail = fmt.Sprintf(" coal=%d ore=%d diamonds=%d bats=%d",
			r.Summary.Inventory.Coal, r.Summary.Inventory.Ore,
			r.Summary.Inventory.Diamond, r.Summary.EnemiesDefeated)
	}
	fmt.Printf("run %2d seed=%-6d %-12s score=%s turns=%d explored=%d powers=%d rejected=%d%s\n",
		index, r.Seed, status, colorScore.Sprintf("%d", r.Score),
		r.Turns, r.Explored, r.PowerUses, r.Rejected, detail)
}

func printAggregate(report sim.Report) {
	fmt.Println()
	fmt.Println(colorTitle.Sprint("--- Aggregate ---"))
	fmt.Printf("finished:  %d/%d\n", report.Finished, len(report.Runs))
	fmt.Printf("avg score: %s\n", colorScore.Sprintf("%.1f", report.AvgScore))
	fmt.Printf("avg turns: %.1f\n", report.AvgTurns)
	fmt.Printf("explored:  %.1f cells\n", report.AvgExplored)
	fmt.Printf("best:      %s (seed %d)\n", colorScore.Sprintf("%d", report.MaxScore), report.BestSeed)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when a key is present.
func setupOTelEnv() {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	apiKey := os.Getenv("HONEYCOMB_DARKMINE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DARKMINE_DATASET")
	if dataset == "" {
		dataset = "darkmine-sim"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
