// Package main is the entry point for DarkMine.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"github.com/samdwyer/darkmine/internal/game"
	"github.com/samdwyer/darkmine/internal/gamedata"
	"github.com/samdwyer/darkmine/internal/telemetry"
	"github.com/samdwyer/darkmine/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DARKMINE_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("DarkMine needs an interactive terminal; use darkmine-sim for headless runs")
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()
	setupLocale()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, "darkmine")
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
		// Continue without telemetry - game still works
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	engine, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	tiles, err := gamedata.LoadTileRegistry()
	if err != nil {
		log.Fatalf("Failed to load tiles: %v", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}

	app := ui.NewApp(screen, engine, tiles, cfg.Enemies, cfg.Powers)
	if err := app.Run(ctx); err != nil && err != context.Canceled {
		log.Printf("Game error: %v", err)
	}
	log.Printf("Seed was %d", engine.Seed())
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("HONEYCOMB_DARKMINE_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DARKMINE_DATASET")
	if dataset == "" {
		dataset = "darkmine" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

// setupLocale loads a gettext catalog when DARKMINE_LOCALE is set.
// Catalogs live in DARKMINE_LOCALES_DIR/<lang>/LC_MESSAGES/default.po.
func setupLocale() {
	lang := os.Getenv("DARKMINE_LOCALE")
	if lang == "" {
		return
	}
	dir := os.Getenv("DARKMINE_LOCALES_DIR")
	if dir == "" {
		dir = "locales"
	}
	gotext.Configure(dir, lang, "default")
}
