// Package main is the entry point for the chargeturn battle runner.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/samdwyer/chargeturn/internal/game"
	"github.com/samdwyer/chargeturn/internal/telemetry"
)

func main() {
	var roster string
	var seed int64
	var turns, forecast int
	flag.StringVar(&roster, "roster", "", "roster YAML file (default: embedded roster)")
	flag.Int64Var(&seed, "seed", 12345, "action-selection seed")
	flag.IntVar(&turns, "turns", 0, "turn cap (0 = default)")
	flag.IntVar(&forecast, "forecast", 0, "forecast depth (0 = configured)")
	flag.Parse()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Battle will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	session, err := game.NewSession(game.Config{
		Seed:          seed,
		MaxTurns:      turns,
		ForecastDepth: forecast,
		RosterPath:    roster,
	})
	if err != nil {
		log.Fatalf("Failed to set up battle: %v", err)
	}

	outcome, err := session.Run(ctx)
	if err != nil {
		log.Fatalf("Battle error: %v", err)
	}

	for _, line := range session.Log() {
		fmt.Println(line)
	}
	fmt.Printf("\nOutcome: %s after %d turns\n", outcome, session.Turns())

	if names := session.ForecastNames(); len(names) > 0 {
		fmt.Println("\nNext up:")
		for i, name := range names {
			fmt.Printf("  %2d. %s\n", i+1, name)
		}
	}
}
