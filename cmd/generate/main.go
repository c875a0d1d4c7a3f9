package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/artificialis/othello-gen/internal/config"
	"github.com/artificialis/othello-gen/internal/generator"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	numGames := flag.Int("num-games", -1, "Number of games to generate (-1 to use config default)")
	output := flag.String("output", "", "Output file path (empty to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to use config default, or wall clock if unset)")
	workers := flag.Int("workers", -1, "Concurrent playout workers (-1 to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *numGames == -1 {
		*numGames = cfg.Generator.NumGames
	}
	if *output == "" {
		*output = cfg.Generator.Output
	}
	if *seed == 0 {
		*seed = cfg.Generator.Seed
	}
	if *workers == -1 {
		*workers = cfg.Generator.Workers
	}
	if *logLevel == "" {
		*logLevel = cfg.Logging.Level
	}

	// Setup logging
	setupLogging(*logLevel, cfg.Logging.Format)

	// Seed 0 means nobody asked for reproducibility; fall back to the clock.
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	log.Info().
		Int("num_games", *numGames).
		Int64("seed", *seed).
		Int("workers", *workers).
		Str("output", *output).
		Msg("Generating Othello games")

	start := time.Now()
	gen := generator.New(*seed, *workers, log.Logger)
	records, err := gen.Generate(context.Background(), *numGames)
	if err != nil {
		log.Fatal().Err(err).Msg("Game generation failed")
	}

	if err := generator.WriteFile(*output, records); err != nil {
		log.Fatal().Err(err).Msg("Failed to write output file")
	}

	totalMoves := 0
	for _, r := range records {
		totalMoves += len(r)
	}

	log.Info().
		Int("games", len(records)).
		Int("total_moves", totalMoves).
		Dur("elapsed", time.Since(start)).
		Str("output", *output).
		Msg("Games saved")
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		// JSON output for pipelines
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
