// Package generator produces batches of random Othello game transcripts
// for training-corpus files.
package generator

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/artificialis/othello-gen/internal/game"
)

// Generator runs independent random playouts. Each game gets its own
// rand source derived from the base seed and the game index, so a batch
// is reproducible from (seed, count) alone, no matter how many workers
// run it.
type Generator struct {
	seed    int64
	workers int
	logger  zerolog.Logger
}

// New creates a generator. workers bounds how many games run
// concurrently; workers <= 1 means fully sequential generation.
func New(seed int64, workers int, logger zerolog.Logger) *Generator {
	if workers < 1 {
		workers = 1
	}
	return &Generator{
		seed:    seed,
		workers: workers,
		logger:  logger.With().Str("component", "generator").Logger(),
	}
}

// Generate plays count independent games to completion and returns their
// records in batch order. Game i is always driven by the same random
// stream regardless of scheduling, so output is deterministic for a given
// seed. An engine error aborts the whole batch; it indicates a rules bug,
// not a recoverable condition.
func (g *Generator) Generate(ctx context.Context, count int) ([]game.Record, error) {
	records := make([]game.Record, count)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for i := 0; i < count; i++ {
		i := i
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			gameID := uuid.New().String()
			logger := g.logger.With().Str("game_id", gameID).Int("game_index", i).Logger()

			rng := rand.New(rand.NewSource(g.seed + int64(i)))
			engine := game.NewEngine(game.NewRandomSelector(rng), logger)

			record, err := engine.Run()
			if err != nil {
				logger.Error().Err(err).Msg("Playout aborted")
				return err
			}

			logger.Debug().Int("moves", len(record)).Msg("Playout complete")
			records[i] = record
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
