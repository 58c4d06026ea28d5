package sim

import (
	"context"
	"fmt"

	"github.com/iwvelando/market-sim/internal/market"
	"github.com/iwvelando/market-sim/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunBatch executes one simulation per seed, at most concurrency at a
// time, and returns the results in seed order. Every run gets its own
// copy of spec with that seed, so a shared spec never needs a seed of
// its own. The first failing run cancels the rest; its error wraps the
// failing seed and keeps the market error kind intact.
func RunBatch(ctx context.Context, logger *zap.Logger, spec market.PopulationSpec, limits market.Limits, seeds []int64, concurrency int) ([]*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency <= 0 {
		concurrency = constants.DefaultBatchConcurrency
	}

	logger.Debug("starting batch",
		zap.String("op", "sim.RunBatch"),
		zap.Int("runs", len(seeds)),
		zap.Int("concurrency", concurrency),
	)

	results := make([]*Result, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			s := seed
			runSpec := spec
			runSpec.Seed = &s

			result, err := Run(logger, runSpec, limits)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
