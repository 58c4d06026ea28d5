// Package sim orchestrates complete market simulations. A run seeds the
// random stream, builds the buyer and seller populations, sorts both
// curves, and collects the equilibrium, surplus, and market analysis
// into a single result.
package sim

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/market-sim/internal/market"
	"github.com/iwvelando/market-sim/pkg/mathutil"
	"go.uber.org/zap"
)

// Result holds everything one simulation produced.
type Result struct {
	ID          string              `json:"simulation_id"`
	Demand      []market.PricePoint `json:"demand"`
	Supply      []market.PricePoint `json:"supply"`
	Equilibrium market.Equilibrium  `json:"equilibrium"`
	Surplus     market.Surplus      `json:"surplus"`
	Analysis    market.Analysis     `json:"analysis"`
	Metadata    Metadata            `json:"metadata"`
}

// Metadata describes how a result was produced. Seed is always the seed
// actually used; SeedProvided records whether it came from the caller or
// from the clock, since only caller-provided seeds make a run
// reproducible.
type Metadata struct {
	Seed            int64   `json:"seed"`
	SeedProvided    bool    `json:"seed_provided"`
	ExecutionTimeMs float64 `json:"execution_time_ms"`
	TotalBuyers     int     `json:"total_buyers"`
	TotalSellers    int     `json:"total_sellers"`
	TradesPossible  bool    `json:"trades_possible"`
	EfficiencyRatio float64 `json:"efficiency_ratio"`
}

// Run executes one simulation of spec under the given ceilings. All
// randomness comes from a run-local source, so concurrent runs never
// share state and the same seed always reproduces the same market.
func Run(logger *zap.Logger, spec market.PopulationSpec, limits market.Limits) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	seed, provided := resolveSeed(spec.Seed)
	rng := rand.New(rand.NewSource(seed))

	buyers, sellers, err := market.BuildPopulation(spec, limits, rng)
	if err != nil {
		return nil, err
	}

	demand := market.BuildDemand(buyers)
	supply := market.BuildSupply(sellers)
	eq := market.FindEquilibrium(demand, supply)
	surplus := market.MaxSurplus(demand, supply, eq.Quantity)
	analysis := market.Analyze(demand, supply)

	elapsed := time.Since(start)
	result := &Result{
		ID:          uuid.NewString(),
		Demand:      demand,
		Supply:      supply,
		Equilibrium: eq,
		Surplus:     market.Surplus{TotalMax: surplus},
		Analysis:    analysis,
		Metadata: Metadata{
			Seed:            seed,
			SeedProvided:    provided,
			ExecutionTimeMs: float64(elapsed.Microseconds()) / 1000.0,
			TotalBuyers:     len(buyers),
			TotalSellers:    len(sellers),
			TradesPossible:  eq.Quantity > 0,
			EfficiencyRatio: mathutil.Ratio(eq.Quantity, mathutil.MinInt(len(buyers), len(sellers))),
		},
	}

	logger.Debug("simulation complete",
		zap.String("op", "sim.Run"),
		zap.String("simulationId", result.ID),
		zap.Int64("seed", seed),
		zap.Bool("seedProvided", provided),
		zap.Int("buyers", len(buyers)),
		zap.Int("sellers", len(sellers)),
		zap.Int("quantity", eq.Quantity),
	)

	return result, nil
}

// resolveSeed picks the rng seed for one run: the caller's value when
// set, otherwise the current time in nanoseconds.
func resolveSeed(seed *int64) (int64, bool) {
	if seed != nil {
		return *seed, true
	}
	return time.Now().UnixNano(), false
}
