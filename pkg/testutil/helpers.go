// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/market-sim/internal/sim"
)

// FindBySeed finds a result by the seed it ran with.
// Returns a pointer to the result if found, nil otherwise.
func FindBySeed(results []*sim.Result, seed int64) *sim.Result {
	for _, result := range results {
		if result != nil && result.Metadata.Seed == seed {
			return result
		}
	}
	return nil
}

// Int64Ptr returns a pointer to v, for populating optional seed fields.
func Int64Ptr(v int64) *int64 {
	return &v
}

// Float64Ptr returns a pointer to v, for populating optional
// distribution parameters.
func Float64Ptr(v float64) *float64 {
	return &v
}
