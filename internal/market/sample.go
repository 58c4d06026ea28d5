package market

import (
	"math/rand"

	"github.com/iwvelando/market-sim/pkg/mathutil"
)

// Sample draws seg.Count integer prices from the segment's distribution
// using rng. Draws advance the rng draw-by-draw in a fixed order, so a
// given rng state always yields the same values. The segment is validated
// before any draw occurs.
func Sample(seg Segment, rng *rand.Rand) ([]int, error) {
	if err := seg.Validate(); err != nil {
		return nil, err
	}
	if seg.Count == 0 {
		return nil, nil
	}

	vals := make([]int, 0, seg.Count)
	switch seg.distribution() {
	case DistributionUniform:
		for i := 0; i < seg.Count; i++ {
			vals = append(vals, seg.PriceMin+rng.Intn(seg.span()+1))
		}
	case DistributionNormal:
		mean := seg.normalMean()
		sd := seg.normalStdDev()
		for i := 0; i < seg.Count; i++ {
			x := mean + sd*rng.NormFloat64()
			clamped := mathutil.ClampFloat(x, float64(seg.PriceMin), float64(seg.PriceMax))
			vals = append(vals, mathutil.RoundToInt(clamped))
		}
	}
	return vals, nil
}
