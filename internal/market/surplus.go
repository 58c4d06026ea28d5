package market

import "github.com/iwvelando/market-sim/pkg/mathutil"

// MaxSurplus sums WTP minus cost over the first quantity matched units.
// The quantity is clipped to the shorter curve, so a caller passing a
// stale or oversized value gets the surplus of the trades that actually
// exist. Zero when quantity is zero; non-negative whenever quantity comes
// from FindEquilibrium, since only profitable pairs are matched.
func MaxSurplus(demand, supply []PricePoint, quantity int) float64 {
	n := mathutil.MinInt(quantity, mathutil.MinInt(len(demand), len(supply)))
	if n <= 0 {
		return 0
	}

	total := 0
	for i := 0; i < n; i++ {
		total += demand[i].Price - supply[i].Price
	}
	return float64(total)
}
