package market

import "github.com/iwvelando/market-sim/pkg/mathutil"

// FindEquilibrium walks the sorted curves for the largest quantity at
// which the marginal buyer still meets the marginal seller. Demand is
// non-increasing and supply non-decreasing, so feasibility is monotonic
// and the walk stops at the first failing pair. The clearing price is the
// midpoint of the marginal matched pair and may be fractional; when no
// pair matches the price is nil.
func FindEquilibrium(demand, supply []PricePoint) Equilibrium {
	n := mathutil.MinInt(len(demand), len(supply))

	quantity := 0
	for i := 0; i < n; i++ {
		if demand[i].Price < supply[i].Price {
			break
		}
		quantity = i + 1
	}

	if quantity == 0 {
		return Equilibrium{}
	}

	price := mathutil.Midpoint(demand[quantity-1].Price, supply[quantity-1].Price)
	return Equilibrium{Quantity: quantity, Price: &price}
}
