package market

import "github.com/iwvelando/market-sim/pkg/mathutil"

// Analysis summarizes the structure of one market's sorted curves:
// side sizes, price ranges and averages, whether the best buyer can
// afford the cheapest seller, and how much of the trade potential the
// equilibrium realizes.
type Analysis struct {
	DemandSize          int        `json:"demand_size"`
	SupplySize          int        `json:"supply_size"`
	DemandRange         PriceRange `json:"demand_range"`
	SupplyRange         PriceRange `json:"supply_range"`
	DemandAvg           float64    `json:"demand_avg"`
	SupplyAvg           float64    `json:"supply_avg"`
	PriceOverlap        bool       `json:"price_overlap"`
	PotentialTrades     int        `json:"potential_trades"`
	EquilibriumQuantity int        `json:"equilibrium_quantity"`
	EquilibriumPrice    *float64   `json:"equilibrium_price"`
	MarketEfficiency    float64    `json:"market_efficiency"`
}

// PriceRange is the inclusive min/max of one curve's prices. Zero for an
// empty curve.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Analyze computes descriptive statistics over sorted demand and supply
// curves. It reuses FindEquilibrium, so the reported equilibrium always
// agrees with the matcher.
func Analyze(demand, supply []PricePoint) Analysis {
	analysis := Analysis{
		DemandSize:      len(demand),
		SupplySize:      len(supply),
		DemandRange:     curveRange(demand),
		SupplyRange:     curveRange(supply),
		PotentialTrades: mathutil.MinInt(len(demand), len(supply)),
	}

	if len(demand) > 0 {
		analysis.DemandAvg = curveAvg(demand)
	}
	if len(supply) > 0 {
		analysis.SupplyAvg = curveAvg(supply)
	}

	if len(demand) > 0 && len(supply) > 0 {
		// Best buyer is demand[0] (highest WTP), cheapest seller supply[0].
		analysis.PriceOverlap = demand[0].Price >= supply[0].Price

		eq := FindEquilibrium(demand, supply)
		analysis.EquilibriumQuantity = eq.Quantity
		analysis.EquilibriumPrice = eq.Price
		analysis.MarketEfficiency = mathutil.Ratio(eq.Quantity, analysis.PotentialTrades)
	}

	return analysis
}

func curveRange(points []PricePoint) PriceRange {
	if len(points) == 0 {
		return PriceRange{}
	}
	r := PriceRange{Min: points[0].Price, Max: points[0].Price}
	for _, pt := range points[1:] {
		r.Min = mathutil.MinInt(r.Min, pt.Price)
		r.Max = mathutil.MaxInt(r.Max, pt.Price)
	}
	return r
}

func curveAvg(points []PricePoint) float64 {
	total := 0
	for _, pt := range points {
		total += pt.Price
	}
	return float64(total) / float64(len(points))
}
