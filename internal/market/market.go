// Package market implements the single-good market model: sampling
// participant populations from segments, building step demand and supply
// curves, matching the equilibrium, and computing surplus. All functions
// are pure and fully deterministic given the caller's RNG state.
package market

import (
	"fmt"

	"github.com/iwvelando/market-sim/pkg/constants"
)

// Distribution selects how prices are drawn within a segment.
type Distribution string

const (
	// DistributionUniform draws integer prices uniformly over the segment
	// bounds, inclusive.
	DistributionUniform Distribution = "uniform"

	// DistributionNormal draws from a normal distribution clamped into the
	// segment bounds and rounded to integers.
	DistributionNormal Distribution = "normal"
)

// Side identifies which half of the market a value belongs to.
type Side string

const (
	SideBuyer  Side = "buyer"
	SideSeller Side = "seller"
)

// Segment describes one homogeneous sub-population: how many participants
// it contributes and how their prices are distributed. A buyer segment
// produces willingness-to-pay values, a seller segment produces costs.
// Mean and StdDev apply to normal segments only; when unset they default
// to the range midpoint and a quarter of the range width.
type Segment struct {
	Count        int          `json:"count"`
	PriceMin     int          `json:"price_min"`
	PriceMax     int          `json:"price_max"`
	Distribution Distribution `json:"distribution,omitempty"`
	Mean         *float64     `json:"mean,omitempty"`
	StdDev       *float64     `json:"stddev,omitempty"`
}

// PricePoint is one step of a sorted curve. Quantity is the 1-based rank
// of the participant within the curve and Price the participant's WTP or
// cost.
type PricePoint struct {
	Quantity int `json:"q"`
	Price    int `json:"p"`
}

// Equilibrium is the market-clearing point. Quantity zero with a nil
// Price signals that no mutually beneficial trade exists.
type Equilibrium struct {
	Quantity int      `json:"quantity"`
	Price    *float64 `json:"price"`
}

// Surplus aggregates the maximum achievable gain from trade at the
// equilibrium quantity.
type Surplus struct {
	TotalMax float64 `json:"total_max"`
}

// Limits caps population construction to guard against resource
// exhaustion from careless or malicious input.
type Limits struct {
	MaxBuyers   int
	MaxSellers  int
	MaxSegments int
	MaxPrice    int
}

// DefaultLimits returns the ceilings applied when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxBuyers:   constants.DefaultMaxBuyers,
		MaxSellers:  constants.DefaultMaxSellers,
		MaxSegments: constants.DefaultMaxSegments,
		MaxPrice:    constants.DefaultMaxPrice,
	}
}

// PopulationSpec describes the participants of one simulation in either
// flat or segmented form. Segment lists take precedence per side: a side
// with segments ignores its flat parameters, a side without them falls
// back to a single implicit uniform segment.
type PopulationSpec struct {
	NumBuyers  int `json:"num_buyers,omitempty"`
	NumSellers int `json:"num_sellers,omitempty"`
	MinWTP     int `json:"min_wtp,omitempty"`
	MaxWTP     int `json:"max_wtp,omitempty"`
	MinCost    int `json:"min_cost,omitempty"`
	MaxCost    int `json:"max_cost,omitempty"`

	BuyerSegments  []Segment `json:"buyer_segments,omitempty"`
	SellerSegments []Segment `json:"seller_segments,omitempty"`

	Seed *int64 `json:"seed,omitempty"`
}

// distribution returns the segment's distribution tag, defaulting to
// uniform when unset.
func (s Segment) distribution() Distribution {
	if s.Distribution == "" {
		return DistributionUniform
	}
	return s.Distribution
}

// span is the width of the segment's price range.
func (s Segment) span() int {
	return s.PriceMax - s.PriceMin
}

// normalMean returns the configured mean or the range midpoint.
func (s Segment) normalMean() float64 {
	if s.Mean != nil {
		return *s.Mean
	}
	return float64(s.PriceMin+s.PriceMax) / 2
}

// normalStdDev returns the configured standard deviation or a quarter of
// the range width.
func (s Segment) normalStdDev() float64 {
	if s.StdDev != nil {
		return *s.StdDev
	}
	return float64(s.span()) / 4
}

// Validate checks the segment's count, bounds, and distribution
// parameters. It never draws any values; population construction calls
// this before sampling so that invalid input fails fast.
func (s Segment) Validate() error {
	if s.Count < 0 {
		return &Error{
			Kind: KindInvalidSegment,
			Msg:  fmt.Sprintf("segment size must be >= 0, got %d", s.Count),
		}
	}
	if s.PriceMin > s.PriceMax {
		return &Error{
			Kind: KindInvalidSegment,
			Msg:  fmt.Sprintf("invalid price range: price_min (%d) > price_max (%d)", s.PriceMin, s.PriceMax),
		}
	}
	switch s.distribution() {
	case DistributionUniform:
	case DistributionNormal:
		if s.Mean != nil && (*s.Mean < float64(s.PriceMin) || *s.Mean > float64(s.PriceMax)) {
			return &Error{
				Kind: KindInvalidDistribution,
				Msg:  fmt.Sprintf("normal distribution mean (%g) must be between price_min (%d) and price_max (%d)", *s.Mean, s.PriceMin, s.PriceMax),
			}
		}
		if s.StdDev != nil && *s.StdDev <= 0 {
			return &Error{
				Kind: KindInvalidDistribution,
				Msg:  fmt.Sprintf("normal distribution standard deviation must be > 0, got %g", *s.StdDev),
			}
		}
	default:
		return &Error{
			Kind: KindInvalidSegment,
			Msg:  fmt.Sprintf("segment distribution must be %q or %q, got %q", DistributionUniform, DistributionNormal, s.Distribution),
		}
	}
	return nil
}
