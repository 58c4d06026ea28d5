package market

import (
	"fmt"
	"math/rand"
)

// BuildPopulation converts spec into the buyer WTP and seller cost lists
// for one simulation. Both sides are validated in full before any draw
// happens, then buyers are sampled before sellers on the one shared rng
// stream, each side segment-by-segment in declared order. That order is
// part of the reproducibility contract: the same seed must always map
// the same draws to the same participants.
func BuildPopulation(spec PopulationSpec, limits Limits, rng *rand.Rand) (buyers, sellers []int, err error) {
	if err := validateSide(SideBuyer, spec, limits); err != nil {
		return nil, nil, err
	}
	if err := validateSide(SideSeller, spec, limits); err != nil {
		return nil, nil, err
	}

	buyers, err = sampleSide(SideBuyer, spec, rng)
	if err != nil {
		return nil, nil, err
	}
	sellers, err = sampleSide(SideSeller, spec, rng)
	if err != nil {
		return nil, nil, err
	}

	if len(buyers) == 0 && len(sellers) == 0 {
		return nil, nil, &Error{
			Kind: KindEmptyPopulation,
			Msg:  "population has no buyers and no sellers",
		}
	}

	return buyers, sellers, nil
}

// sideSegments returns the segments that generate one side of the market
// and whether they came from an explicit segment list. A side without
// segments falls back to a single implicit uniform segment built from the
// flat parameters.
func (s PopulationSpec) sideSegments(side Side) ([]Segment, bool) {
	if side == SideBuyer {
		if len(s.BuyerSegments) > 0 {
			return s.BuyerSegments, true
		}
		return []Segment{{Count: s.NumBuyers, PriceMin: s.MinWTP, PriceMax: s.MaxWTP}}, false
	}
	if len(s.SellerSegments) > 0 {
		return s.SellerSegments, true
	}
	return []Segment{{Count: s.NumSellers, PriceMin: s.MinCost, PriceMax: s.MaxCost}}, false
}

// validateSide checks every segment of one market side plus the side's
// ceilings: segment count, total participant count, and price bounds.
func validateSide(side Side, spec PopulationSpec, limits Limits) error {
	segments, segmented := spec.sideSegments(side)

	if segmented && limits.MaxSegments > 0 && len(segments) > limits.MaxSegments {
		return &Error{
			Kind:  KindPopulationTooLarge,
			Field: fieldName(side, segmented, -1),
			Msg:   fmt.Sprintf("%d segments exceeds the maximum of %d", len(segments), limits.MaxSegments),
		}
	}

	total := 0
	for i, seg := range segments {
		field := fieldName(side, segmented, i)
		if err := seg.Validate(); err != nil {
			return withField(err, field)
		}
		if limits.MaxPrice > 0 && seg.PriceMax > limits.MaxPrice {
			return &Error{
				Kind:  KindInvalidSegment,
				Field: field,
				Msg:   fmt.Sprintf("price_max (%d) exceeds the maximum price of %d", seg.PriceMax, limits.MaxPrice),
			}
		}
		total += seg.Count
	}

	max := limits.MaxBuyers
	if side == SideSeller {
		max = limits.MaxSellers
	}
	if max > 0 && total > max {
		return &Error{
			Kind:  KindPopulationTooLarge,
			Field: fieldName(side, segmented, -1),
			Msg:   fmt.Sprintf("%d %ss exceeds the maximum of %d", total, side, max),
		}
	}

	return nil
}

// sampleSide concatenates samples from one side's segments in declared
// order on the shared rng stream.
func sampleSide(side Side, spec PopulationSpec, rng *rand.Rand) ([]int, error) {
	segments, segmented := spec.sideSegments(side)

	var vals []int
	for i, seg := range segments {
		sampled, err := Sample(seg, rng)
		if err != nil {
			return nil, withField(err, fieldName(side, segmented, i))
		}
		vals = append(vals, sampled...)
	}
	return vals, nil
}

// fieldName labels validation errors with the offending input: the
// segment list position for segmented sides, the flat parameter group
// otherwise. A negative index refers to the side as a whole.
func fieldName(side Side, segmented bool, index int) string {
	if !segmented {
		return string(side) + "s"
	}
	if index < 0 {
		return string(side) + "_segments"
	}
	return fmt.Sprintf("%s_segments[%d]", side, index)
}
