// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/market-sim/internal/market"
)

// SegmentWarnings reports non-fatal oddities in a segment list that a
// user probably wants to know about before trusting the results. Hard
// validation errors stay with the market package; these are advisory
// only.
func SegmentWarnings(side string, segments []market.Segment) []string {
	var warnings []string

	for i, seg := range segments {
		label := fmt.Sprintf("%s segment %d", side, i)

		if seg.Count == 0 {
			warnings = append(warnings, fmt.Sprintf("%s has count 0 and contributes no participants", label))
		}
		if seg.Count > 0 && seg.PriceMin == seg.PriceMax {
			warnings = append(warnings, fmt.Sprintf("%s price range is a single value (%d); every participant will share one price", label, seg.PriceMin))
		}
		if seg.Distribution == market.DistributionNormal && seg.StdDev != nil && *seg.StdDev > float64(seg.PriceMax-seg.PriceMin) {
			warnings = append(warnings, fmt.Sprintf("%s standard deviation (%g) exceeds the price range width; most draws will clamp to the bounds", label, *seg.StdDev))
		}
	}

	return warnings
}

// FlatRangeWarning reports whether a flat-form price range collapses to
// a single value. Returns an empty string when the range is fine.
func FlatRangeWarning(side string, min, max int) string {
	if min == max && max != 0 {
		return fmt.Sprintf("%s price range is a single value; every %s will share one price", side, side)
	}
	return ""
}
