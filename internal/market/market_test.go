package market

import (
	"errors"
	"testing"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestSegmentValidate(t *testing.T) {
	tests := []struct {
		name     string
		segment  Segment
		wantKind ErrorKind
	}{
		{
			name:    "valid uniform segment",
			segment: Segment{Count: 5, PriceMin: 10, PriceMax: 40},
		},
		{
			name:    "valid explicit uniform segment",
			segment: Segment{Count: 5, PriceMin: 10, PriceMax: 40, Distribution: DistributionUniform},
		},
		{
			name:    "valid normal segment with defaults",
			segment: Segment{Count: 5, PriceMin: 10, PriceMax: 40, Distribution: DistributionNormal},
		},
		{
			name: "valid normal segment with explicit parameters",
			segment: Segment{
				Count: 5, PriceMin: 10, PriceMax: 40,
				Distribution: DistributionNormal,
				Mean:         floatPtr(25), StdDev: floatPtr(7.5),
			},
		},
		{
			name:    "zero count is valid",
			segment: Segment{Count: 0, PriceMin: 10, PriceMax: 40},
		},
		{
			name:    "degenerate price range is valid",
			segment: Segment{Count: 3, PriceMin: 20, PriceMax: 20},
		},
		{
			name:     "negative count",
			segment:  Segment{Count: -1, PriceMin: 10, PriceMax: 40},
			wantKind: KindInvalidSegment,
		},
		{
			name:     "inverted price range",
			segment:  Segment{Count: 5, PriceMin: 40, PriceMax: 10},
			wantKind: KindInvalidSegment,
		},
		{
			name:     "unknown distribution",
			segment:  Segment{Count: 5, PriceMin: 10, PriceMax: 40, Distribution: "pareto"},
			wantKind: KindInvalidSegment,
		},
		{
			name: "non-positive stddev",
			segment: Segment{
				Count: 5, PriceMin: 10, PriceMax: 40,
				Distribution: DistributionNormal, StdDev: floatPtr(0),
			},
			wantKind: KindInvalidDistribution,
		},
		{
			name: "negative stddev",
			segment: Segment{
				Count: 5, PriceMin: 10, PriceMax: 40,
				Distribution: DistributionNormal, StdDev: floatPtr(-2),
			},
			wantKind: KindInvalidDistribution,
		},
		{
			name: "mean below range",
			segment: Segment{
				Count: 5, PriceMin: 10, PriceMax: 40,
				Distribution: DistributionNormal, Mean: floatPtr(5),
			},
			wantKind: KindInvalidDistribution,
		},
		{
			name: "mean above range",
			segment: Segment{
				Count: 5, PriceMin: 10, PriceMax: 40,
				Distribution: DistributionNormal, Mean: floatPtr(41),
			},
			wantKind: KindInvalidDistribution,
		},
		{
			name: "stddev ignored for uniform",
			segment: Segment{
				Count: 5, PriceMin: 10, PriceMax: 40,
				Distribution: DistributionUniform, StdDev: floatPtr(-1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.segment.Validate()
			if tt.wantKind == "" {
				if err != nil {
					t.Errorf("Validate() returned unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected %s error, got nil", tt.wantKind)
			}
			kind, ok := KindOf(err)
			if !ok {
				t.Fatalf("Validate() returned unclassified error: %v", err)
			}
			if kind != tt.wantKind {
				t.Errorf("Validate() error kind = %s, want %s", kind, tt.wantKind)
			}
		})
	}
}

func TestErrorMessageIncludesField(t *testing.T) {
	err := &Error{Kind: KindInvalidSegment, Field: "buyer_segments[1]", Msg: "invalid price range"}
	if err.Error() != "buyer_segments[1]: invalid price range" {
		t.Errorf("Error() = %q, want field prefix", err.Error())
	}

	bare := &Error{Kind: KindEmptyPopulation, Msg: "no participants"}
	if bare.Error() != "no participants" {
		t.Errorf("Error() = %q, want bare message", bare.Error())
	}
}

func TestKindOf(t *testing.T) {
	wrapped := &Error{Kind: KindPopulationTooLarge, Msg: "too many buyers"}

	kind, ok := KindOf(wrapped)
	if !ok || kind != KindPopulationTooLarge {
		t.Errorf("KindOf(market error) = %s, %v; want %s, true", kind, ok, KindPopulationTooLarge)
	}

	if _, ok := KindOf(errors.New("plain error")); ok {
		t.Errorf("KindOf(plain error) reported a classification")
	}

	if _, ok := KindOf(nil); ok {
		t.Errorf("KindOf(nil) reported a classification")
	}
}

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	if limits.MaxBuyers != 100 || limits.MaxSellers != 100 {
		t.Errorf("DefaultLimits() participant ceilings = %d/%d, want 100/100", limits.MaxBuyers, limits.MaxSellers)
	}
	if limits.MaxSegments != 3 {
		t.Errorf("DefaultLimits() MaxSegments = %d, want 3", limits.MaxSegments)
	}
	if limits.MaxPrice != 1000 {
		t.Errorf("DefaultLimits() MaxPrice = %d, want 1000", limits.MaxPrice)
	}
}
