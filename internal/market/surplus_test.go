package market

import "testing"

func TestMaxSurplus(t *testing.T) {
	demand := BuildDemand([]int{40, 35, 30, 25, 20})
	supply := BuildSupply([]int{8, 12, 16, 20, 24})

	tests := []struct {
		name     string
		quantity int
		expected float64
	}{
		{
			// (40-8) + (35-12) + (30-16) + (25-20)
			name:     "equilibrium quantity",
			quantity: 4,
			expected: 74,
		},
		{
			name:     "single trade",
			quantity: 1,
			expected: 32,
		},
		{
			name:     "zero quantity",
			quantity: 0,
			expected: 0,
		},
		{
			name:     "negative quantity",
			quantity: -2,
			expected: 0,
		},
		{
			// Clipped to the five existing pairs; the fifth runs at a loss.
			name:     "oversized quantity clips to the shorter curve",
			quantity: 99,
			expected: 70,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxSurplus(demand, supply, tt.quantity); got != tt.expected {
				t.Errorf("MaxSurplus(quantity=%d) = %v, want %v", tt.quantity, got, tt.expected)
			}
		})
	}
}

func TestMaxSurplusEmptyCurves(t *testing.T) {
	if got := MaxSurplus(nil, nil, 3); got != 0 {
		t.Errorf("MaxSurplus() on empty curves = %v, want 0", got)
	}
	if got := MaxSurplus(BuildDemand([]int{30}), nil, 1); got != 0 {
		t.Errorf("MaxSurplus() with empty supply = %v, want 0", got)
	}
}

func TestMaxSurplusAgreesWithEquilibrium(t *testing.T) {
	demand := BuildDemand([]int{33, 28, 14, 9})
	supply := BuildSupply([]int{6, 11, 22, 30})

	eq := FindEquilibrium(demand, supply)
	if eq.Quantity != 2 {
		t.Fatalf("FindEquilibrium() quantity = %d, want 2", eq.Quantity)
	}
	// (33-6) + (28-11)
	if got := MaxSurplus(demand, supply, eq.Quantity); got != 44 {
		t.Errorf("MaxSurplus() at equilibrium = %v, want 44", got)
	}
}
