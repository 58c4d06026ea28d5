package market

import (
	"reflect"
	"testing"
)

func TestBuildDemand(t *testing.T) {
	tests := []struct {
		name     string
		buyers   []int
		expected []PricePoint
	}{
		{
			name:   "sorts high to low with 1-based quantities",
			buyers: []int{30, 40, 20, 35, 25},
			expected: []PricePoint{
				{Quantity: 1, Price: 40},
				{Quantity: 2, Price: 35},
				{Quantity: 3, Price: 30},
				{Quantity: 4, Price: 25},
				{Quantity: 5, Price: 20},
			},
		},
		{
			name:   "ties stay adjacent",
			buyers: []int{25, 30, 25, 30},
			expected: []PricePoint{
				{Quantity: 1, Price: 30},
				{Quantity: 2, Price: 30},
				{Quantity: 3, Price: 25},
				{Quantity: 4, Price: 25},
			},
		},
		{
			name:     "single buyer",
			buyers:   []int{15},
			expected: []PricePoint{{Quantity: 1, Price: 15}},
		},
		{
			name:     "empty input",
			buyers:   nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildDemand(tt.buyers)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("BuildDemand(%v) = %v, want %v", tt.buyers, got, tt.expected)
			}
		})
	}
}

func TestBuildSupply(t *testing.T) {
	tests := []struct {
		name     string
		sellers  []int
		expected []PricePoint
	}{
		{
			name:    "sorts low to high with 1-based quantities",
			sellers: []int{16, 8, 24, 12, 20},
			expected: []PricePoint{
				{Quantity: 1, Price: 8},
				{Quantity: 2, Price: 12},
				{Quantity: 3, Price: 16},
				{Quantity: 4, Price: 20},
				{Quantity: 5, Price: 24},
			},
		},
		{
			name:    "ties stay adjacent",
			sellers: []int{12, 9, 12, 9},
			expected: []PricePoint{
				{Quantity: 1, Price: 9},
				{Quantity: 2, Price: 9},
				{Quantity: 3, Price: 12},
				{Quantity: 4, Price: 12},
			},
		},
		{
			name:     "empty input",
			sellers:  []int{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildSupply(tt.sellers)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("BuildSupply(%v) = %v, want %v", tt.sellers, got, tt.expected)
			}
		})
	}
}

func TestBuildCurvesDoNotMutateInput(t *testing.T) {
	buyers := []int{30, 40, 20}
	sellers := []int{16, 8, 24}
	wantBuyers := append([]int(nil), buyers...)
	wantSellers := append([]int(nil), sellers...)

	BuildDemand(buyers)
	BuildSupply(sellers)

	if !reflect.DeepEqual(buyers, wantBuyers) {
		t.Errorf("BuildDemand() mutated its input: %v, want %v", buyers, wantBuyers)
	}
	if !reflect.DeepEqual(sellers, wantSellers) {
		t.Errorf("BuildSupply() mutated its input: %v, want %v", sellers, wantSellers)
	}
}
