package market

import "sort"

// BuildDemand sorts buyer WTP values from high to low and assigns each a
// 1-based quantity rank. The sort is stable: equal values keep their
// original draw order.
func BuildDemand(buyers []int) []PricePoint {
	prices := append([]int(nil), buyers...)
	sort.SliceStable(prices, func(i, j int) bool { return prices[i] > prices[j] })
	return toPoints(prices)
}

// BuildSupply sorts seller cost values from low to high and assigns each
// a 1-based quantity rank, with the same stable tie-break as BuildDemand.
func BuildSupply(sellers []int) []PricePoint {
	prices := append([]int(nil), sellers...)
	sort.SliceStable(prices, func(i, j int) bool { return prices[i] < prices[j] })
	return toPoints(prices)
}

func toPoints(prices []int) []PricePoint {
	if len(prices) == 0 {
		return nil
	}
	points := make([]PricePoint, len(prices))
	for i, p := range prices {
		points[i] = PricePoint{Quantity: i + 1, Price: p}
	}
	return points
}
