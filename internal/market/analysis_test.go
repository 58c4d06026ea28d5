package market

import "testing"

func TestAnalyze(t *testing.T) {
	demand := BuildDemand([]int{40, 35, 30, 25, 20})
	supply := BuildSupply([]int{8, 12, 16, 20, 24})

	analysis := Analyze(demand, supply)

	if analysis.DemandSize != 5 || analysis.SupplySize != 5 {
		t.Errorf("Analyze() sizes = %d/%d, want 5/5", analysis.DemandSize, analysis.SupplySize)
	}
	if analysis.DemandRange != (PriceRange{Min: 20, Max: 40}) {
		t.Errorf("Analyze() demand range = %+v, want {20 40}", analysis.DemandRange)
	}
	if analysis.SupplyRange != (PriceRange{Min: 8, Max: 24}) {
		t.Errorf("Analyze() supply range = %+v, want {8 24}", analysis.SupplyRange)
	}
	if analysis.DemandAvg != 30 {
		t.Errorf("Analyze() demand avg = %v, want 30", analysis.DemandAvg)
	}
	if analysis.SupplyAvg != 16 {
		t.Errorf("Analyze() supply avg = %v, want 16", analysis.SupplyAvg)
	}
	if !analysis.PriceOverlap {
		t.Error("Analyze() price overlap = false, want true")
	}
	if analysis.PotentialTrades != 5 {
		t.Errorf("Analyze() potential trades = %d, want 5", analysis.PotentialTrades)
	}
	if analysis.EquilibriumQuantity != 4 {
		t.Errorf("Analyze() equilibrium quantity = %d, want 4", analysis.EquilibriumQuantity)
	}
	if analysis.EquilibriumPrice == nil || *analysis.EquilibriumPrice != 22.5 {
		t.Errorf("Analyze() equilibrium price = %v, want 22.5", analysis.EquilibriumPrice)
	}
	if analysis.MarketEfficiency != 0.8 {
		t.Errorf("Analyze() market efficiency = %v, want 0.8", analysis.MarketEfficiency)
	}
}

func TestAnalyzeNoOverlap(t *testing.T) {
	analysis := Analyze(BuildDemand([]int{5, 4}), BuildSupply([]int{10, 12}))

	if analysis.PriceOverlap {
		t.Error("Analyze() price overlap = true, want false")
	}
	if analysis.EquilibriumQuantity != 0 {
		t.Errorf("Analyze() equilibrium quantity = %d, want 0", analysis.EquilibriumQuantity)
	}
	if analysis.EquilibriumPrice != nil {
		t.Errorf("Analyze() equilibrium price = %v, want nil", *analysis.EquilibriumPrice)
	}
	if analysis.MarketEfficiency != 0 {
		t.Errorf("Analyze() market efficiency = %v, want 0", analysis.MarketEfficiency)
	}
}

func TestAnalyzeEmptySide(t *testing.T) {
	analysis := Analyze(nil, BuildSupply([]int{10, 14}))

	if analysis.DemandSize != 0 || analysis.SupplySize != 2 {
		t.Errorf("Analyze() sizes = %d/%d, want 0/2", analysis.DemandSize, analysis.SupplySize)
	}
	if analysis.DemandRange != (PriceRange{}) {
		t.Errorf("Analyze() demand range = %+v, want zero value", analysis.DemandRange)
	}
	if analysis.SupplyAvg != 12 {
		t.Errorf("Analyze() supply avg = %v, want 12", analysis.SupplyAvg)
	}
	if analysis.PotentialTrades != 0 {
		t.Errorf("Analyze() potential trades = %d, want 0", analysis.PotentialTrades)
	}
	if analysis.PriceOverlap {
		t.Error("Analyze() price overlap = true, want false")
	}
	if analysis.EquilibriumPrice != nil {
		t.Errorf("Analyze() equilibrium price = %v, want nil", *analysis.EquilibriumPrice)
	}
}
