// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iwvelando/market-sim/internal/sim"
	"github.com/iwvelando/market-sim/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []*sim.Result) {
	fmt.Print(PrettyString(results))
}

// PrettyString renders the human-readable table as a string.
func PrettyString(results []*sim.Result) string {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	for i, result := range results {
		fmt.Fprintf(&b, "--- Simulation %s ---\n", result.ID)

		seedNote := "provided"
		if !result.Metadata.SeedProvided {
			seedNote = "generated"
		}
		fmt.Fprintf(&b, "Seed: %d (%s)\n", result.Metadata.Seed, seedNote)
		fmt.Fprintf(&b, "Buyers: %d | Sellers: %d | Potential trades: %d\n",
			result.Metadata.TotalBuyers, result.Metadata.TotalSellers, result.Analysis.PotentialTrades)

		if result.Equilibrium.Price != nil {
			_, _ = p.Fprintf(&b, "Equilibrium: %d units at price %.2f\n",
				result.Equilibrium.Quantity, *result.Equilibrium.Price)
		} else {
			fmt.Fprintf(&b, "Equilibrium: no trade\n")
		}
		_, _ = p.Fprintf(&b, "Max surplus: %.2f\n", result.Surplus.TotalMax)
		fmt.Fprintf(&b, "Efficiency: %.1f%%\n", result.Metadata.EfficiencyRatio*100)

		fmt.Fprintf(&b, "Qty | Demand | Supply\n")
		fmt.Fprintf(&b, "___ | ______ | ______\n")
		rows := mathutil.MaxInt(len(result.Demand), len(result.Supply))
		for q := 0; q < rows; q++ {
			demand := ""
			if q < len(result.Demand) {
				demand = fmt.Sprintf("%d", result.Demand[q].Price)
			}
			supply := ""
			if q < len(result.Supply) {
				supply = fmt.Sprintf("%d", result.Supply[q].Price)
			}
			fmt.Fprintf(&b, "%3d | %6s | %6s\n", q+1, demand, supply)
		}

		if i < len(results)-1 {
			fmt.Fprintf(&b, "\n")
		}
	}

	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []*sim.Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the curve schedule of every result as quoted CSV,
// one row per curve rank, keyed by seed.
func CsvString(results []*sim.Result) string {
	var b strings.Builder

	b.WriteString(`"seed","quantity","demand_price","supply_price"` + "\n")
	for _, result := range results {
		rows := mathutil.MaxInt(len(result.Demand), len(result.Supply))
		for q := 0; q < rows; q++ {
			demand := ""
			if q < len(result.Demand) {
				demand = fmt.Sprintf("%d", result.Demand[q].Price)
			}
			supply := ""
			if q < len(result.Supply) {
				supply = fmt.Sprintf("%d", result.Supply[q].Price)
			}
			fmt.Fprintf(&b, `"%d","%d","%s","%s"`+"\n", result.Metadata.Seed, q+1, demand, supply)
		}
	}

	return b.String()
}

// JSONFormat outputs the results as indented JSON.
func JSONFormat(results []*sim.Result) error {
	s, err := JSONString(results)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

// JSONString renders the results as indented JSON. A single result is
// emitted as an object, multiple results as an array.
func JSONString(results []*sim.Result) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(results) == 1 {
		data, err = json.MarshalIndent(results[0], "", "  ")
	} else {
		data, err = json.MarshalIndent(results, "", "  ")
	}
	if err != nil {
		return "", fmt.Errorf("failed to encode results: %w", err)
	}
	return string(data), nil
}
