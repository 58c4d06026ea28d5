// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/iwvelando/market-sim/internal/market"
	"github.com/iwvelando/market-sim/pkg/constants"
	"github.com/iwvelando/market-sim/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for market-sim.
type Configuration struct {
	Simulation SimulationConfig `yaml:"simulation,omitempty"`
	Limits     LimitsConfig     `yaml:"limits,omitempty"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// SimulationConfig describes the market to simulate: flat parameters per
// side, or explicit segment lists which take precedence for their side.
type SimulationConfig struct {
	NumBuyers      int              `yaml:"numBuyers,omitempty"`
	NumSellers     int              `yaml:"numSellers,omitempty"`
	MinWTP         int              `yaml:"minWtp,omitempty"`
	MaxWTP         int              `yaml:"maxWtp,omitempty"`
	MinCost        int              `yaml:"minCost,omitempty"`
	MaxCost        int              `yaml:"maxCost,omitempty"`
	BuyerSegments  []market.Segment `yaml:"buyerSegments,omitempty"`
	SellerSegments []market.Segment `yaml:"sellerSegments,omitempty"`
	Seed           *int64           `yaml:"seed,omitempty"`
	Runs           int              `yaml:"runs,omitempty"` // seed+0, seed+1, ... when > 1
}

// LimitsConfig caps how large a requested market may get. Zero keeps the
// stock ceiling; a negative value disables that ceiling.
type LimitsConfig struct {
	MaxBuyers   int `yaml:"maxBuyers,omitempty"`
	MaxSellers  int `yaml:"maxSellers,omitempty"`
	MaxSegments int `yaml:"maxSegments,omitempty"`
	MaxPrice    int `yaml:"maxPrice,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// PopulationSpec converts the simulation section into a population spec,
// filling any unset flat parameters with the stock defaults.
func (s SimulationConfig) PopulationSpec() market.PopulationSpec {
	spec := market.PopulationSpec{
		NumBuyers:      s.NumBuyers,
		NumSellers:     s.NumSellers,
		MinWTP:         s.MinWTP,
		MaxWTP:         s.MaxWTP,
		MinCost:        s.MinCost,
		MaxCost:        s.MaxCost,
		BuyerSegments:  s.BuyerSegments,
		SellerSegments: s.SellerSegments,
		Seed:           s.Seed,
	}
	DefaultFlatDefaults().Apply(&spec)
	return spec
}

// MarketLimits converts the limits section into the market package's
// ceilings, keeping the stock value for anything left at zero.
func (l LimitsConfig) MarketLimits() market.Limits {
	limits := market.DefaultLimits()
	if l.MaxBuyers != 0 {
		limits.MaxBuyers = l.MaxBuyers
	}
	if l.MaxSellers != 0 {
		limits.MaxSellers = l.MaxSellers
	}
	if l.MaxSegments != 0 {
		limits.MaxSegments = l.MaxSegments
	}
	if l.MaxPrice != 0 {
		limits.MaxPrice = l.MaxPrice
	}
	return limits
}

// FlatDefaults holds the fallback values for flat population parameters
// a caller left unset.
type FlatDefaults struct {
	NumBuyers  int `yaml:"numBuyers,omitempty"`
	NumSellers int `yaml:"numSellers,omitempty"`
	MinWTP     int `yaml:"minWtp,omitempty"`
	MaxWTP     int `yaml:"maxWtp,omitempty"`
	MinCost    int `yaml:"minCost,omitempty"`
	MaxCost    int `yaml:"maxCost,omitempty"`
}

// DefaultFlatDefaults returns the stock fallback values.
func DefaultFlatDefaults() FlatDefaults {
	return FlatDefaults{
		NumBuyers:  constants.DefaultNumBuyers,
		NumSellers: constants.DefaultNumSellers,
		MinWTP:     constants.DefaultMinWTP,
		MaxWTP:     constants.DefaultMaxWTP,
		MinCost:    constants.DefaultMinCost,
		MaxCost:    constants.DefaultMaxCost,
	}
}

// Apply fills spec's unset flat parameters on each side that has no
// segment list. Counts default individually; price bounds default as a
// pair, so an explicit zero bound survives next to a nonzero partner.
func (d FlatDefaults) Apply(spec *market.PopulationSpec) {
	if len(spec.BuyerSegments) == 0 {
		if spec.NumBuyers == 0 {
			spec.NumBuyers = d.NumBuyers
		}
		if spec.MinWTP == 0 && spec.MaxWTP == 0 {
			spec.MinWTP = d.MinWTP
			spec.MaxWTP = d.MaxWTP
		}
	}
	if len(spec.SellerSegments) == 0 {
		if spec.NumSellers == 0 {
			spec.NumSellers = d.NumSellers
		}
		if spec.MinCost == 0 && spec.MaxCost == 0 {
			spec.MinCost = d.MinCost
			spec.MaxCost = d.MaxCost
		}
	}
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	sim := c.Simulation
	if sim.Seed == nil {
		warnings = append(warnings, "simulation.seed is not set; results will differ on every run")
	}
	if sim.Runs < 0 {
		warnings = append(warnings, fmt.Sprintf("simulation.runs (%d) is negative; running once", sim.Runs))
	}
	if len(sim.BuyerSegments) == 0 {
		if w := validation.FlatRangeWarning("buyer", sim.MinWTP, sim.MaxWTP); w != "" {
			warnings = append(warnings, w)
		}
	} else {
		warnings = append(warnings, validation.SegmentWarnings("buyer", sim.BuyerSegments)...)
	}
	if len(sim.SellerSegments) == 0 {
		if w := validation.FlatRangeWarning("seller", sim.MinCost, sim.MaxCost); w != "" {
			warnings = append(warnings, w)
		}
	} else {
		warnings = append(warnings, validation.SegmentWarnings("seller", sim.SellerSegments)...)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("logging.level %q is not recognized; defaulting to info", c.Logging.Level))
	}

	switch c.Output.Format {
	case "", constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
	default:
		warnings = append(warnings, fmt.Sprintf("output.format %q is not recognized; defaulting to %s", c.Output.Format, constants.OutputFormatPretty))
	}

	return warnings
}
