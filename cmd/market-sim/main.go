package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/iwvelando/market-sim/internal/config"
	"github.com/iwvelando/market-sim/internal/sim"
	"github.com/iwvelando/market-sim/internal/version"
	"github.com/iwvelando/market-sim/pkg/constants"
	"github.com/iwvelando/market-sim/pkg/output"
	"github.com/iwvelando/market-sim/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	seedFlag := flag.Int64("seed", 0, "rng seed override")
	runsFlag := flag.Int("runs", 0, "number of simulations override (seeds seed, seed+1, ...)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	// Distinguish explicitly set flags from their zero defaults.
	var seedOverride *int64
	runsOverride := 0
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			seedOverride = seedFlag
		case "runs":
			runsOverride = *runsFlag
		}
	})

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.BuildLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	spec := conf.Simulation.PopulationSpec()
	if seedOverride != nil {
		spec.Seed = seedOverride
	}
	limits := conf.Limits.MarketLimits()

	runs := conf.Simulation.Runs
	if runsOverride > 0 {
		runs = runsOverride
	}
	if runs <= 0 {
		runs = 1
	}

	var results []*sim.Result
	if runs == 1 {
		result, err := sim.Run(logger, spec, limits)
		if err != nil {
			logger.Fatal("failed to run simulation",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		results = []*sim.Result{result}
	} else {
		// Consecutive seeds from the configured base keep every run of
		// the batch individually reproducible.
		base := time.Now().UnixNano()
		if spec.Seed != nil {
			base = *spec.Seed
		}
		seeds := make([]int64, runs)
		for i := range seeds {
			seeds[i] = base + int64(i)
		}

		results, err = sim.RunBatch(context.Background(), logger, spec, limits, seeds, constants.DefaultBatchConcurrency)
		if err != nil {
			logger.Fatal("failed to run simulation batch",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(results)
	case constants.OutputFormatCSV:
		output.CsvFormat(results)
	case constants.OutputFormatJSON:
		if err := output.JSONFormat(results); err != nil {
			logger.Fatal("failed to render results",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}
}
