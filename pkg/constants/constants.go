// Package constants provides shared constants for the market-sim application.
package constants

// Simulation defaults used when the flat-form parameters are not configured.
const (
	// DefaultNumBuyers is the default buyer count for flat-form populations
	DefaultNumBuyers = 10

	// DefaultNumSellers is the default seller count for flat-form populations
	DefaultNumSellers = 10

	// DefaultMinWTP is the default lower bound on buyer willingness-to-pay
	DefaultMinWTP = 10

	// DefaultMaxWTP is the default upper bound on buyer willingness-to-pay
	DefaultMaxWTP = 40

	// DefaultMinCost is the default lower bound on seller cost
	DefaultMinCost = 5

	// DefaultMaxCost is the default upper bound on seller cost
	DefaultMaxCost = 35
)

// Population ceilings guarding against resource exhaustion from careless input.
const (
	// DefaultMaxBuyers is the default ceiling on total buyers per simulation
	DefaultMaxBuyers = 100

	// DefaultMaxSellers is the default ceiling on total sellers per simulation
	DefaultMaxSellers = 100

	// DefaultMaxSegments is the default ceiling on segments per market side
	DefaultMaxSegments = 3

	// DefaultMaxPrice is the default ceiling on any segment price bound
	DefaultMaxPrice = 1000
)

// Health check constants
const (
	// HealthCheckSeed is the fixed seed used by the health-check simulation
	HealthCheckSeed int64 = 42

	// HealthCheckBuyers is the buyer count used by the health-check simulation
	HealthCheckBuyers = 5

	// HealthCheckSellers is the seller count used by the health-check simulation
	HealthCheckSellers = 5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestBytes int64 = 256 * 1024

	// DefaultRateLimitRequests is the default request allowance per window per client
	DefaultRateLimitRequests = 30

	// DefaultRateLimitWindowMinutes is the default rate-limit window length
	DefaultRateLimitWindowMinutes = 1

	// DefaultBatchConcurrency is the default worker count for batch simulations
	DefaultBatchConcurrency = 4

	// DefaultMaxBatchSeeds is the default ceiling on seeds per batch request
	DefaultMaxBatchSeeds = 50
)
