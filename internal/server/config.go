package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/iwvelando/market-sim/internal/config"
	"github.com/iwvelando/market-sim/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP daemon.
type Config struct {
	Address           string               `yaml:"address"`
	MaxRequestSize    string               `yaml:"maxRequestSize"`
	RateLimitRequests int                  `yaml:"rateLimitRequests"`
	RateLimitWindow   string               `yaml:"rateLimitWindow"`
	CORSOrigins       []string             `yaml:"corsOrigins"`
	MaxBatchSeeds     int                  `yaml:"maxBatchSeeds"`
	Limits            config.LimitsConfig  `yaml:"limits"`
	Logging           config.LoggingConfig `yaml:"logging"`
	requestSizeBytes  int64
	rateLimitWindow   time.Duration
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:           constants.DefaultServerAddress,
		MaxRequestSize:    fmt.Sprintf("%d", constants.DefaultMaxRequestBytes),
		RateLimitRequests: constants.DefaultRateLimitRequests,
		MaxBatchSeeds:     constants.DefaultMaxBatchSeeds,
		requestSizeBytes:  constants.DefaultMaxRequestBytes,
		rateLimitWindow:   constants.DefaultRateLimitWindowMinutes * time.Minute,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RequestSizeBytes returns the configured request body cap in bytes.
func (c *Config) RequestSizeBytes() int64 {
	return c.requestSizeBytes
}

// SetRequestSizeBytes overrides the configured request body cap.
func (c *Config) SetRequestSizeBytes(size int64) {
	if size > 0 {
		c.requestSizeBytes = size
		c.MaxRequestSize = fmt.Sprintf("%d", size)
	}
}

// RateWindow returns the rate-limit window as a duration.
func (c *Config) RateWindow() time.Duration {
	return c.rateLimitWindow
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.RateLimitRequests <= 0 {
		c.RateLimitRequests = constants.DefaultRateLimitRequests
	}
	if c.MaxBatchSeeds <= 0 {
		c.MaxBatchSeeds = constants.DefaultMaxBatchSeeds
	}

	window := strings.TrimSpace(c.RateLimitWindow)
	if window == "" {
		c.rateLimitWindow = constants.DefaultRateLimitWindowMinutes * time.Minute
	} else {
		parsed, err := time.ParseDuration(window)
		if err != nil {
			return fmt.Errorf("invalid rate limit window %q: %w", c.RateLimitWindow, err)
		}
		if parsed <= 0 {
			return fmt.Errorf("rate limit window must be positive, got %s", parsed)
		}
		c.rateLimitWindow = parsed
	}

	sizeStr := strings.TrimSpace(c.MaxRequestSize)
	if sizeStr == "" {
		c.requestSizeBytes = constants.DefaultMaxRequestBytes
		c.MaxRequestSize = fmt.Sprintf("%d", constants.DefaultMaxRequestBytes)
		return nil
	}

	bytes, err := ParseSize(sizeStr)
	if err != nil {
		return err
	}
	if bytes <= 0 {
		bytes = constants.DefaultMaxRequestBytes
	}
	c.requestSizeBytes = bytes
	return nil
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return constants.DefaultMaxRequestBytes, nil
	}

	upper := strings.ToUpper(trimmed)
	idx := len(upper)
	for idx > 0 && !unicode.IsDigit(rune(upper[idx-1])) {
		idx--
	}
	if idx == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}
	numPart := strings.TrimSpace(upper[:idx])
	unitPart := strings.TrimSpace(upper[idx:])

	if numPart == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	n, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	var multiplier int64
	switch unitPart {
	case "", "B":
		multiplier = 1
	case "K", "KB":
		multiplier = 1024
	case "M", "MB":
		multiplier = 1024 * 1024
	case "G", "GB":
		multiplier = 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unsupported size unit %q", unitPart)
	}

	result := n * multiplier
	if result < 0 {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return result, nil
}
