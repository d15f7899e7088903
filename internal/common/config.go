// Package common provides shared utilities for TradeCraft
package common

import (
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for TradeCraft
type Config struct {
	Environment string        `toml:"environment"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	Risk        RiskConfig    `toml:"risk"`
}

// StorageConfig holds path configuration for the embedded trade store.
type StorageConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// RiskConfig holds the static classification tables used by risk analytics.
// These are reference data, not market data: they are loaded once at startup
// and injected into the risk service so tests can substitute custom mappings.
type RiskConfig struct {
	Sectors   map[string]string `toml:"sectors"`   // symbol -> sector, unknown symbols report as "Other"
	Liquidity map[string]string `toml:"liquidity"` // symbol -> liquidity tier (High/Medium/Low)
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Storage: StorageConfig{
			Path: "data/trades",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Risk: RiskConfig{
			Sectors:   DefaultSectorTable(),
			Liquidity: DefaultLiquidityTable(),
		},
	}
}

// DefaultSectorTable returns the built-in symbol to sector mapping.
func DefaultSectorTable() map[string]string {
	return map[string]string{
		"AAPL":  "Technology",
		"MSFT":  "Technology",
		"GOOGL": "Technology",
		"AMZN":  "Consumer",
		"TSLA":  "Automotive",
		"JPM":   "Financial",
		"BAC":   "Financial",
		"PFE":   "Healthcare",
		"JNJ":   "Healthcare",
		"XOM":   "Energy",
	}
}

// DefaultLiquidityTable returns the built-in symbol to liquidity tier mapping.
func DefaultLiquidityTable() map[string]string {
	return map[string]string{
		"AAPL":  "High",
		"MSFT":  "High",
		"GOOGL": "High",
		"AMZN":  "High",
		"TSLA":  "Medium",
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TRADECRAFT_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("TRADECRAFT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if path := os.Getenv("TRADECRAFT_DATA_PATH"); path != "" {
		config.Storage.Path = path
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
