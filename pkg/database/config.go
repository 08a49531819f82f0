package database

import (
	"github.com/tirumala-planners/site-backend/config"
)

// Config holds database connection settings
type Config struct {
	Path string
}

// DefaultConfig returns sensible defaults for database configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data.db",
	}
}

// FromCentralConfig converts central config.DatabaseConfig to package Config
func FromCentralConfig(c config.DatabaseConfig) Config {
	cfg := DefaultConfig()
	if c.Path != "" {
		cfg.Path = c.Path
	}
	return cfg
}
