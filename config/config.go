package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog source configuration
type CatalogConfig struct {
	CSVPath string `mapstructure:"csv_path"`
}

// MatchingConfig holds matching engine configuration
type MatchingConfig struct {
	CategoryThreshold  int  `mapstructure:"category_threshold"`
	ProductThreshold   int  `mapstructure:"product_threshold"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/autobake/")

	// Environment variable settings
	v.SetEnvPrefix("AUTOBAKE")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults
	v.SetDefault("catalog.csv_path", "Raw_Data.csv")

	// Matching defaults: 85 for category->stage, 80 for free-text product
	v.SetDefault("matching.category_threshold", 85)
	v.SetDefault("matching.product_threshold", 80)
	v.SetDefault("matching.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.CSVPath == "" {
		return fmt.Errorf("catalog CSV path is required (set AUTOBAKE_CATALOG_CSV_PATH)")
	}

	if config.Matching.CategoryThreshold < 0 || config.Matching.CategoryThreshold > 100 {
		return fmt.Errorf("category threshold must be in [0,100], got: %d", config.Matching.CategoryThreshold)
	}

	if config.Matching.ProductThreshold < 0 || config.Matching.ProductThreshold > 100 {
		return fmt.Errorf("product threshold must be in [0,100], got: %d", config.Matching.ProductThreshold)
	}

	return nil
}
