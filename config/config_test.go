package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", cfg.Server.Environment)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "*" {
		t.Errorf("Server.AllowedOrigins = %v, want [*]", cfg.Server.AllowedOrigins)
	}
	if cfg.Catalog.CSVPath != "Raw_Data.csv" {
		t.Errorf("Catalog.CSVPath = %q, want Raw_Data.csv", cfg.Catalog.CSVPath)
	}
	if cfg.Matching.CategoryThreshold != 85 {
		t.Errorf("Matching.CategoryThreshold = %d, want 85", cfg.Matching.CategoryThreshold)
	}
	if cfg.Matching.ProductThreshold != 80 {
		t.Errorf("Matching.ProductThreshold = %d, want 80", cfg.Matching.ProductThreshold)
	}
	if cfg.Matching.EnableDebugLogging {
		t.Error("Matching.EnableDebugLogging = true, want false")
	}
	if cfg.RateLimit.PerIP != 100 {
		t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Catalog:  CatalogConfig{CSVPath: "Raw_Data.csv"},
			Matching: MatchingConfig{CategoryThreshold: 85, ProductThreshold: 80},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing catalog path",
			mutate:  func(c *Config) { c.Catalog.CSVPath = "" },
			wantErr: "catalog CSV path",
		},
		{
			name:    "category threshold above range",
			mutate:  func(c *Config) { c.Matching.CategoryThreshold = 101 },
			wantErr: "category threshold",
		},
		{
			name:    "category threshold below range",
			mutate:  func(c *Config) { c.Matching.CategoryThreshold = -1 },
			wantErr: "category threshold",
		},
		{
			name:    "product threshold above range",
			mutate:  func(c *Config) { c.Matching.ProductThreshold = 200 },
			wantErr: "product threshold",
		},
		{
			name:   "threshold boundaries are inclusive",
			mutate: func(c *Config) { c.Matching.CategoryThreshold = 0; c.Matching.ProductThreshold = 100 },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := validate(cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("validate() = nil, want error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("validate() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}
