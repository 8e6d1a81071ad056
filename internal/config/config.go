// Package config provides configuration loading and validation for the
// resume matcher.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-matcher/internal/compose"
)

// Config holds all process configuration. All fields are optional; missing
// values use defaults, and environment variables override file values.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty" validate:"gte=0,lte=65535"`
	MaxUploadMB int    `json:"max_upload_mb,omitempty" validate:"gte=0"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Matching
	APIKey         string  `json:"api_key,omitempty"`
	EmbeddingModel string  `json:"embedding_model,omitempty"`
	TaxonomyPath   string  `json:"taxonomy,omitempty"`
	HardWeight     float64 `json:"hard_weight,omitempty" validate:"gte=0,lte=1"`
	SemanticWeight float64 `json:"semantic_weight,omitempty" validate:"gte=0,lte=1"`
}

// Default returns the baseline configuration
func Default() *Config {
	w := compose.DefaultWeights()
	return &Config{
		Port:           8080,
		MaxUploadMB:    10,
		HardWeight:     w.Hard,
		SemanticWeight: w.Semantic,
	}
}

// Load reads configuration from a JSON file, fills unset fields from
// defaults and applies environment overrides. An empty path yields the
// defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides file values with environment variables when set
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		c.EmbeddingModel = v
	}
	if v := os.Getenv("TAXONOMY_PATH"); v != "" {
		c.TaxonomyPath = v
	}
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.HardWeight+c.SemanticWeight > 1.0 {
		return fmt.Errorf("config error: hard_weight + semantic_weight must not exceed 1.0")
	}
	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.TaxonomyPath)
		}
	}
	return nil
}

// Weights returns the configured score weights, or the defaults when both
// are zero
func (c *Config) Weights() compose.Weights {
	if c.HardWeight == 0 && c.SemanticWeight == 0 {
		return compose.DefaultWeights()
	}
	return compose.Weights{Hard: c.HardWeight, Semantic: c.SemanticWeight}
}

// MaxUploadBytes returns the per-document upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
