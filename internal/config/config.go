// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface. None of it is required: a missing
// file means defaults, and env vars override the file.
type Config struct {
	// HistoryDB enables the run index when set.
	HistoryDB string `yaml:"history_db"`

	Log struct {
		Level string `yaml:"level"`
		Path  string `yaml:"path"`
	} `yaml:"log"`

	Generator struct {
		Host              string  `yaml:"host"`
		SourcePrivateBias float64 `yaml:"source_private_bias"`
		DestPrivateBias   float64 `yaml:"dest_private_bias"`
		// Burstiness is accepted and carried but does not change the timing
		// model yet.
		Burstiness float64 `yaml:"burstiness"`
	} `yaml:"generator"`

	Summarizer struct {
		TopErrors int `yaml:"top_errors"`
	} `yaml:"summarizer"`
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Generator.Host = "fw01.corp.example.com"
	cfg.Generator.SourcePrivateBias = 0.6
	cfg.Generator.DestPrivateBias = 0.3
	cfg.Generator.Burstiness = 0.2
	cfg.Summarizer.TopErrors = 5
	return cfg
}

// Load reads the YAML config at path over the defaults, then applies env
// overrides. A missing file is fine; an unreadable or malformed one is not.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults apply
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// Env overrides
	if v := os.Getenv("LOGFORGE_HISTORY_DB"); v != "" {
		cfg.HistoryDB = v
	}
	if v := os.Getenv("LOGFORGE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return &cfg, nil
}
