// config.go
//
// Copyright (C) 2024 The GoRummi Authors
//
// This file implements the service configuration, read from an
// optional YAML file with environment variable overrides.

package rummi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration
type Config struct {
	Addr           string `yaml:"addr"`
	AllowedOrigins string `yaml:"allowed_origins"`
	AccessKey      string `yaml:"access_key"`
	CacheSize      int    `yaml:"cache_size"`
}

// DefaultConfig returns the baseline configuration
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		AllowedOrigins: "*",
		CacheSize:      DefaultCacheSize,
	}
}

// LoadConfig reads a YAML configuration file, falling back to
// defaults for missing fields. An empty path skips the file and
// uses the defaults. Environment variables (PORT,
// ALLOWED_ORIGINS, ACCESS_KEY) override file values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config %s: %v", path, err)
		}
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = origins
	}
	if key := os.Getenv("ACCESS_KEY"); key != "" {
		cfg.AccessKey = key
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	return cfg, nil
}
