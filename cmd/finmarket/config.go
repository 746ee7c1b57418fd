package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	finmarket "github.com/rfuenzalida/finmarket-go"
)

// config is read from an optional YAML file, then overridden by the
// FINMARKET_BASE_URL, FINMARKET_MARKET and FINMARKET_TIMEOUT_SECONDS
// environment variables.
type config struct {
	BaseURL        string `yaml:"base_url"`
	Market         string `yaml:"market"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c config) timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func loadConfig(path string) (config, error) {
	cfg := config{Market: finmarket.DefaultMarket}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("FINMARKET_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("FINMARKET_MARKET"); v != "" {
		cfg.Market = v
	}
	if v := os.Getenv("FINMARKET_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("FINMARKET_TIMEOUT_SECONDS: %w", err)
		}
		cfg.TimeoutSeconds = n
	}

	if cfg.TimeoutSeconds < 0 {
		return cfg, fmt.Errorf("timeout_seconds must not be negative, got %d", cfg.TimeoutSeconds)
	}
	return cfg, nil
}
