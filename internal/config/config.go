// Package config resolves the scytale configuration from built-in defaults,
// optional configuration files, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config captures the scytale settings resolved from defaults, optional files,
// and environment overrides. They act as defaults for the CLI flags.
type Config struct {
	Alphabet  string `yaml:"alphabet"`
	FreqTable string `yaml:"freq_table"`
	Workers   int    `yaml:"workers"`
}

// Default returns the built-in scytale configuration.
func Default() Config {
	return Config{
		Alphabet:  "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		FreqTable: "",
		Workers:   0,
	}
}

// Load resolves the scytale configuration using defaults, configuration files,
// and environment overrides. The lookup order for configuration files is:
//  1. ~/.scytale/config.yml
//  2. ./scytale.yml
//
// Environment variables prefixed with SCYTALE_ have the highest precedence.
func Load() (Config, error) {
	cfg := Default()

	if err := loadHomeConfig(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadLocalConfig(&cfg); err != nil {
		return Config{}, err
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}

func loadHomeConfig(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return applyFile(cfg, filepath.Join(home, ".scytale", "config.yml"))
}

func loadLocalConfig(cfg *Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}
	return applyFile(cfg, filepath.Join(wd, "scytale.yml"))
}

// fileConfig uses pointer fields so an absent key leaves the current value
// untouched.
type fileConfig struct {
	Alphabet  *string `yaml:"alphabet"`
	FreqTable *string `yaml:"freq_table"`
	Workers   *int    `yaml:"workers"`
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Alphabet != nil {
		cfg.Alphabet = strings.TrimSpace(*fc.Alphabet)
	}
	if fc.FreqTable != nil {
		cfg.FreqTable = strings.TrimSpace(*fc.FreqTable)
	}
	if fc.Workers != nil {
		cfg.Workers = *fc.Workers
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if val := strings.TrimSpace(os.Getenv("SCYTALE_ALPHABET")); val != "" {
		cfg.Alphabet = val
	}
	if val := strings.TrimSpace(os.Getenv("SCYTALE_FREQ_TABLE")); val != "" {
		cfg.FreqTable = val
	}
	if val := strings.TrimSpace(os.Getenv("SCYTALE_WORKERS")); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			cfg.Workers = parsed
		}
	}
}
