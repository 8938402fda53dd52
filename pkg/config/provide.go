/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

func Default() Config {
	return Config{
		LogLevel:          DefaultLogLevel,
		TypeCacheSize:     DefaultTypeCacheSize,
		TypeCacheProvider: DefaultTypeCacheProvider,
	}
}

// FromEnv overrides base fields with KOMMON_* environment variables which are set.
func FromEnv(base Config) (Config, error) {
	cfg := base
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return base, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

// Load reads YAML from r over defaults. Absent keys keep default values.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

// LoadFile reads YAML file over defaults then applies environment overrides.
//
// Empty path means no file.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if cfg, err = Load(f); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	return FromEnv(cfg)
}
