/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

// Config holds library-wide settings.
//
// Values are taken from defaults, then from YAML file (if any), then from environment.
type Config struct {
	// one of none, error, warning, info, verbose, trace
	LogLevel string `yaml:"logLevel" env:"KOMMON_LOG_LEVEL"`

	// max number of types whose ancestry and annotations are cached by reflective scanners
	TypeCacheSize int `yaml:"typeCacheSize" env:"KOMMON_TYPE_CACHE_SIZE"`

	// one of hashicorp, theine, imcache
	TypeCacheProvider string `yaml:"typeCacheProvider" env:"KOMMON_TYPE_CACHE_PROVIDER"`
}
