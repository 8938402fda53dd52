/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

import (
	"errors"
	"fmt"

	"github.com/voedger/kommon/pkg/goutils/logger"
	"github.com/voedger/kommon/pkg/objcache"
)

func (c Config) Validate() (err error) {
	if _, e := c.Level(); e != nil {
		err = errors.Join(err, e)
	}
	if c.TypeCacheSize <= 0 {
		err = errors.Join(err, fmt.Errorf("%w: type cache size must be positive, got %d", ErrInvalidConfig, c.TypeCacheSize))
	}
	if _, e := c.Provider(); e != nil {
		err = errors.Join(err, e)
	}
	return err
}

func (c Config) Level() (logger.TLogLevel, error) {
	l, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return l, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return l, nil
}

func (c Config) Provider() (objcache.CacheProvider, error) {
	p, err := objcache.ParseProvider(c.TypeCacheProvider)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Apply sets the global log level from config
func (c Config) Apply() error {
	l, err := c.Level()
	if err != nil {
		return err
	}
	logger.SetLogLevel(l)
	logger.Verbose("log level set to", l)
	return nil
}
