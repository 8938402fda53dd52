/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voedger/kommon/pkg/goutils/logger"
	"github.com/voedger/kommon/pkg/goutils/testingu/require"
	"github.com/voedger/kommon/pkg/objcache"
)

func TestDefault(t *testing.T) {
	require := require.New(t)

	cfg := Default()
	require.NoError(cfg.Validate())

	l, err := cfg.Level()
	require.NoError(err)
	require.Equal(logger.LogLevelInfo, l)

	p, err := cfg.Provider()
	require.NoError(err)
	require.Equal(objcache.Hashicorp, p)
}

func TestFromEnv(t *testing.T) {
	require := require.New(t)

	t.Run("no variables set", func(t *testing.T) {
		cfg, err := FromEnv(Default())
		require.NoError(err)
		require.Equal(Default(), cfg)
	})

	t.Run("variables override", func(t *testing.T) {
		t.Setenv("KOMMON_LOG_LEVEL", "trace")
		t.Setenv("KOMMON_TYPE_CACHE_SIZE", "64")
		cfg, err := FromEnv(Default())
		require.NoError(err)
		require.Equal("trace", cfg.LogLevel)
		require.Equal(64, cfg.TypeCacheSize)
		require.Equal(DefaultTypeCacheProvider, cfg.TypeCacheProvider)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("KOMMON_TYPE_CACHE_PROVIDER", "memcached")
		_, err := FromEnv(Default())
		require.ErrorWith(err, require.Is(ErrInvalidConfig), require.Is(objcache.ErrUnknownProvider))
	})
}

func TestLoad(t *testing.T) {
	require := require.New(t)

	t.Run("partial yaml keeps defaults", func(t *testing.T) {
		cfg, err := Load(strings.NewReader("typeCacheProvider: theine\n"))
		require.NoError(err)
		require.Equal("theine", cfg.TypeCacheProvider)
		require.Equal(DefaultTypeCacheSize, cfg.TypeCacheSize)
	})

	t.Run("empty yaml", func(t *testing.T) {
		cfg, err := Load(strings.NewReader(""))
		require.NoError(err)
		require.Equal(Default(), cfg)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(strings.NewReader("typeCacheSize: [1, 2"))
		require.ErrorWith(err, require.Is(ErrInvalidConfig))
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(strings.NewReader("typeCacheSize: 0\nlogLevel: loud\n"))
		require.ErrorWith(err, require.Is(ErrInvalidConfig), require.Has("loud"), require.Has("positive"))
	})
}

func TestLoadFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "kommon.yaml")
	require.NoError(os.WriteFile(path, []byte("logLevel: verbose\ntypeCacheSize: 10\n"), 0o600))
	t.Setenv("KOMMON_TYPE_CACHE_SIZE", "20")

	cfg, err := LoadFile(path)
	require.NoError(err)
	require.Equal("verbose", cfg.LogLevel)
	require.Equal(20, cfg.TypeCacheSize)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}

func TestApply(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()

	cfg := Default()
	cfg.LogLevel = "error"
	require.NoError(cfg.Apply())
	require.False(logger.IsWarning())

	cfg.LogLevel = "loud"
	require.ErrorWith(cfg.Apply(), require.Is(ErrInvalidConfig))
}
