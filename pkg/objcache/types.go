/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import "fmt"

// Cache implementation used by NewProvider
type CacheProvider uint8

const (
	Hashicorp CacheProvider = iota
	Theine
	Imcache

	CacheProvider_count
)

var cacheProviderNames = map[CacheProvider]string{
	Hashicorp: "hashicorp",
	Theine:    "theine",
	Imcache:   "imcache",
}

func (p CacheProvider) String() string {
	if s, ok := cacheProviderNames[p]; ok {
		return s
	}
	return fmt.Sprintf("CacheProvider(%d)", p)
}

// ParseProvider returns provider by its name, see CacheProvider.String()
func ParseProvider(name string) (CacheProvider, error) {
	for p, n := range cacheProviderNames {
		if n == name {
			return p, nil
		}
	}
	return CacheProvider_count, fmt.Errorf("%w: «%s»", ErrUnknownProvider, name)
}
