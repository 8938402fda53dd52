/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache

import (
	"fmt"

	"github.com/voedger/kommon/pkg/objcache/internal/hashicorp"
	"github.com/voedger/kommon/pkg/objcache/internal/imcache"
	"github.com/voedger/kommon/pkg/objcache/internal/theine"
)

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param. Optional onEvicted cb is called then some value evicted from cache.
func New[K comparable, V any](size int, onEvicted func(K, V)) ICache[K, V] {
	return hashicorp.New[K, V](size, onEvicted)
}

// Creates and return new object cache implemented by specified provider.
//
// Panics if provider is unknown.
func NewProvider[K comparable, V any](p CacheProvider, size int, onEvicted func(K, V)) ICache[K, V] {
	switch p {
	case Hashicorp:
		return hashicorp.New[K, V](size, onEvicted)
	case Theine:
		return theine.New[K, V](size, onEvicted)
	case Imcache:
		return imcache.New[K, V](size, onEvicted)
	}
	panic(fmt.Errorf("%w: %v", ErrUnknownProvider, p))
}
