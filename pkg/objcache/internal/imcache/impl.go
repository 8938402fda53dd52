/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imcache

import "github.com/erni27/imcache"

// Cache implemented by imcache with LRU eviction when max entries limit is reached
type Cache[K comparable, V any] struct {
	cache *imcache.Cache[K, V]
}

func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	opts := []imcache.Option[K, V]{imcache.WithMaxEntriesOption[K, V](size)}
	if onEvicted != nil {
		opts = append(opts, imcache.WithEvictionCallbackOption[K, V](func(key K, val V, _ imcache.EvictionReason) {
			onEvicted(key, val)
		}))
	}
	return &Cache[K, V]{cache: imcache.New[K, V](opts...)}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.cache.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.cache.Set(key, value, imcache.WithNoExpiration())
}
