/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package theine

import (
	theine "github.com/Yiling-J/theine-go"
)

// Cache implemented by theine-go hybrid cache
type Cache[K comparable, V any] struct {
	c *theine.Cache[K, V]
}

func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	bld := theine.NewBuilder[K, V](int64(size))
	if onEvicted != nil {
		bld.RemovalListener(func(key K, value V, _ theine.RemoveReason) { onEvicted(key, value) })
	}

	c, err := bld.Build()
	if err != nil {
		panic(err)
	}
	return &Cache[K, V]{c: c}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.c.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	_ = c.c.Set(key, value, 1)
}
