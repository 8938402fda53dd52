/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache

// Objects cache
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise
	Get(K) (value V, ok bool)

	// Puts value with key
	Put(K, V)
}
