/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package collect

import "github.com/voedger/kommon/pkg/tuples"

// ForEachFunction is an iterator which calls enum for each element.
//
// Slice, Collection and Keys adapt slices, collections and maps to iterators
type ForEachFunction[E any] func(enum func(E))

// List is a slice-backed collection which keeps duplicates in insertion order
type List[E any] struct {
	items []E
}

// Set is a collection of unique elements which keeps insertion order
type Set[E comparable] struct {
	items []E
	index map[E]int
}

// ArrayToCollectionMapper maps slice elements into a new collection made by creator
type ArrayToCollectionMapper[E, NE any, C ICollection[NE]] struct {
	creator func() C
}

// MapToMapMapper maps map entries into a new map made by creator
type MapToMapMapper[K comparable, V any, NK comparable, NV any] struct {
	creator func() map[NK]NV
}

// MapEntryFunction maps a key-value pair to a new key-value pair
type MapEntryFunction[K, V, NK, NV any] func(K, V) tuples.Pair[NK, NV]
