/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package collect

import "github.com/voedger/kommon/pkg/objects"

// NewList returns list with specified elements
func NewList[E any](elements ...E) *List[E] {
	return &List[E]{items: append([]E(nil), elements...)}
}

// EmptyList returns empty list. Can be used as ArrayToCollectionMapper creator
func EmptyList[E any]() *List[E] { return &List[E]{} }

// EmptySet returns empty set. Can be used as ArrayToCollectionMapper creator
func EmptySet[E comparable]() *Set[E] { return NewSet[E]() }

// NewSet returns set with specified elements. Duplicates are skipped
func NewSet[E comparable](elements ...E) *Set[E] {
	s := &Set[E]{index: make(map[E]int, len(elements))}
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

// NewArrayToCollectionMapper returns mapper which collects results into collections made by creator.
//
// Panics if creator is nil.
//
//	m := NewArrayToCollectionMapper[string, int](EmptyList[int])
//	lengths := m.Apply([]string{"a", "bb"}, func(s string) int { return len(s) })
func NewArrayToCollectionMapper[E, NE any, C ICollection[NE]](creator func() C) ArrayToCollectionMapper[E, NE, C] {
	return ArrayToCollectionMapper[E, NE, C]{creator: objects.MustNotBeNull(creator, "collection creator")}
}

// NewMapToMapMapper returns mapper which collects results into maps made by creator.
//
// Nil creator means maps are made by make()
func NewMapToMapMapper[K comparable, V any, NK comparable, NV any](creator func() map[NK]NV) MapToMapMapper[K, V, NK, NV] {
	if creator == nil {
		creator = func() map[NK]NV { return make(map[NK]NV) }
	}
	return MapToMapMapper[K, V, NK, NV]{creator: creator}
}
