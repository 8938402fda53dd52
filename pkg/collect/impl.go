/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package collect

func (l *List[E]) Add(e E) { l.items = append(l.items, e) }

func (l *List[E]) Len() int { return len(l.items) }

func (l *List[E]) ForEach(enum func(E)) {
	for _, e := range l.items {
		enum(e)
	}
}

// Returns copy of list elements
func (l *List[E]) Values() []E {
	return append([]E(nil), l.items...)
}

// Add adds element if it is not in set yet
func (s *Set[E]) Add(e E) {
	if s.index == nil {
		s.index = make(map[E]int)
	}
	if _, ok := s.index[e]; ok {
		return
	}
	s.index[e] = len(s.items)
	s.items = append(s.items, e)
}

func (s *Set[E]) Contains(e E) bool {
	_, ok := s.index[e]
	return ok
}

func (s *Set[E]) Len() int { return len(s.items) }

func (s *Set[E]) ForEach(enum func(E)) {
	for _, e := range s.items {
		enum(e)
	}
}

// Returns copy of set elements in insertion order
func (s *Set[E]) Values() []E {
	return append([]E(nil), s.items...)
}

// Apply returns new collection which contains fn result for each source element
func (m ArrayToCollectionMapper[E, NE, C]) Apply(source []E, fn func(E) NE) C {
	result := m.creator()
	for _, e := range source {
		result.Add(fn(e))
	}
	return result
}

// Apply returns new map which contains key-value pairs returned by fn for each input entry.
//
// If fn returns the same key for several entries, which value is kept is not defined
func (m MapToMapMapper[K, V, NK, NV]) Apply(input map[K]V, fn MapEntryFunction[K, V, NK, NV]) map[NK]NV {
	result := m.creator()
	for k, v := range input {
		p := fn(k, v)
		result[p.Value1()] = p.Value2()
	}
	return result
}
