/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package collect

// Slice is a function type wrapper for naked slices.
// Slice result can be passed as a first argument to `ForEach`, `FindFirst` and `FindFirstError` routines
func Slice[E any](slice []E) ForEachFunction[E] {
	return func(enum func(E)) {
		for _, e := range slice {
			enum(e)
		}
	}
}

// Collection wraps collection to iterator
func Collection[E any](c ICollection[E]) ForEachFunction[E] {
	return c.ForEach
}

// Keys wraps map keys to iterator. Keys order is not defined
func Keys[K comparable, V any](m map[K]V) ForEachFunction[K] {
	return func(enum func(K)) {
		for k := range m {
			enum(k)
		}
	}
}

// ForEach pass `enum` callback to `forEach` iterator to call `enum` for each element
func ForEach[E any](forEach ForEachFunction[E], enum func(E)) {
	forEach(enum)
}

// ForEachError calls `do` for each element until the first error
func ForEachError[E any](forEach ForEachFunction[E], do func(E) error) (err error) {
	forEach(func(e E) {
		if err != nil {
			return
		}
		err = do(e)
	})
	return err
}

// FindFirst find first element by `forEach` iterator, using test function.
func FindFirst[E any](forEach ForEachFunction[E], test func(E) bool) (ok bool, data E) {
	forEach(func(e E) {
		if ok {
			return
		}
		if ok = test(e); ok {
			data = e
		}
	})
	return ok, data
}

// FindFirstData find first occurs of specified `data` by `forEach` iterator
func FindFirstData[E comparable](forEach ForEachFunction[E], data E) (ok bool, idx int) {
	idx = -1
	i := 0
	forEach(func(e E) {
		if ok {
			return
		}
		if ok = (e == data); ok {
			idx = i
		}
		i++
	})
	return ok, idx
}

// FindFirstError find first element with error by `forEach` iterator, using test function.
func FindFirstError[E any](forEach ForEachFunction[E], test func(E) error) (data E, err error) {
	forEach(func(e E) {
		if err != nil {
			return
		}
		if err = test(e); err != nil {
			data = e
		}
	})
	return data, err
}

// Filter returns elements which pass test
func Filter[E any](forEach ForEachFunction[E], test func(E) bool) (result []E) {
	forEach(func(e E) {
		if test(e) {
			result = append(result, e)
		}
	})
	return result
}

// Map returns fn results for each element
func Map[E, R any](forEach ForEachFunction[E], fn func(E) R) (result []R) {
	forEach(func(e E) {
		result = append(result, fn(e))
	})
	return result
}

// AddAll adds all elements from iterator to collection and returns collection
func AddAll[E any, C ICollection[E]](c C, forEach ForEachFunction[E]) C {
	forEach(c.Add)
	return c
}
