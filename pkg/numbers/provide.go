/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package numbers

import "golang.org/x/exp/constraints"

// Sum returns sum of values widened to int64, so sum of small integers does not overflow
func Sum[T constraints.Signed](values ...T) (sum int64) {
	for _, v := range values {
		sum += int64(v)
	}
	return sum
}

// SumUnsigned returns sum of values widened to uint64
func SumUnsigned[T constraints.Unsigned](values ...T) (sum uint64) {
	for _, v := range values {
		sum += uint64(v)
	}
	return sum
}

// SumFloats returns sum of values widened to float64
func SumFloats[T constraints.Float](values ...T) (sum float64) {
	for _, v := range values {
		sum += float64(v)
	}
	return sum
}

// Total returns sum of numbers selected from values
func Total[E any, T constraints.Signed](values []E, selector func(E) T) (total int64) {
	for _, v := range values {
		total += int64(selector(v))
	}
	return total
}

// TotalUnsigned returns sum of unsigned numbers selected from values
func TotalUnsigned[E any, T constraints.Unsigned](values []E, selector func(E) T) (total uint64) {
	for _, v := range values {
		total += uint64(selector(v))
	}
	return total
}

// TotalFloats returns sum of floats selected from values
func TotalFloats[E any, T constraints.Float](values []E, selector func(E) T) (total float64) {
	for _, v := range values {
		total += float64(selector(v))
	}
	return total
}
