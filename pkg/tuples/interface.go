/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package tuples

// ITuple is an immutable fixed-size sequence of values.
//
// Tuples are equal if they have the same arity and their values are pairwise equal
// by objects.EqualAny. Hash code is objects.HashAll of the values.
type ITuple interface {
	Arity() int

	// Returns copy of tuple values
	Values() []any

	Equals(other any) bool
	HashCode() int32
	String() string
}
