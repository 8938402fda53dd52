/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package tuples

type Tuple2[T1, T2 any] struct {
	v1 T1
	v2 T2
}

// Pair is a tuple of two values. Pair and Tuple2 with equal values are equal
type Pair[T1, T2 any] struct {
	v1 T1
	v2 T2
}

type Tuple3[T1, T2, T3 any] struct {
	v1 T1
	v2 T2
	v3 T3
}

type Tuple4[T1, T2, T3, T4 any] struct {
	v1 T1
	v2 T2
	v3 T3
	v4 T4
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	v1 T1
	v2 T2
	v3 T3
	v4 T4
	v5 T5
}

type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	v1 T1
	v2 T2
	v3 T3
	v4 T4
	v5 T5
	v6 T6
}

// TupleN is a tuple of any arity
type TupleN struct {
	values []any
}
