/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package tuples

// NewPair returns pair of values
func NewPair[T1, T2 any](v1 T1, v2 T2) Pair[T1, T2] {
	return Pair[T1, T2]{v1, v2}
}

func New2[T1, T2 any](v1 T1, v2 T2) Tuple2[T1, T2] {
	return Tuple2[T1, T2]{v1, v2}
}

func New3[T1, T2, T3 any](v1 T1, v2 T2, v3 T3) Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{v1, v2, v3}
}

func New4[T1, T2, T3, T4 any](v1 T1, v2 T2, v3 T3, v4 T4) Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{v1, v2, v3, v4}
}

func New5[T1, T2, T3, T4, T5 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{v1, v2, v3, v4, v5}
}

func New6[T1, T2, T3, T4, T5, T6 any](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{v1, v2, v3, v4, v5, v6}
}

// NewN returns tuple of specified values. Values are copied
func NewN(values ...any) TupleN {
	return TupleN{values: append([]any(nil), values...)}
}

// Of returns tuple of specified values with the best fitting arity
func Of(values ...any) ITuple {
	switch len(values) {
	case 2:
		return New2(values[0], values[1])
	case 3:
		return New3(values[0], values[1], values[2])
	case 4:
		return New4(values[0], values[1], values[2], values[3])
	case 5:
		return New5(values[0], values[1], values[2], values[3], values[4])
	case 6:
		return New6(values[0], values[1], values[2], values[3], values[4], values[5])
	}
	return NewN(values...)
}
