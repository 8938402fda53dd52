/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package tuples

func (t Pair[T1, T2]) Value1() T1 { return t.v1 }
func (t Pair[T1, T2]) Value2() T2 { return t.v2 }

func (t Pair[T1, T2]) Arity() int { return 2 }

func (t Pair[T1, T2]) Values() []any { return []any{t.v1, t.v2} }

func (t Pair[T1, T2]) Equals(other any) bool { return equals(t, other) }

func (t Pair[T1, T2]) HashCode() int32 { return hashCode(t) }

func (t Pair[T1, T2]) String() string { return toString(t) }

func (t Tuple2[T1, T2]) Value1() T1 { return t.v1 }
func (t Tuple2[T1, T2]) Value2() T2 { return t.v2 }

func (t Tuple2[T1, T2]) Arity() int { return 2 }

func (t Tuple2[T1, T2]) Values() []any { return []any{t.v1, t.v2} }

func (t Tuple2[T1, T2]) Equals(other any) bool { return equals(t, other) }

func (t Tuple2[T1, T2]) HashCode() int32 { return hashCode(t) }

func (t Tuple2[T1, T2]) String() string { return toString(t) }

func (t Tuple3[T1, T2, T3]) Value1() T1 { return t.v1 }
func (t Tuple3[T1, T2, T3]) Value2() T2 { return t.v2 }
func (t Tuple3[T1, T2, T3]) Value3() T3 { return t.v3 }

func (t Tuple3[T1, T2, T3]) Arity() int { return 3 }

func (t Tuple3[T1, T2, T3]) Values() []any { return []any{t.v1, t.v2, t.v3} }

func (t Tuple3[T1, T2, T3]) Equals(other any) bool { return equals(t, other) }

func (t Tuple3[T1, T2, T3]) HashCode() int32 { return hashCode(t) }

func (t Tuple3[T1, T2, T3]) String() string { return toString(t) }

func (t Tuple4[T1, T2, T3, T4]) Value1() T1 { return t.v1 }
func (t Tuple4[T1, T2, T3, T4]) Value2() T2 { return t.v2 }
func (t Tuple4[T1, T2, T3, T4]) Value3() T3 { return t.v3 }
func (t Tuple4[T1, T2, T3, T4]) Value4() T4 { return t.v4 }

func (t Tuple4[T1, T2, T3, T4]) Arity() int { return 4 }

func (t Tuple4[T1, T2, T3, T4]) Values() []any { return []any{t.v1, t.v2, t.v3, t.v4} }

func (t Tuple4[T1, T2, T3, T4]) Equals(other any) bool { return equals(t, other) }

func (t Tuple4[T1, T2, T3, T4]) HashCode() int32 { return hashCode(t) }

func (t Tuple4[T1, T2, T3, T4]) String() string { return toString(t) }

func (t Tuple5[T1, T2, T3, T4, T5]) Value1() T1 { return t.v1 }
func (t Tuple5[T1, T2, T3, T4, T5]) Value2() T2 { return t.v2 }
func (t Tuple5[T1, T2, T3, T4, T5]) Value3() T3 { return t.v3 }
func (t Tuple5[T1, T2, T3, T4, T5]) Value4() T4 { return t.v4 }
func (t Tuple5[T1, T2, T3, T4, T5]) Value5() T5 { return t.v5 }

func (t Tuple5[T1, T2, T3, T4, T5]) Arity() int { return 5 }

func (t Tuple5[T1, T2, T3, T4, T5]) Values() []any { return []any{t.v1, t.v2, t.v3, t.v4, t.v5} }

func (t Tuple5[T1, T2, T3, T4, T5]) Equals(other any) bool { return equals(t, other) }

func (t Tuple5[T1, T2, T3, T4, T5]) HashCode() int32 { return hashCode(t) }

func (t Tuple5[T1, T2, T3, T4, T5]) String() string { return toString(t) }

func (t Tuple6[T1, T2, T3, T4, T5, T6]) Value1() T1 { return t.v1 }
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Value2() T2 { return t.v2 }
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Value3() T3 { return t.v3 }
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Value4() T4 { return t.v4 }
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Value5() T5 { return t.v5 }
func (t Tuple6[T1, T2, T3, T4, T5, T6]) Value6() T6 { return t.v6 }

func (t Tuple6[T1, T2, T3, T4, T5, T6]) Arity() int { return 6 }

func (t Tuple6[T1, T2, T3, T4, T5, T6]) Values() []any { return []any{t.v1, t.v2, t.v3, t.v4, t.v5, t.v6} }

func (t Tuple6[T1, T2, T3, T4, T5, T6]) Equals(other any) bool { return equals(t, other) }

func (t Tuple6[T1, T2, T3, T4, T5, T6]) HashCode() int32 { return hashCode(t) }

func (t Tuple6[T1, T2, T3, T4, T5, T6]) String() string { return toString(t) }

// Value returns value at index i, starting from 0
func (t TupleN) Value(i int) any { return t.values[i] }

func (t TupleN) Arity() int { return len(t.values) }

func (t TupleN) Values() []any { return append([]any(nil), t.values...) }

func (t TupleN) Equals(other any) bool { return equals(t, other) }

func (t TupleN) HashCode() int32 { return hashCode(t) }

func (t TupleN) String() string { return toString(t) }
