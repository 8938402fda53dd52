/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package functional

func (c Condition1[T]) Not() Condition1[T] {
	return func(v T) bool { return !c(v) }
}

// And returns condition which is true if c and all others are true. Evaluation stops on the first false
func (c Condition1[T]) And(others ...Condition1[T]) Condition1[T] {
	return func(v T) bool {
		if !c(v) {
			return false
		}
		for _, o := range others {
			if !o(v) {
				return false
			}
		}
		return true
	}
}

// Or returns condition which is true if c or any of others is true. Evaluation stops on the first true
func (c Condition1[T]) Or(others ...Condition1[T]) Condition1[T] {
	return func(v T) bool {
		if c(v) {
			return true
		}
		for _, o := range others {
			if o(v) {
				return true
			}
		}
		return false
	}
}

// Apply applies f to v
func (f Function1[T, R]) Apply(v T) R { return f(v) }

func (f Function2[T1, T2, R]) Apply(v1 T1, v2 T2) R { return f(v1, v2) }

func (s Supplier[T]) Supply() T { return s() }
