/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package functional

import "sync"

// Compose returns function which applies f then g
func Compose[T, M, R any](f Function1[T, M], g Function1[M, R]) Function1[T, R] {
	return func(v T) R { return g(f(v)) }
}

// Identity returns function which returns its argument
func Identity[T any]() Function1[T, T] {
	return func(v T) T { return v }
}

// Always returns condition which is always true
func Always[T any]() Condition1[T] {
	return func(T) bool { return true }
}

// Never returns condition which is always false
func Never[T any]() Condition1[T] {
	return func(T) bool { return false }
}

// Constant returns supplier which always supplies v
func Constant[T any](v T) Supplier[T] {
	return func() T { return v }
}

// Memoize returns supplier which calls s once and then supplies the remembered value
func Memoize[T any](s Supplier[T]) Supplier[T] {
	return sync.OnceValue[T](s)
}
