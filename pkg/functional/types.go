/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package functional

// Condition1 checks a single value
type Condition1[T any] func(T) bool

// Function1 maps a value of type T to a value of type R
type Function1[T, R any] func(T) R

// Function2 maps two values to a value of type R
type Function2[T1, T2, R any] func(T1, T2) R

// Supplier supplies values on demand
type Supplier[T any] func() T
