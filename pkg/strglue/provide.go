/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package strglue

// New returns glue which joins values with separator
func New[E any](separator string) IGlue[E] {
	return NewWithRenderer[E](separator, render[E])
}

// NewWithRenderer returns glue which renders values with specified function.
//
// Nil renderer means default rendering.
func NewWithRenderer[E any](separator string, renderer func(E) string) IGlue[E] {
	if renderer == nil {
		renderer = render[E]
	}
	return &glue[E]{separator: separator, render: renderer}
}

// WithoutSeparator returns glue which concatenates values
func WithoutSeparator[E any]() IGlue[E] {
	return New[E]("")
}

// Comma returns glue which joins values with ", "
func Comma[E any]() IGlue[E] {
	return New[E](CommaSeparator)
}
