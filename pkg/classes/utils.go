/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import "reflect"

// TypeOf returns type of T. Works for interface types also
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypesOf returns dynamic types of values. Nil values have nil types
func TypesOf(values ...any) []reflect.Type {
	types := make([]reflect.Type, len(values))
	for i, v := range values {
		types[i] = reflect.TypeOf(v)
	}
	return types
}

// ValuesOf returns values as slice
func ValuesOf(values ...any) []any {
	return append([]any(nil), values...)
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
