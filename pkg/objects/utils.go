/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"fmt"
	"reflect"

	"github.com/voedger/kommon/pkg/strglue"
)

// IsNull returns true if v is nil interface or holds nil pointer, map, slice, channel or function
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func IsNotNull(v any) bool {
	return !IsNull(v)
}

// ToStringOf returns NullString for nil, "[a, b]" for slices and arrays, String() for fmt.Stringer and errors.
// Other values are formatted by fmt.Sprint.
//
// A slice met again inside itself is rendered as "[...]". Maps which contain themselves are not supported
func ToStringOf(v any) string {
	return toStringOf(v, nil)
}

func toStringOf(v any, path recursionPath) string {
	if IsNull(v) {
		return NullString
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}
	rv := reflect.ValueOf(v)
	if !isArrayLike(rv) {
		return fmt.Sprint(v)
	}
	if rv.Kind() == reflect.Slice {
		key := visitOf(rv)
		var entered bool
		if path, entered = path.enter(key); !entered {
			return recursionString
		}
		defer path.leave(key)
	}
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	glue := strglue.NewWithRenderer[any](DefaultFieldSeparator, func(e any) string { return toStringOf(e, path) })
	return "[" + glue.Glue(values...) + "]"
}

// ToStringOfOrDefault returns nullDefault if v is nil, ToStringOf(v) otherwise
func ToStringOfOrDefault(v any, nullDefault string) string {
	if IsNull(v) {
		return nullDefault
	}
	return ToStringOf(v)
}

// Compare returns 0 if left and right are identical, cmp(left, right) otherwise.
//
// Panics if cmp is nil
func Compare[T any](left, right T, cmp func(T, T) int) int {
	if cmp == nil {
		panic(fmt.Errorf("%w: comparator", ErrNilArgument))
	}
	if Identical(left, right) {
		return 0
	}
	return cmp(left, right)
}

// MustNotBeNull returns v if it is not null, panics with ErrNilArgument otherwise.
//
// msgAndArgs is an optional message (or format string with arguments) for the panic
func MustNotBeNull[T any](v T, msgAndArgs ...any) T {
	if IsNull(v) {
		panic(fmt.Errorf("%w: %s", ErrNilArgument, messageFromMsgAndArgs(msgAndArgs...)))
	}
	return v
}

// NullThenUse returns v if it is not null, def otherwise
func NullThenUse[T any](v, def T) T {
	if IsNull(v) {
		return def
	}
	return v
}

// NullThenGet returns v if it is not null, supplied value otherwise.
//
// Panics if supplier is nil
func NullThenGet[T any](v T, supplier func() T) T {
	MustNotBeNull(supplier, "supplier")
	if IsNull(v) {
		return supplier()
	}
	return v
}

// CastIfInstanceOf returns v as T and true if v holds T, zero value and false otherwise
func CastIfInstanceOf[T any](v any) (T, bool) {
	t, ok := v.(T)
	return t, ok
}

func messageFromMsgAndArgs(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return "value must not be nil"
	case 1:
		return ToStringOf(msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}

func visitOf(v reflect.Value) visit {
	res := visit{typ: v.Type(), ptr: v.Pointer()}
	if v.Kind() == reflect.Slice {
		res.len = v.Len()
	}
	return res
}

// enter returns false if key is already on the path. Nil path is allocated on the first enter
func (p recursionPath) enter(key any) (recursionPath, bool) {
	if p[key] {
		return p, false
	}
	if p == nil {
		p = recursionPath{}
	}
	p[key] = true
	return p, true
}

func (p recursionPath) leave(key any) {
	delete(p, key)
}
