/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import "reflect"

func Equal[T comparable](left, right T) bool {
	return left == right
}

func NotEqual[T comparable](left, right T) bool {
	return left != right
}

// EqualAny returns true if both arguments are nil, identical or if left equals right.
//
// If left implements IEquatable then left.Equals(right) decides. Otherwise
// values of the same comparable dynamic type are compared with ==.
// Distinct values of incomparable types (slices, maps, funcs) are never equal, see DeepEqual.
func EqualAny(left, right any) bool {
	if IsNull(left) || IsNull(right) {
		return IsNull(left) && IsNull(right)
	}
	if Identical(left, right) {
		return true
	}
	if e, ok := left.(IEquatable); ok {
		return e.Equals(right)
	}
	l, r := reflect.ValueOf(left), reflect.ValueOf(right)
	if l.Type() != r.Type() {
		return false
	}
	if l.Comparable() {
		return left == right
	}
	return false
}

func NotEqualAny(left, right any) bool {
	return !EqualAny(left, right)
}

// DeepEqual returns true if both arguments are nil, identical or deeply equal.
//
// IEquatable values are compared with EqualAny. Slices and arrays with the same
// element type are equal if they have the same length and pairwise deeply equal
// elements. Maps of the same type are equal if they have the same keys with deeply
// equal values. Structs of the same type are compared field by field. Other values
// are compared with EqualAny.
//
// Slices and maps which contain themselves are considered equal once the same
// pair of them is met again.
func DeepEqual(left, right any) bool {
	return deepEqual(left, right, nil)
}

func NotDeepEqual(left, right any) bool {
	return !DeepEqual(left, right)
}

// Identical returns true if both arguments refer to the same object.
//
// Pointers, maps, channels and functions are identical if they have the same address,
// slices if they share the same backing array start and length. Other values
// are identical if they are equal with ==.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	}
	if av.Comparable() {
		return a == b
	}
	return false
}

func NotIdentical(a, b any) bool {
	return !Identical(a, b)
}

func isArrayLike(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Slice || k == reflect.Array
}

func deepEqual(left, right any, path recursionPath) bool {
	if IsNull(left) || IsNull(right) {
		return IsNull(left) && IsNull(right)
	}
	if Identical(left, right) {
		return true
	}
	if _, ok := left.(IEquatable); ok {
		return EqualAny(left, right)
	}
	return deepEqualValues(reflect.ValueOf(left), reflect.ValueOf(right), path)
}

func deepEqualValues(l, r reflect.Value, path recursionPath) bool {
	if isArrayLike(l) && isArrayLike(r) {
		return deepEqualArrays(l, r, path)
	}
	if l.Type() != r.Type() {
		return false
	}
	switch l.Kind() {
	case reflect.Map:
		return deepEqualMaps(l, r, path)
	case reflect.Struct:
		return deepEqualStructs(l, r, path)
	}
	if l.CanInterface() && r.CanInterface() {
		return EqualAny(l.Interface(), r.Interface())
	}
	return equalHidden(l, r)
}

func deepEqualArrays(l, r reflect.Value, path recursionPath) bool {
	if l.Type().Elem() != r.Type().Elem() || l.Len() != r.Len() {
		return false
	}
	if l.Kind() == reflect.Slice && r.Kind() == reflect.Slice {
		key := [2]visit{visitOf(l), visitOf(r)}
		var entered bool
		if path, entered = path.enter(key); !entered {
			return true
		}
		defer path.leave(key)
	}
	for i := 0; i < l.Len(); i++ {
		if !deepEqualElems(l.Index(i), r.Index(i), path) {
			return false
		}
	}
	return true
}

func deepEqualMaps(l, r reflect.Value, path recursionPath) bool {
	if l.Len() != r.Len() {
		return false
	}
	key := [2]visit{visitOf(l), visitOf(r)}
	var entered bool
	if path, entered = path.enter(key); !entered {
		return true
	}
	defer path.leave(key)
	iter := l.MapRange()
	for iter.Next() {
		rv := r.MapIndex(iter.Key())
		if !rv.IsValid() || !deepEqualElems(iter.Value(), rv, path) {
			return false
		}
	}
	return true
}

func deepEqualStructs(l, r reflect.Value, path recursionPath) bool {
	for i := 0; i < l.NumField(); i++ {
		if !deepEqualElems(l.Field(i), r.Field(i), path) {
			return false
		}
	}
	return true
}

// Unexported struct fields can not be converted to interface, so IEquatable is checked only for accessible values
func deepEqualElems(l, r reflect.Value, path recursionPath) bool {
	if l.CanInterface() && r.CanInterface() {
		return deepEqual(l.Interface(), r.Interface(), path)
	}
	if l.Kind() == reflect.Interface {
		if l.IsNil() || r.IsNil() {
			return l.IsNil() && r.IsNil()
		}
		l, r = l.Elem(), r.Elem()
	}
	switch l.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if l.Kind() == r.Kind() && (l.IsNil() || r.IsNil()) {
			return l.IsNil() && r.IsNil()
		}
	}
	return deepEqualValues(l, r, path)
}

// Values of the same type which can not be converted to interface
func equalHidden(l, r reflect.Value) bool {
	switch l.Kind() {
	case reflect.Bool:
		return l.Bool() == r.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return l.Int() == r.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return l.Uint() == r.Uint()
	case reflect.Float32, reflect.Float64:
		return l.Float() == r.Float()
	case reflect.Complex64, reflect.Complex128:
		return l.Complex() == r.Complex()
	case reflect.String:
		return l.String() == r.String()
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return l.Pointer() == r.Pointer()
	}
	return false
}
