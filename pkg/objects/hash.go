/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"math"
	"reflect"
	"unicode/utf16"
)

// HashCodeOf returns hash code of primitive value.
//
// Integers up to 32 bits hash to their value, 64-bit integers to the xor of
// their halves, floats to their canonical IEEE 754 bits (folded for float64),
// bools to 1231 or 1237 and strings to the polynomial hash of their UTF-16 code units.
func HashCodeOf[T Primitive](value T) int32 {
	return primitiveHashCode(reflect.ValueOf(value))
}

// HashCodeOfAny returns hash code of any value. Nil values hash to 0.
//
// IHashable values provide own hash code, primitives are hashed by HashCodeOf,
// slices and arrays as HashObjects of their elements, maps as the sum of
// key hash xor value hash, structs as the combination of their fields.
// Pointers, channels and functions hash by address. A slice or map met
// again inside itself contributes 0.
func HashCodeOfAny(value any) int32 {
	return hashCodeOfAny(value, nil)
}

func hashCodeOfAny(value any, path recursionPath) int32 {
	if IsNull(value) {
		return 0
	}
	if h, ok := value.(IHashable); ok {
		return h.HashCode()
	}
	return valueHashCode(reflect.ValueOf(value), path)
}

// Hash returns HashPrime*HashSeed + HashCodeOf(value)
func Hash[T Primitive](value T) int32 {
	return hash0(HashSeed, HashCodeOf(value))
}

// HashSlice combines hash codes of values starting from HashSeed. Nil slice hashes to 0.
func HashSlice[T Primitive](values []T) int32 {
	if values == nil {
		return 0
	}
	result := HashSeed
	for _, v := range values {
		result = hash0(result, HashCodeOf(v))
	}
	return result
}

// HashValues hashes the sequence as if all the values were placed into a slice
func HashValues[T Primitive](first T, rest ...T) int32 {
	result := Hash(first)
	for _, v := range rest {
		result = hash0(result, HashCodeOf(v))
	}
	return result
}

// HashObjectWithSeed returns HashPrime*seed + HashCodeOfAny(value)
func HashObjectWithSeed(seed int32, value any) int32 {
	return hash0(seed, HashCodeOfAny(value))
}

func HashObject(value any) int32 {
	return hash0(HashSeed, HashCodeOfAny(value))
}

// HashObjects combines hash codes of values starting from HashSeed. Nil slice hashes to 0.
func HashObjects(values []any) int32 {
	if values == nil {
		return 0
	}
	result := HashSeed
	for _, v := range values {
		result = hash0(result, HashCodeOfAny(v))
	}
	return result
}

// HashAll hashes the sequence as if all the values were placed into a slice
func HashAll(first any, rest ...any) int32 {
	result := HashObject(first)
	for _, v := range rest {
		result = hash0(result, HashCodeOfAny(v))
	}
	return result
}

func hash0(seed, hashCode int32) int32 {
	return HashPrime*seed + hashCode
}

func fold64(bits uint64) int32 {
	return int32(bits ^ (bits >> 32))
}

func float32Bits(f float32) uint32 {
	if f != f {
		return canonicalNaN32
	}
	return math.Float32bits(f)
}

func float64Bits(f float64) uint64 {
	if math.IsNaN(f) {
		return canonicalNaN64
	}
	return math.Float64bits(f)
}

func stringHashCode(s string) (h int32) {
	for _, u := range utf16.Encode([]rune(s)) {
		h = HashPrime*h + int32(u)
	}
	return h
}

func primitiveHashCode(v reflect.Value) int32 {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return hashTrue
		}
		return hashFalse
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type().Size() <= 4 {
			return int32(v.Int())
		}
		return fold64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Type().Size() <= 4 {
			return int32(uint32(v.Uint()))
		}
		return fold64(v.Uint())
	case reflect.Float32:
		return int32(float32Bits(float32(v.Float())))
	case reflect.Float64:
		return fold64(float64Bits(v.Float()))
	case reflect.String:
		return stringHashCode(v.String())
	}
	// notest
	return 0
}

func valueHashCode(v reflect.Value, path recursionPath) int32 {
	switch v.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return primitiveHashCode(v)
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return hash0(fold64(float64Bits(real(c))), fold64(float64Bits(imag(c))))
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice {
			if v.IsNil() {
				return 0
			}
			key := visitOf(v)
			var entered bool
			if path, entered = path.enter(key); !entered {
				return 0
			}
			defer path.leave(key)
		}
		result := HashSeed
		for i := 0; i < v.Len(); i++ {
			result = hash0(result, elemHashCode(v.Index(i), path))
		}
		return result
	case reflect.Map:
		if v.IsNil() {
			return 0
		}
		key := visitOf(v)
		var entered bool
		if path, entered = path.enter(key); !entered {
			return 0
		}
		defer path.leave(key)
		var result int32
		iter := v.MapRange()
		for iter.Next() {
			result += elemHashCode(iter.Key(), path) ^ elemHashCode(iter.Value(), path)
		}
		return result
	case reflect.Struct:
		result := HashSeed
		for i := 0; i < v.NumField(); i++ {
			result = hash0(result, elemHashCode(v.Field(i), path))
		}
		return result
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return elemHashCode(v.Elem(), path)
	}
	// pointers, channels, functions
	if v.IsNil() {
		return 0
	}
	return fold64(uint64(v.Pointer()))
}

// Unexported struct fields can not be converted to interface, so IHashable is checked only for accessible values
func elemHashCode(v reflect.Value, path recursionPath) int32 {
	if v.CanInterface() {
		return hashCodeOfAny(v.Interface(), path)
	}
	return valueHashCode(v, path)
}
