/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Types which define own equality. Used by EqualAny and DeepEqual
type IEquatable interface {
	Equals(other any) bool
}

// Types which define own hash code. Used by HashCodeOfAny and Hash* functions
type IHashable interface {
	HashCode() int32
}

// Primitive is a type with a fixed hash code rule
type Primitive interface {
	constraints.Integer | constraints.Float | ~bool | ~string
}

// ToStringBuilder accumulates "name=value" pairs and renders them as "TypeName{name=value, ...}".
//
// Use NewToStringBuilder to create.
type ToStringBuilder struct {
	typeName           string
	fieldSeparator     string
	nameValueSeparator string
	parts              []string
}

type ToStringOption func(*ToStringBuilder)

// Slice or map met during recursion over a value
type visit struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// Keys of the slices and maps which are being visited, used to stop on values which contain themselves
type recursionPath map[any]bool
