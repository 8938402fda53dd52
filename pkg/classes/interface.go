/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import "reflect"

// IScanner walks type ancestry and collects types by annotations.
//
// Pointer types are dereferenced. The super class of a struct type is the type of its first embedded struct field.
// Walks start from t (included only if includeSubClass) and go to the root of ancestry.
// If stopBefore is not nil then walk stops before it, stopBefore itself is never included.
// Results of the same type are cached, scanner is safe for concurrent use
type IScanner interface {
	AnnotationsOf(t reflect.Type) []Annotation
	IsAnnotatedWith(t reflect.Type, anyOf ...Annotation) bool
	SuperClassOf(t reflect.Type) (super reflect.Type, ok bool)

	ExtractSuperClassesInSubToSuperOrder(t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type
	ExtractSuperClassesInSuperToSubOrder(t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type
	AppendSuperClassesInSubToSuperOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type
	AppendSuperClassesInSuperToSubOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type

	// Returns walked types annotated with any of annotations
	ExtractClassesWithAnnotationsInSubToSuperOrder(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type
	ExtractClassesWithAnnotationsInSuperToSubOrder(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type
	AppendClassesWithAnnotationsInSubToSuperOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type
	AppendClassesWithAnnotationsInSuperToSubOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type

	HasAnySuperClassAnnotatedWith(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) bool
}

// IConstructor is a registered constructor function
type IConstructor interface {
	// Constructed type as returned by constructor function
	Type() reflect.Type
	ParamTypes() []reflect.Type
	Annotations() []Annotation
	IsAnnotatedWith(anyOf ...Annotation) bool

	// Calls constructor function.
	// Nil args are passed as zero values of nillable parameter types.
	// Returns error wrapping ErrArgumentMismatch if args do not match parameters
	New(args ...any) (any, error)

	String() string
}

// IConstructors is a registry of constructor functions, safe for concurrent use
type IConstructors interface {
	// Registers constructor function with optional annotations.
	//
	// Constructor function returns a value or a value and an error: func(args...) T or func(args...) (T, error).
	// Constructors of T and *T are registered for the same type.
	// Returns ErrNotConstructor or ErrConstructorExists
	Register(fn any, annotations ...Annotation) error

	// Returns constructor of t with exactly specified parameter types
	FindConstructor(t reflect.Type, paramTypes ...reflect.Type) (IConstructor, bool)

	// Returns the first registered constructor of t annotated with any of annotations
	FindConstructorWithAnnotation(t reflect.Type, anyOf ...Annotation) (IConstructor, bool)

	// Returns constructors of t annotated with any of annotations in registration order
	FindAllConstructorsWithAnnotation(t reflect.Type, anyOf ...Annotation) []IConstructor

	// Returns all constructors of t in registration order
	Constructors(t reflect.Type) []IConstructor
}
