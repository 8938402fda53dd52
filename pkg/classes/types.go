/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import (
	"reflect"
	"sync"

	"github.com/voedger/kommon/pkg/objcache"
)

// Annotation marks a type. Annotations are declared by struct tag of blank field, see AnnotationTag
type Annotation string

// Cached reflection data of a type
type typeInfo struct {
	annotations []Annotation
	annotated   map[Annotation]bool
	super       reflect.Type
}

type scanner struct {
	types objcache.ICache[reflect.Type, *typeInfo]
}

type constructor struct {
	fn          reflect.Value
	typ         reflect.Type
	params      []reflect.Type
	withError   bool
	annotations []Annotation
}

type constructors struct {
	mx     sync.RWMutex
	byType map[reflect.Type][]*constructor
}
