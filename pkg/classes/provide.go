/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import (
	"reflect"
	"sync"

	"github.com/voedger/kommon/pkg/config"
	"github.com/voedger/kommon/pkg/goutils/logger"
	"github.com/voedger/kommon/pkg/objcache"
)

// NewScanner returns scanner which caches type information in cache of cfg.TypeCacheProvider and cfg.TypeCacheSize
func NewScanner(cfg config.Config) (IScanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, _ := cfg.Provider()
	return &scanner{
		types: objcache.NewProvider[reflect.Type, *typeInfo](p, cfg.TypeCacheSize, nil),
	}, nil
}

// NewConstructors returns empty constructors registry
func NewConstructors() IConstructors {
	return &constructors{byType: make(map[reflect.Type][]*constructor)}
}

// DefaultScanner returns scanner used by package-level functions.
//
// It is configured by defaults overridden by KOMMON_* environment variables
var DefaultScanner = sync.OnceValue(func() IScanner {
	cfg, err := config.FromEnv(config.Default())
	if err != nil {
		logger.Error("type scanner environment config ignored:", err)
		cfg = config.Default()
	}
	s, err := NewScanner(cfg)
	if err != nil {
		// notest: defaults are valid
		panic(err)
	}
	return s
})

// DefaultConstructors returns constructors registry used by package-level functions
var DefaultConstructors = sync.OnceValue(NewConstructors)

func AnnotationsOf(t reflect.Type) []Annotation {
	return DefaultScanner().AnnotationsOf(t)
}

func IsAnnotatedWith(t reflect.Type, anyOf ...Annotation) bool {
	return DefaultScanner().IsAnnotatedWith(t, anyOf...)
}

func SuperClassOf(t reflect.Type) (reflect.Type, bool) {
	return DefaultScanner().SuperClassOf(t)
}

func ExtractSuperClassesInSubToSuperOrder(t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	return DefaultScanner().ExtractSuperClassesInSubToSuperOrder(t, stopBefore, includeSubClass)
}

func ExtractSuperClassesInSuperToSubOrder(t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	return DefaultScanner().ExtractSuperClassesInSuperToSubOrder(t, stopBefore, includeSubClass)
}

func AppendSuperClassesInSubToSuperOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	return DefaultScanner().AppendSuperClassesInSubToSuperOrder(dst, t, stopBefore, includeSubClass)
}

func AppendSuperClassesInSuperToSubOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	return DefaultScanner().AppendSuperClassesInSuperToSubOrder(dst, t, stopBefore, includeSubClass)
}

func ExtractClassesWithAnnotationsInSubToSuperOrder(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	return DefaultScanner().ExtractClassesWithAnnotationsInSubToSuperOrder(t, stopBefore, includeSubClass, anyOf...)
}

func ExtractClassesWithAnnotationsInSuperToSubOrder(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	return DefaultScanner().ExtractClassesWithAnnotationsInSuperToSubOrder(t, stopBefore, includeSubClass, anyOf...)
}

func AppendClassesWithAnnotationsInSubToSuperOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	return DefaultScanner().AppendClassesWithAnnotationsInSubToSuperOrder(dst, t, stopBefore, includeSubClass, anyOf...)
}

func AppendClassesWithAnnotationsInSuperToSubOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	return DefaultScanner().AppendClassesWithAnnotationsInSuperToSubOrder(dst, t, stopBefore, includeSubClass, anyOf...)
}

func HasAnySuperClassAnnotatedWith(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) bool {
	return DefaultScanner().HasAnySuperClassAnnotatedWith(t, stopBefore, includeSubClass, anyOf...)
}

// RegisterConstructor registers constructor in DefaultConstructors
func RegisterConstructor(fn any, annotations ...Annotation) error {
	return DefaultConstructors().Register(fn, annotations...)
}

func FindConstructor(t reflect.Type, paramTypes ...reflect.Type) (IConstructor, bool) {
	return DefaultConstructors().FindConstructor(t, paramTypes...)
}

func FindConstructorWithAnnotation(t reflect.Type, anyOf ...Annotation) (IConstructor, bool) {
	return DefaultConstructors().FindConstructorWithAnnotation(t, anyOf...)
}

func FindAllConstructorsWithAnnotation(t reflect.Type, anyOf ...Annotation) []IConstructor {
	return DefaultConstructors().FindAllConstructorsWithAnnotation(t, anyOf...)
}
