/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import (
	"reflect"
	"strings"

	"github.com/voedger/kommon/pkg/goutils/logger"
)

func (s *scanner) info(t reflect.Type) *typeInfo {
	if ti, ok := s.types.Get(t); ok {
		return ti
	}
	ti := newTypeInfo(t)
	s.types.Put(t, ti)
	if logger.IsTrace() {
		logger.Trace("type info cached:", t, "super:", ti.super, "annotations:", ti.annotations)
	}
	return ti
}

func (s *scanner) AnnotationsOf(t reflect.Type) []Annotation {
	t = deref(t)
	if t == nil {
		return nil
	}
	return append([]Annotation(nil), s.info(t).annotations...)
}

func (s *scanner) IsAnnotatedWith(t reflect.Type, anyOf ...Annotation) bool {
	t = deref(t)
	if t == nil {
		return false
	}
	return s.info(t).isAnnotatedWith(anyOf)
}

func (s *scanner) SuperClassOf(t reflect.Type) (reflect.Type, bool) {
	t = deref(t)
	if t == nil {
		return nil, false
	}
	super := s.info(t).super
	return super, super != nil
}

func (s *scanner) ExtractSuperClassesInSubToSuperOrder(t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	return s.AppendSuperClassesInSubToSuperOrder(nil, t, stopBefore, includeSubClass)
}

func (s *scanner) ExtractSuperClassesInSuperToSubOrder(t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	return s.AppendSuperClassesInSuperToSubOrder(nil, t, stopBefore, includeSubClass)
}

func (s *scanner) AppendSuperClassesInSubToSuperOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	s.walk(t, stopBefore, includeSubClass, func(t reflect.Type, _ *typeInfo) bool {
		dst = append(dst, t)
		return true
	})
	return dst
}

func (s *scanner) AppendSuperClassesInSuperToSubOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool) []reflect.Type {
	l := len(dst)
	dst = s.AppendSuperClassesInSubToSuperOrder(dst, t, stopBefore, includeSubClass)
	reverse(dst[l:])
	return dst
}

func (s *scanner) ExtractClassesWithAnnotationsInSubToSuperOrder(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	return s.AppendClassesWithAnnotationsInSubToSuperOrder(nil, t, stopBefore, includeSubClass, anyOf...)
}

func (s *scanner) ExtractClassesWithAnnotationsInSuperToSubOrder(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	return s.AppendClassesWithAnnotationsInSuperToSubOrder(nil, t, stopBefore, includeSubClass, anyOf...)
}

func (s *scanner) AppendClassesWithAnnotationsInSubToSuperOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	s.walk(t, stopBefore, includeSubClass, func(t reflect.Type, ti *typeInfo) bool {
		if ti.isAnnotatedWith(anyOf) {
			dst = append(dst, t)
		}
		return true
	})
	return dst
}

func (s *scanner) AppendClassesWithAnnotationsInSuperToSubOrder(dst []reflect.Type, t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) []reflect.Type {
	l := len(dst)
	dst = s.AppendClassesWithAnnotationsInSubToSuperOrder(dst, t, stopBefore, includeSubClass, anyOf...)
	reverse(dst[l:])
	return dst
}

func (s *scanner) HasAnySuperClassAnnotatedWith(t, stopBefore reflect.Type, includeSubClass bool, anyOf ...Annotation) (found bool) {
	s.walk(t, stopBefore, includeSubClass, func(_ reflect.Type, ti *typeInfo) bool {
		found = ti.isAnnotatedWith(anyOf)
		return !found
	})
	return found
}

// Calls visit for t and its ancestors in sub to super order while visit returns true.
// Ancestry cycles made by embedded pointers are visited once
func (s *scanner) walk(t, stopBefore reflect.Type, includeSubClass bool, visit func(reflect.Type, *typeInfo) bool) {
	t, stopBefore = deref(t), deref(stopBefore)
	visited := make(map[reflect.Type]bool)
	for first := true; t != nil && t != stopBefore && !visited[t]; first = false {
		visited[t] = true
		ti := s.info(t)
		if (includeSubClass || !first) && !visit(t, ti) {
			return
		}
		t = ti.super
	}
}

func (ti *typeInfo) isAnnotatedWith(anyOf []Annotation) bool {
	for _, a := range anyOf {
		if ti.annotated[a] {
			return true
		}
	}
	return false
}

func newTypeInfo(t reflect.Type) *typeInfo {
	ti := &typeInfo{annotated: make(map[Annotation]bool)}
	if t.Kind() != reflect.Struct {
		return ti
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == annotationField {
			for _, a := range parseAnnotations(f.Tag.Get(AnnotationTag)) {
				if !ti.annotated[a] {
					ti.annotated[a] = true
					ti.annotations = append(ti.annotations, a)
				}
			}
			continue
		}
		if f.Anonymous && ti.super == nil {
			if ft := deref(f.Type); ft.Kind() == reflect.Struct {
				ti.super = ft
			}
		}
	}
	return ti
}

func parseAnnotations(tag string) (aa []Annotation) {
	for _, s := range strings.Split(tag, annotationSeparator) {
		if s = strings.TrimSpace(s); s != "" {
			aa = append(aa, Annotation(s))
		}
	}
	return aa
}
