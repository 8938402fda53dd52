/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package strglue

import (
	"fmt"
	"reflect"

	"github.com/valyala/bytebufferpool"
)

type glue[E any] struct {
	separator string
	render    func(E) string
}

func (g *glue[E]) Glue(values ...E) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	g.GlueTo(buf, values...)
	return buf.String()
}

func (g *glue[E]) GlueTo(buf *bytebufferpool.ByteBuffer, values ...E) {
	for i, v := range values {
		if i > 0 {
			_, _ = buf.WriteString(g.separator)
		}
		_, _ = buf.WriteString(g.render(v))
	}
}

func (g *glue[E]) Separator() string { return g.separator }

// Renders nil and typed nil as "null", fmt.Stringer by its String(), others by fmt.Sprint
func render[E any](v E) string {
	if isNil(any(v)) {
		return nullString
	}
	switch s := any(v).(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

func isNil(v any) bool {
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
