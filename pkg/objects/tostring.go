/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/voedger/kommon/pkg/strglue"
)

// NewToStringBuilder returns builder which renders obj type name followed by added fields.
//
// Panics if obj is nil
func NewToStringBuilder(obj any, opts ...ToStringOption) *ToStringBuilder {
	MustNotBeNull(obj, "can not build string representation of nil")
	b := &ToStringBuilder{
		typeName:           simpleTypeName(reflect.TypeOf(obj)),
		fieldSeparator:     DefaultFieldSeparator,
		nameValueSeparator: DefaultNameValueSeparator,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func WithFieldSeparator(separator string) ToStringOption {
	return func(b *ToStringBuilder) { b.fieldSeparator = separator }
}

func WithNameValueSeparator(separator string) ToStringOption {
	return func(b *ToStringBuilder) { b.nameValueSeparator = separator }
}

// Add adds "name=value" followed by field separator.
//
// Panics if name is empty
func (b *ToStringBuilder) Add(name string, value any) *ToStringBuilder {
	if name == "" {
		panic(fmt.Errorf("%w: name can not be empty", ErrIllegalArgument))
	}
	return b.append(name, b.nameValueSeparator, ToStringOf(value), b.fieldSeparator)
}

// Value adds value followed by field separator
func (b *ToStringBuilder) Value(value string) *ToStringBuilder {
	return b.append(value, b.fieldSeparator)
}

func (b *ToStringBuilder) ValueWithNoSeparator(value string) *ToStringBuilder {
	return b.append(value)
}

func (b *ToStringBuilder) NewLine() *ToStringBuilder {
	return b.append(NewLine)
}

func (b *ToStringBuilder) FieldSeparator() string { return b.fieldSeparator }

func (b *ToStringBuilder) NameValueSeparator() string { return b.nameValueSeparator }

// String returns "TypeName{...}". Trailing field separator is not rendered
func (b *ToStringBuilder) String() string {
	parts := b.parts
	if l := len(parts); l > 0 && parts[l-1] == b.fieldSeparator {
		parts = parts[:l-1]
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(b.typeName)
	_, _ = buf.WriteString("{")
	strglue.WithoutSeparator[string]().GlueTo(buf, parts...)
	_, _ = buf.WriteString("}")
	return buf.String()
}

func (b *ToStringBuilder) StringThenAddNewLine() string {
	return b.String() + NewLine
}

func (b *ToStringBuilder) append(parts ...string) *ToStringBuilder {
	b.parts = append(b.parts, parts...)
	return b
}

// Type name without package and type parameters, pointers are dereferenced
func simpleTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		return t.String()
	}
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
