/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import (
	"fmt"
	"reflect"

	"github.com/voedger/kommon/pkg/goutils/logger"
	"github.com/voedger/kommon/pkg/objects"
)

var errorType = TypeOf[error]()

func newConstructor(fn any, annotations []Annotation) (*constructor, error) {
	if objects.IsNull(fn) {
		return nil, fmt.Errorf("%w: nil", ErrNotConstructor)
	}
	v := reflect.ValueOf(fn)
	ft := v.Type()
	if ft.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %v is not a function", ErrNotConstructor, ft)
	}
	if ft.IsVariadic() {
		return nil, fmt.Errorf("%w: %v is variadic", ErrNotConstructor, ft)
	}
	switch {
	case ft.NumOut() == 1 && ft.Out(0) != errorType:
	case ft.NumOut() == 2 && ft.Out(1) == errorType:
	default:
		return nil, fmt.Errorf("%w: %v must return T or (T, error)", ErrNotConstructor, ft)
	}
	c := &constructor{
		fn:          v,
		typ:         ft.Out(0),
		withError:   ft.NumOut() == 2,
		annotations: append([]Annotation(nil), annotations...),
	}
	for i := 0; i < ft.NumIn(); i++ {
		c.params = append(c.params, ft.In(i))
	}
	return c, nil
}

func (c *constructor) Type() reflect.Type { return c.typ }

func (c *constructor) ParamTypes() []reflect.Type { return append([]reflect.Type(nil), c.params...) }

func (c *constructor) Annotations() []Annotation { return append([]Annotation(nil), c.annotations...) }

func (c *constructor) IsAnnotatedWith(anyOf ...Annotation) bool {
	for _, a := range anyOf {
		for _, ca := range c.annotations {
			if a == ca {
				return true
			}
		}
	}
	return false
}

func (c *constructor) New(args ...any) (any, error) {
	if len(args) != len(c.params) {
		return nil, fmt.Errorf("%w: %v expects %d arguments, got %d", ErrArgumentMismatch, c, len(c.params), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		p := c.params[i]
		switch {
		case arg == nil && nillable(p):
			in[i] = reflect.Zero(p)
		case arg != nil && reflect.TypeOf(arg).AssignableTo(p):
			in[i] = reflect.ValueOf(arg)
		default:
			return nil, fmt.Errorf("%w: %v argument %d: %T is not assignable to %v", ErrArgumentMismatch, c, i, arg, p)
		}
	}
	out := c.fn.Call(in)
	if c.withError {
		if err, _ := out[1].Interface().(error); err != nil {
			return nil, err
		}
	}
	return out[0].Interface(), nil
}

func (c *constructor) String() string {
	return c.fn.Type().String()
}

func (c *constructor) sameParams(params []reflect.Type) bool {
	if len(c.params) != len(params) {
		return false
	}
	for i, p := range c.params {
		if p != params[i] {
			return false
		}
	}
	return true
}

func (cc *constructors) Register(fn any, annotations ...Annotation) error {
	c, err := newConstructor(fn, annotations)
	if err != nil {
		return err
	}
	t := deref(c.typ)

	cc.mx.Lock()
	defer cc.mx.Unlock()

	for _, exists := range cc.byType[t] {
		if exists.sameParams(c.params) {
			return fmt.Errorf("%w: %v and %v", ErrConstructorExists, exists, c)
		}
	}
	cc.byType[t] = append(cc.byType[t], c)
	if logger.IsVerbose() {
		logger.Verbose("constructor registered:", c, "annotations:", c.annotations)
	}
	return nil
}

func (cc *constructors) FindConstructor(t reflect.Type, paramTypes ...reflect.Type) (IConstructor, bool) {
	cc.mx.RLock()
	defer cc.mx.RUnlock()

	for _, c := range cc.byType[deref(t)] {
		if c.sameParams(paramTypes) {
			return c, true
		}
	}
	return nil, false
}

func (cc *constructors) FindConstructorWithAnnotation(t reflect.Type, anyOf ...Annotation) (IConstructor, bool) {
	cc.mx.RLock()
	defer cc.mx.RUnlock()

	for _, c := range cc.byType[deref(t)] {
		if c.IsAnnotatedWith(anyOf...) {
			return c, true
		}
	}
	return nil, false
}

func (cc *constructors) FindAllConstructorsWithAnnotation(t reflect.Type, anyOf ...Annotation) (result []IConstructor) {
	cc.mx.RLock()
	defer cc.mx.RUnlock()

	for _, c := range cc.byType[deref(t)] {
		if c.IsAnnotatedWith(anyOf...) {
			result = append(result, c)
		}
	}
	return result
}

func (cc *constructors) Constructors(t reflect.Type) (result []IConstructor) {
	cc.mx.RLock()
	defer cc.mx.RUnlock()

	for _, c := range cc.byType[deref(t)] {
		result = append(result, c)
	}
	return result
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return true
	}
	return false
}
