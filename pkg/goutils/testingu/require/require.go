/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package require

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Require extends testify require.Assertions with constraint-based checks
// of panics and errors.
type Require struct {
	*require.Assertions
	t *testing.T
}

func New(t *testing.T) *Require {
	return &Require{
		Assertions: require.New(t),
		t:          t,
	}
}

// Has returns a constraint that checks that panic value or error text contains substr.
func (r *Require) Has(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return Has(substr, msgAndArgs...)
}

// NotHas returns a constraint that checks that panic value or error text does not contain substr.
func (r *Require) NotHas(substr string, msgAndArgs ...interface{}) Constraint {
	return NotHas(substr, msgAndArgs...)
}

// Is returns a constraint that checks that the panic value is an error
// whose chain contains target.
func (r *Require) Is(target error, msgAndArgs ...interface{}) Constraint {
	return Is(target, msgAndArgs...)
}

// NotIs returns a constraint that checks that no error in the chain matches target.
func (r *Require) NotIs(target error, msgAndArgs ...interface{}) Constraint {
	return NotIs(target, msgAndArgs...)
}

// PanicsWith asserts that f panics and the recovered value satisfies all constraints.
//
//	require := require.New(t)
//	require.PanicsWith(
//		func(){ objects.MustNotBeNull(nil) },
//		require.Is(objects.ErrNilArgument),
//		require.Has("must not be nil"))
func (r *Require) PanicsWith(f func(), c ...Constraint) {
	if !PanicsWith(r.t, f, c...) {
		r.t.FailNow()
	}
}

// ErrorWith asserts that e is not nil and satisfies all constraints.
func (r *Require) ErrorWith(e error, c ...Constraint) {
	if !ErrorWith(r.t, e, c...) {
		r.t.FailNow()
	}
}
