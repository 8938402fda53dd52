/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package require

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// Constraint validates a recovered panic value or an error.
type Constraint assert.ValueAssertionFunc

// Has checks that text of the value contains substr
func Has(substr interface{}, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		return assert.Contains(t, textOf(v), fmt.Sprint(substr), msgAndArgs...)
	}
}

// HasAll checks that text of the value contains each of substr
func HasAll(substr ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		text := textOf(v)
		for _, s := range substr {
			if !assert.Contains(t, text, fmt.Sprint(s)) {
				return false
			}
		}
		return true
	}
}

// NotHas checks that text of the value does not contain substr
func NotHas(substr string, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		return assert.NotContains(t, textOf(v), substr, msgAndArgs...)
	}
}

// Is checks that the value is an error with target in its chain
func Is(target error, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		err, ok := v.(error)
		if !ok {
			return assert.Fail(t, fmt.Sprintf("«%#v» is not an error", v), msgAndArgs...)
		}
		return assert.ErrorIs(t, err, target, msgAndArgs...) //nolint:testifylint
	}
}

// NotIs checks that the value is not an error or has no target in its chain
func NotIs(target error, msgAndArgs ...interface{}) Constraint {
	return func(t assert.TestingT, v interface{}, _ ...interface{}) bool {
		if err, ok := v.(error); ok {
			return assert.NotErrorIs(t, err, target, msgAndArgs...) //nolint:testifylint
		}
		return true
	}
}

func PanicsWith(t assert.TestingT, f func(), c ...Constraint) bool {
	recovered, panicked := recoverFrom(f)
	if !panicked {
		return assert.Fail(t, "panic expected")
	}
	return satisfiesAll(t, recovered, c)
}

func ErrorWith(t assert.TestingT, e error, c ...Constraint) bool {
	if e == nil {
		return assert.Fail(t, "error expected")
	}
	return satisfiesAll(t, e, c)
}

func recoverFrom(f func()) (recovered interface{}, panicked bool) {
	defer func() {
		if recovered = recover(); recovered != nil {
			panicked = true
		}
	}()
	f()
	return nil, false
}

func satisfiesAll(t assert.TestingT, v interface{}, c []Constraint) bool {
	for _, constraint := range c {
		if !constraint(t, v) {
			return false
		}
	}
	return true
}

func textOf(v interface{}) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(v)
}
