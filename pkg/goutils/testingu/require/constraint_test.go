/*
 * Copyright (c) 2024-present Sigma-Soft, Ltd.
 */

package require

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestPanicsWith(t *testing.T) {
	testError := fmt.Errorf("my test error: %w", errors.ErrUnsupported)
	tests := []struct {
		name string
		f    func()
		c    Constraint
		want bool
	}{
		{"Should fail if no expected panic",
			func() {}, Has("test"), false},
		{"Should be ok if panic contains expected message",
			func() { panic("my crazy message") }, Has("crazy"), true},
		{"Should be ok if panic error contains expected message",
			func() { panic(testError) }, Has("test"), true},
		{"Should fail if panic with unexpected message",
			func() { panic("other error") }, Has("test"), false},
		{"Should be ok if panic contains all expected messages",
			func() { panic("my crazy message") }, HasAll("my", "crazy", "message"), true},
		{"Should fail if panic does not contain all messages",
			func() { panic("other error") }, HasAll("test", "error"), false},
		{"Should be ok if panic does not contain deprecated message",
			func() { panic(testError) }, NotHas("deprecated"), true},
		{"Should fail if panic contains deprecated message",
			func() { panic("deprecated error") }, NotHas("deprecated"), false},
		{"Should be ok if panic error wraps target",
			func() { panic(testError) }, Is(errors.ErrUnsupported), true},
		{"Should fail if panic value is not an error",
			func() { panic("text") }, Is(errors.ErrUnsupported), false},
		{"Should be ok if panic value is not an error for NotIs",
			func() { panic("text") }, NotIs(errors.ErrUnsupported), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &testing.T{}
			if got := PanicsWith(mock, tt.f, tt.c); got != tt.want {
				t.Errorf("PanicsWith() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorWith(t *testing.T) {
	testError := fmt.Errorf("my test error: %w", errors.ErrUnsupported)

	if ErrorWith(&testing.T{}, nil) {
		t.Error("ErrorWith(nil) should fail")
	}
	if !ErrorWith(&testing.T{}, testError, Is(errors.ErrUnsupported), Has("my test")) {
		t.Error("ErrorWith() should pass")
	}
	if ErrorWith(&testing.T{}, testError, NotIs(errors.ErrUnsupported)) {
		t.Error("ErrorWith() with NotIs should fail")
	}
}

func TestRequire(t *testing.T) {
	require := New(t)
	require.PanicsWith(func() { panic(errors.ErrUnsupported) },
		require.Is(errors.ErrUnsupported),
		require.Has("unsupported"),
		require.NotHas("toxic"))
	require.ErrorWith(fmt.Errorf("wrapped: %w", errors.ErrUnsupported),
		require.Is(errors.ErrUnsupported),
		require.NotIs(os.ErrClosed))
}
