/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objects

import "errors"

var ErrNilArgument = errors.New("argument must not be nil")

var ErrIllegalArgument = errors.New("illegal argument")
