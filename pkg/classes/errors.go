/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package classes

import "errors"

var ErrNotConstructor = errors.New("not a constructor")

var ErrConstructorExists = errors.New("constructor with the same signature already registered")

var ErrArgumentMismatch = errors.New("arguments do not match constructor parameters")
