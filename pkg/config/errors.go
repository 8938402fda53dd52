/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

import "errors"

var ErrInvalidConfig = errors.New("invalid config")
