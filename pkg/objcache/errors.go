/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import "errors"

var ErrUnknownProvider = errors.New("unknown cache provider")
