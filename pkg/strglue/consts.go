/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package strglue

const (
	CommaSeparator = ", "
	nullString     = "null"
)
