/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package msgfmt

const (
	escapeChar  = '%'
	placeholder = "%s"

	surplusArgsOpen      = "["
	surplusArgsSeparator = ", "
	surplusArgsClose     = "]"
)
