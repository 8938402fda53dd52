/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package strglue

import "github.com/valyala/bytebufferpool"

// IGlue joins rendered values with a separator
type IGlue[E any] interface {
	// Returns values rendered and joined with separator
	Glue(values ...E) string

	// Appends values rendered and joined with separator to buf
	GlueTo(buf *bytebufferpool.ByteBuffer, values ...E)

	Separator() string
}
