/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package urls

import (
	"errors"
	"fmt"
)

var ErrNetworkAddress = errors.New("network address error")

var ErrMalformedURL = fmt.Errorf("%w: malformed URL", ErrNetworkAddress)

var errNoScheme = errors.New("missing scheme")

var errNoHost = errors.New("missing host")
