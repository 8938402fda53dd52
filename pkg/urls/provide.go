/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package urls

import (
	"fmt"
	"net/url"
	"strings"
)

// Parse parses absolute URL. Scheme is required, http(s), ws(s) and ftp URLs also require host.
//
// Returned error wraps ErrMalformedURL
func Parse(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err == nil {
		switch {
		case u.Scheme == "":
			err = errNoScheme
		case hostSchemes[strings.ToLower(u.Scheme)] && u.Host == "":
			err = errNoHost
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedURL, raw, err)
	}
	return u, nil
}

// MustParse is the same as Parse but panics on error
func MustParse(raw string) *url.URL {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}
