/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package msgfmt

import "golang.org/x/text/language"

// ILocalizer formats messages using templates in the language which best matches user preferences
type ILocalizer interface {
	// Localize formats template of key in the language best matching preferred.
	// If key has no templates then key itself is formatted and ok is false
	Localize(key string, preferred []language.Tag, args ...any) (msg string, ok bool)

	// LocalizeAccept is the same as Localize with preferences parsed from Accept-Language header value
	LocalizeAccept(key, acceptLanguage string, args ...any) (msg string, ok bool)

	// Languages returns languages which have templates for key
	Languages(key string) []language.Tag
}
