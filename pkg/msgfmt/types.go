/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package msgfmt

import "golang.org/x/text/language"

// Translations maps message key to its templates by language
type Translations map[string]map[language.Tag]string

type localizer struct {
	templates map[string]*keyTemplates
}

// Templates of a single message key. Fallback language template, if present, is the first
type keyTemplates struct {
	tags      []language.Tag
	templates []string
	matcher   language.Matcher
}
