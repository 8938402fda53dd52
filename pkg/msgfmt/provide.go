/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package msgfmt

import (
	"sort"

	"golang.org/x/text/language"
)

// Format replaces "%s" placeholders in message with args in order.
//
// "%%s" is rendered as "%s" and consumes no argument. Placeholders without arguments are removed.
// Surplus arguments are appended as " [a, b]" (or "[a, b]" if the result is empty).
// Arguments are rendered by objects.ToStringOf
func Format(message string, args ...any) string {
	return format(message, args)
}

// NewLocalizer returns localizer for templates in translations.
//
// If no language matches user preferences then fallback language template is used.
// If key has no fallback template then template of the first language in alphabetical order is used
func NewLocalizer(translations Translations, fallback language.Tag) ILocalizer {
	l := &localizer{
		templates: make(map[string]*keyTemplates, len(translations)),
	}
	for key, byLang := range translations {
		if len(byLang) == 0 {
			continue
		}
		kt := &keyTemplates{}
		for tag := range byLang {
			kt.tags = append(kt.tags, tag)
		}
		sort.Slice(kt.tags, func(i, j int) bool {
			if ti, tj := kt.tags[i] == fallback, kt.tags[j] == fallback; ti != tj {
				return ti
			}
			return kt.tags[i].String() < kt.tags[j].String()
		})
		for _, tag := range kt.tags {
			kt.templates = append(kt.templates, byLang[tag])
		}
		kt.matcher = language.NewMatcher(kt.tags)
		l.templates[key] = kt
	}
	return l
}
