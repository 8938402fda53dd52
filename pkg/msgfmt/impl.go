/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package msgfmt

import (
	"strings"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/language"

	"github.com/voedger/kommon/pkg/goutils/logger"
	"github.com/voedger/kommon/pkg/objects"
	"github.com/voedger/kommon/pkg/strglue"
)

func format(message string, args []any) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	next, from := 0, 0
	for {
		pos := strings.Index(message[from:], placeholder)
		if pos < 0 {
			break
		}
		pos += from
		_, _ = buf.WriteString(message[from:pos])
		switch {
		case pos > 0 && message[pos-1] == escapeChar:
			// "%%s": the first '%' is already written
			_ = buf.WriteByte(placeholder[1])
		case next < len(args):
			_, _ = buf.WriteString(objects.ToStringOf(args[next]))
			next++
		}
		from = pos + len(placeholder)
	}
	_, _ = buf.WriteString(message[from:])

	if next < len(args) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(surplusArgsOpen)
		strglue.NewWithRenderer[any](surplusArgsSeparator, objects.ToStringOf).GlueTo(buf, args[next:]...)
		_, _ = buf.WriteString(surplusArgsClose)
	}
	return buf.String()
}

func (l *localizer) Localize(key string, preferred []language.Tag, args ...any) (string, bool) {
	kt, ok := l.templates[key]
	if !ok {
		if logger.IsVerbose() {
			logger.Verbose("no templates for message key", key)
		}
		return Format(key, args...), false
	}
	_, idx, confidence := kt.matcher.Match(preferred...)
	if logger.IsTrace() {
		logger.Trace("message key", key, "matched", kt.tags[idx], "confidence", confidence)
	}
	return Format(kt.templates[idx], args...), true
}

func (l *localizer) LocalizeAccept(key, acceptLanguage string, args ...any) (string, bool) {
	preferred, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		logger.Verbose("invalid Accept-Language", acceptLanguage, err)
		preferred = nil
	}
	return l.Localize(key, preferred, args...)
}

func (l *localizer) Languages(key string) []language.Tag {
	if kt, ok := l.templates[key]; ok {
		return append([]language.Tag(nil), kt.tags...)
	}
	return nil
}
