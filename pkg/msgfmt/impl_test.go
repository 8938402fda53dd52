/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package msgfmt

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/voedger/kommon/pkg/goutils/testingu/require"
)

func TestFormat(t *testing.T) {
	require := require.New(t)

	tests := []struct {
		name     string
		message  string
		args     []any
		expected string
	}{
		{"no args", "hello", nil, "hello"},
		{"single", "Hello %s", []any{"Kevin"}, "Hello Kevin"},
		{"several", "%s + %s = %s", []any{1, 2, 3}, "1 + 2 = 3"},
		{"surplus placeholders are removed", "a%sb%sc", []any{1}, "a1bc"},
		{"placeholders without args", "a%sb", nil, "ab"},
		{"only placeholder", "%s", nil, ""},
		{"surplus args", "no placeholders", []any{1, 2}, "no placeholders [1, 2]"},
		{"surplus args of empty message", "", []any{1, 2}, "[1, 2]"},
		{"nil arg", "%s", []any{"a", nil}, "a [null]"},
		{"escaped", "100%%s", []any{1}, "100%s [1]"},
		{"escaped then placeholder", "%%s%s", []any{1}, "%s1"},
		{"escaped after args", "%s %%s", []any{1}, "1 %s"},
		{"slice arg", "values: %s", []any{[]int{1, 2}}, "values: [1, 2]"},
		{"other verbs are kept", "%d%%", []any{1}, "%d%% [1]"},
		{"unicode", "Привіт, %s!", []any{"світ"}, "Привіт, світ!"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(test.expected, Format(test.message, test.args...))
		})
	}
}

func TestLocalizer(t *testing.T) {
	require := require.New(t)

	l := NewLocalizer(Translations{
		"greeting": {
			language.English:   "Hello %s",
			language.German:    "Hallo %s",
			language.Ukrainian: "Привіт %s",
		},
		"bye": {
			language.German: "Tschüss",
			language.French: "Au revoir",
		},
		"empty": {},
	}, language.English)

	t.Run("best match", func(t *testing.T) {
		msg, ok := l.Localize("greeting", []language.Tag{language.German}, "Max")
		require.True(ok)
		require.Equal("Hallo Max", msg)

		msg, ok = l.Localize("greeting", []language.Tag{language.BritishEnglish}, "Max")
		require.True(ok)
		require.Equal("Hello Max", msg)
	})

	t.Run("fallback", func(t *testing.T) {
		msg, ok := l.Localize("greeting", []language.Tag{language.Japanese}, "Max")
		require.True(ok)
		require.Equal("Hello Max", msg)

		msg, _ = l.Localize("greeting", nil, "Max")
		require.Equal("Hello Max", msg)

		msg, _ = l.Localize("bye", []language.Tag{language.Japanese})
		require.Equal("Tschüss", msg, "first language in alphabetical order if no fallback template")
	})

	t.Run("accept language", func(t *testing.T) {
		msg, ok := l.LocalizeAccept("greeting", "uk, en;q=0.8", "Іван")
		require.True(ok)
		require.Equal("Привіт Іван", msg)

		msg, _ = l.LocalizeAccept("bye", "fr-CH, de;q=0.5")
		require.Equal("Au revoir", msg)
	})

	t.Run("unknown key", func(t *testing.T) {
		msg, ok := l.Localize("unknown %s", []language.Tag{language.English}, 1, 2)
		require.False(ok)
		require.Equal("unknown 1 [2]", msg)

		_, ok = l.Localize("empty", nil)
		require.False(ok)
	})

	t.Run("languages", func(t *testing.T) {
		require.Equal([]language.Tag{language.English, language.German, language.Ukrainian}, l.Languages("greeting"))
		require.Equal([]language.Tag{language.German, language.French}, l.Languages("bye"))
		require.Nil(l.Languages("unknown"))
	})
}
