/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package urls

import (
	"testing"

	"github.com/voedger/kommon/pkg/goutils/testingu/require"
)

func TestParse(t *testing.T) {
	require := require.New(t)

	t.Run("valid", func(t *testing.T) {
		for _, raw := range []string{
			"http://localhost:8080/api?x=1",
			"https://example.com",
			"mailto:user@example.com",
			"file:///tmp/x",
		} {
			u, err := Parse(raw)
			require.NoError(err, raw)
			require.Equal(raw, u.String())
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"example.com",
			"/relative/path",
			"http://",
			"https:///path",
			"http://[::1",
			"ht tp://x",
		} {
			u, err := Parse(raw)
			require.Nil(u, raw)
			require.ErrorWith(err, require.Is(ErrMalformedURL), require.Is(ErrNetworkAddress), require.Has(raw))
		}
	})

	t.Run("MustParse", func(t *testing.T) {
		require.Equal("example.com", MustParse("http://example.com").Host)
		require.PanicsWith(func() { MustParse("no scheme") }, require.Is(ErrMalformedURL))
	})
}

func TestParseSchemeCase(t *testing.T) {
	require := require.New(t)

	u, err := Parse("HTTPS://example.com/a")
	require.NoError(err)
	require.Equal("https", u.Scheme)

	_, err = Parse("HTTP:///a")
	require.ErrorIs(err, ErrMalformedURL)
}
