//go:build unit

package interfaces

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestLex(t *testing.T) {
	input := "# UNCONFIGURED INTERFACES\n" +
		"# a comment\n" +
		"\n" +
		"auto eth0   \n" +
		"iface eth0 inet static\n" +
		"    address 10.0.0.5\t\n" +
		"ifname wlan0\n" +
		"    up echo hi\r\n"

	want := []Token{
		{Kind: TokenHeaderMarker, Line: 1, Text: "# UNCONFIGURED INTERFACES"},
		{Kind: TokenComment, Line: 2, Text: "# a comment"},
		{Kind: TokenBlank, Line: 3, Text: ""},
		{Kind: TokenAuto, Line: 4, Text: "auto eth0", Keyword: "auto", Name: "eth0"},
		{Kind: TokenIface, Line: 5, Text: "iface eth0 inet static", Keyword: "iface", Name: "eth0", Fields: []string{"inet", "static"}},
		{Kind: TokenOption, Line: 6, Text: "    address 10.0.0.5", Keyword: "address", Fields: []string{"10.0.0.5"}},
		{Kind: TokenAuto, Line: 7, Text: "ifname wlan0", Keyword: "ifname", Name: "wlan0"},
		{Kind: TokenOption, Line: 8, Text: "    up echo hi", Keyword: "up", Fields: []string{"echo", "hi"}},
	}

	if diff := cmp.Diff(want, Lex([]byte(input))); diff != "" {
		t.Errorf("Lex() mismatch (-want +got):\n%s", diff)
	}
}

func TestLex_Edges(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Lex(nil))
	})

	t.Run("MarkerWithTrailingSpace", func(t *testing.T) {
		tokens := Lex([]byte("# UNCONFIGURED INTERFACES  \n"))
		assert.Equal(t, TokenHeaderMarker, tokens[0].Kind)
	})

	t.Run("IndentedMarkerIsNotAMarker", func(t *testing.T) {
		tokens := Lex([]byte("  # UNCONFIGURED INTERFACES\n"))
		assert.Equal(t, TokenOption, tokens[0].Kind)
	})

	t.Run("MarkerPrefixIsAComment", func(t *testing.T) {
		tokens := Lex([]byte("# UNCONFIGURED INTERFACES please\n"))
		assert.Equal(t, TokenComment, tokens[0].Kind)
	})

	t.Run("AutoWithoutName", func(t *testing.T) {
		tokens := Lex([]byte("auto\n"))
		assert.Equal(t, TokenAuto, tokens[0].Kind)
		assert.Empty(t, tokens[0].Name)
	})

	t.Run("IndentedAutoIsAnOption", func(t *testing.T) {
		tokens := Lex([]byte("    auto eth1\n\tifname wlan0\n"))
		assert.Equal(t, TokenOption, tokens[0].Kind)
		assert.Equal(t, "auto", tokens[0].Keyword)
		assert.Empty(t, tokens[0].Name)
		assert.Equal(t, TokenOption, tokens[1].Kind)
	})

	t.Run("NoTrailingNewline", func(t *testing.T) {
		tokens := Lex([]byte("auto eth0\niface eth0 inet dhcp"))
		assert.Len(t, tokens, 2)
	})
}

func TestTokenKind_String(t *testing.T) {
	assert.Equal(t, "header-marker", TokenHeaderMarker.String())
	assert.Equal(t, "option", TokenOption.String())
	assert.Equal(t, "unknown", TokenKind(42).String())
}
