package interfaces

import (
	"strings"
	"unicode"
)

// TokenKind tags a single line of an interfaces file.
type TokenKind int

const (
	TokenBlank TokenKind = iota
	TokenHeaderMarker
	TokenComment
	// TokenAuto is an unindented "auto <name>" or "ifname <name>" line; it opens the context for <name>.
	TokenAuto
	TokenIface
	TokenOption
)

var tokenKindNames = map[TokenKind]string{
	TokenBlank:        "blank",
	TokenHeaderMarker: "header-marker",
	TokenComment:      "comment",
	TokenAuto:         "auto",
	TokenIface:        "iface",
	TokenOption:       "option",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is one lexed line.
type Token struct {
	Kind TokenKind
	Line int // 1-based
	Text string

	// Keyword is the first field of the line (auto, ifname, iface, or the option keyword).
	Keyword string
	// Name is set for TokenAuto and TokenIface; empty when the line has no second field.
	Name string
	// Fields holds the fields after Keyword (TokenOption) or after Name (TokenIface).
	Fields []string
}

// Lex splits data into lines, trims trailing whitespace from each and tags it.
func Lex(data []byte) []Token {
	content := string(data)
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")

	tokens := make([]Token, 0, len(lines))
	for i, line := range lines {
		tokens = append(tokens, lexLine(i+1, strings.TrimRightFunc(line, unicode.IsSpace)))
	}
	return tokens
}

func lexLine(lineNo int, text string) Token {
	tok := Token{Line: lineNo, Text: text}

	switch {
	case text == MarkerLine:
		tok.Kind = TokenHeaderMarker
		return tok
	case text == "":
		tok.Kind = TokenBlank
		return tok
	case strings.HasPrefix(text, "#"):
		tok.Kind = TokenComment
		return tok
	}

	fields := strings.Fields(text)
	tok.Keyword = fields[0]

	// an indented auto or ifname belongs to the current block
	indented := !strings.HasPrefix(text, tok.Keyword)

	switch {
	case (tok.Keyword == "auto" || tok.Keyword == "ifname") && !indented:
		tok.Kind = TokenAuto
		if len(fields) > 1 {
			tok.Name = fields[1]
		}
	case tok.Keyword == "iface":
		tok.Kind = TokenIface
		if len(fields) > 1 {
			tok.Name = fields[1]
			tok.Fields = fields[2:]
		}
	default:
		tok.Kind = TokenOption
		tok.Fields = fields[1:]
	}
	return tok
}
