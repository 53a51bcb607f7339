package logquery

import (
	"strings"
	"unicode"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenString
	tokenEq     // =
	tokenNeq    // !=
	tokenTilde  // ~
	tokenLParen
	tokenRParen
	tokenAnd
	tokenOr
	tokenNot
)

type token struct {
	Type  tokenType
	Value string
	Pos   int
}

type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) next() (token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return token{Type: tokenEOF, Pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]

	switch ch {
	case '(':
		l.pos++
		return token{Type: tokenLParen, Value: "(", Pos: start}, nil
	case ')':
		l.pos++
		return token{Type: tokenRParen, Value: ")", Pos: start}, nil
	case '=':
		l.pos++
		return token{Type: tokenEq, Value: "=", Pos: start}, nil
	case '~':
		l.pos++
		return token{Type: tokenTilde, Value: "~", Pos: start}, nil
	case '!':
		if l.pos+1 < len(l.input) && l.input[l.pos+1] == '=' {
			l.pos += 2
			return token{Type: tokenNeq, Value: "!=", Pos: start}, nil
		}
		return token{}, newSyntaxError(l.input, start, "'!' must be followed by '='")
	case '"', '\'':
		return l.readString(ch)
	}

	if isBareChar(ch) {
		return l.readBare(), nil
	}

	return token{}, newSyntaxError(l.input, start, "unexpected character %q", string(ch))
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

// readString consumes a quoted value. Backslash escapes the next character,
// so embedded quotes are allowed.
func (l *lexer) readString(quote byte) (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '\\' && l.pos+1 < len(l.input) {
			sb.WriteByte(l.input[l.pos+1])
			l.pos += 2
			continue
		}
		if ch == quote {
			l.pos++
			return token{Type: tokenString, Value: sb.String(), Pos: start}, nil
		}
		sb.WriteByte(ch)
		l.pos++
	}
	return token{}, newSyntaxError(l.input, start, "unterminated quoted string")
}

func (l *lexer) readBare() token {
	start := l.pos
	for l.pos < len(l.input) && isBareChar(l.input[l.pos]) {
		l.pos++
	}
	value := l.input[start:l.pos]

	// Keywords are case-insensitive.
	switch strings.ToLower(value) {
	case "and":
		return token{Type: tokenAnd, Value: value, Pos: start}
	case "or":
		return token{Type: tokenOr, Value: value, Pos: start}
	case "not":
		return token{Type: tokenNot, Value: value, Pos: start}
	}

	return token{Type: tokenIdent, Value: value, Pos: start}
}

// isBareChar reports whether ch may appear in an unquoted token. The set is
// wide enough for RouterOS values like buffer names, IP addresses and topic
// lists.
func isBareChar(ch byte) bool {
	r := rune(ch)
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		ch == '_' || ch == '-' || ch == '.' || ch == ',' || ch == ':' || ch == '/'
}
