package prop

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType is the kind of a token.
type TokenType int

const (
	TokVar TokenType = iota
	TokNot
	TokAnd
	TokOr
	TokImplies
	TokLParen
	TokRParen
)

func (t TokenType) String() string {
	switch t {
	case TokVar:
		return "variable"
	case TokNot:
		return "~"
	case TokAnd:
		return "&"
	case TokOr:
		return "|"
	case TokImplies:
		return "->"
	case TokLParen:
		return "("
	case TokRParen:
		return ")"
	default:
		panic("invalid token type")
	}
}

// A Token is an atomic piece of a formula: an operator, a parenthesis or a variable name.
type Token struct {
	Type TokenType
	Text string
	Pos  int // Byte offset in the input
}

var singles = map[rune]TokenType{
	'(': TokLParen,
	')': TokRParen,
	'~': TokNot,
	'&': TokAnd,
	'|': TokOr,
}

// Tokenize splits s into tokens.
// "->" is recognized before any other operator, so it is never split; blanks only separate tokens.
// Any maximal run of other non-blank characters is a variable name, so "P1", "rain?" and "a-b" are all variables.
func Tokenize(s string) ([]Token, error) {
	if !utf8.ValidString(s) {
		pos := 0
		for pos < len(s) {
			r, size := utf8.DecodeRuneInString(s[pos:])
			if r == utf8.RuneError && size <= 1 {
				break
			}
			pos += size
		}
		return nil, &TokenizeError{Input: s, Pos: pos}
	}
	var toks []Token
	pos := 0
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += size
		case strings.HasPrefix(s[pos:], "->"):
			toks = append(toks, Token{Type: TokImplies, Text: "->", Pos: pos})
			pos += 2
		case isSingle(r):
			toks = append(toks, Token{Type: singles[r], Text: string(r), Pos: pos})
			pos += size
		default:
			start := pos
			for pos < len(s) {
				r, size := utf8.DecodeRuneInString(s[pos:])
				if unicode.IsSpace(r) || isSingle(r) || strings.HasPrefix(s[pos:], "->") {
					break
				}
				pos += size
			}
			toks = append(toks, Token{Type: TokVar, Text: s[start:pos], Pos: start})
		}
	}
	return toks, nil
}

func isSingle(r rune) bool {
	_, ok := singles[r]
	return ok
}
