package prop

import (
	"fmt"
	"io"
)

type parser struct {
	input string
	toks  []Token
	pos   int // Index of the current token
}

// Parse parses the formula from the given input Reader.
// It returns the corresponding Formula.
// Formulas are written using the following operators (from lowest to highest priority) :
//
// - for an implication, the right-associative "->" operator,
// - for a disjunction ("or"), the "|" operator,
// - for a conjunction ("and"), the "&" operator,
// - for a negation, the "~" unary operator.
//
// Parentheses can be used to group subformulas.
// The whole input must be a single formula: trailing tokens are an error.
func Parse(r io.Reader) (Formula, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read formula: %v", err)
	}
	return ParseString(string(data))
}

// ParseString parses the formula written in s.
// Errors are either a *TokenizeError or a *ParseError.
func ParseString(s string) (Formula, error) {
	toks, err := Tokenize(s)
	if err != nil {
		return nil, err
	}
	p := parser{input: s, toks: toks}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.unexpected()
	}
	return f, nil
}

// MustParse is like ParseString but panics if s cannot be parsed.
// It simplifies initialization of formulas written in code.
func MustParse(s string) Formula {
	f, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return f
}

func (p *parser) eof() bool {
	return p.pos >= len(p.toks)
}

// is is true iff the current token has the type t.
func (p *parser) is(t TokenType) bool {
	return !p.eof() && p.toks[p.pos].Type == t
}

func (p *parser) errorf(msg string) *ParseError {
	if p.eof() {
		return &ParseError{Input: p.input, Msg: msg, Pos: len(p.input)}
	}
	tok := p.toks[p.pos]
	return &ParseError{Input: p.input, Msg: msg, Token: tok.Text, Pos: tok.Pos}
}

func (p *parser) unexpected() *ParseError {
	if p.eof() {
		return p.errorf("unexpected end of input")
	}
	return p.errorf("unexpected token: " + p.toks[p.pos].Text)
}

func (p *parser) parseImplies() (Formula, error) {
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.is(TokImplies) {
		return f, nil
	}
	p.pos++
	f2, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return Implies(f, f2), nil
}

func (p *parser) parseOr() (Formula, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.is(TokOr) {
		p.pos++
		f2, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		f = Or(f, f2)
	}
	return f, nil
}

func (p *parser) parseAnd() (Formula, error) {
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.is(TokAnd) {
		p.pos++
		f2, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		f = And(f, f2)
	}
	return f, nil
}

func (p *parser) parseNot() (Formula, error) {
	if !p.is(TokNot) {
		return p.parseBasic()
	}
	p.pos++
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return Not(f), nil
}

func (p *parser) parseBasic() (Formula, error) {
	if p.eof() {
		return nil, p.unexpected()
	}
	tok := p.toks[p.pos]
	switch tok.Type {
	case TokVar:
		p.pos++
		return Var(tok.Text), nil
	case TokLParen:
		p.pos++
		f, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		if !p.is(TokRParen) {
			return nil, p.errorf("missing closing parenthesis")
		}
		p.pos++
		return f, nil
	default:
		return nil, p.unexpected()
	}
}
