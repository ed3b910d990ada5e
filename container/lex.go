package container

import (
	"fmt"
	"strconv"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/buffer"
)

// ParseNumber parses a declared length expression such as "16px", "50%",
// "100vw", "calc(100% - 2 * 8px)" into a Number AST. It is used when
// loading a Container tree from an external format (JSON/YAML) where
// lengths arrive as strings; once parsed, the engine never re-parses a
// Number. The byte-level cursor comes from tdewolff/parse/v2's buffer
// package (the same lexing-buffer library the teacher's CSS support is
// built on), so look-ahead over the input follows an established
// pattern rather than ad hoc string slicing. Peek is used exclusively
// (never an uncommitted Move), so the parser never needs to backtrack.
func ParseNumber(s string) (*Number, error) {
	p := &numberParser{in: parse.NewInput(buffer.NewReader([]byte(s)))}
	p.skipSpace()
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.in.Peek(0) != 0 {
		return nil, fmt.Errorf("container: unexpected trailing input in length expression %q", s)
	}
	return n, nil
}

// MustParseNumber is ParseNumber but panics on error, for fixtures and
// callers that already know the input is well-formed.
func MustParseNumber(s string) *Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

type numberParser struct {
	in *parse.Input
}

func (p *numberParser) skipSpace() {
	n := 0
	for isSpace(p.in.Peek(n)) {
		n++
	}
	if n > 0 {
		p.in.Move(n)
	}
	p.in.Skip()
}

// parseSum parses a left-associative chain of + and - terms, the
// top-level grammar inside calc(...) (and the identity grammar for a
// bare literal with no calc() wrapper).
func (p *numberParser) parseSum() (*Number, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		c := p.in.Peek(0)
		if c != '+' && c != '-' {
			break
		}
		p.in.Move(1)
		p.in.Skip()
		p.skipSpace()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		op := CalcAdd
		if c == '-' {
			op = CalcSub
		}
		left = Calc(op, left, right)
	}
	return left, nil
}

// parseProduct parses a left-associative chain of * and / terms.
func (p *numberParser) parseProduct() (*Number, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		c := p.in.Peek(0)
		if c != '*' && c != '/' {
			break
		}
		p.in.Move(1)
		p.in.Skip()
		p.skipSpace()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		op := CalcMul
		if c == '/' {
			op = CalcDiv
		}
		left = Calc(op, left, right)
	}
	return left, nil
}

// parseTerm parses a single literal term, a parenthesized sum, or a
// calc(...) sub-expression. A calc(/paren lookahead only ever peeks,
// never moves, until the keyword/punctuation is confirmed.
func (p *numberParser) parseTerm() (*Number, error) {
	p.skipSpace()
	if p.peekWord("calc") {
		p.in.Move(4)
		p.in.Skip()
		p.skipSpace()
		if p.in.Peek(0) != '(' {
			return nil, fmt.Errorf("container: expected '(' after calc")
		}
		p.in.Move(1)
		p.in.Skip()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.in.Peek(0) != ')' {
			return nil, fmt.Errorf("container: expected ')' to close calc(")
		}
		p.in.Move(1)
		p.in.Skip()
		return inner, nil
	}
	if p.in.Peek(0) == '(' {
		p.in.Move(1)
		p.in.Skip()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.in.Peek(0) != ')' {
			return nil, fmt.Errorf("container: expected closing ')'")
		}
		p.in.Move(1)
		p.in.Skip()
		return inner, nil
	}
	return p.parseLiteral()
}

// peekWord reports whether the next bytes spell word, without
// consuming them.
func (p *numberParser) peekWord(word string) bool {
	for i := 0; i < len(word); i++ {
		if p.in.Peek(i) != word[i] {
			return false
		}
	}
	return true
}

func (p *numberParser) parseLiteral() (*Number, error) {
	n := 0
	if c := p.in.Peek(0); c == '-' || c == '+' {
		n++
	}
	digitsStart := n
	for isDigit(p.in.Peek(n)) || p.in.Peek(n) == '.' {
		n++
	}
	if n == digitsStart {
		return nil, fmt.Errorf("container: expected a number at a length expression term")
	}

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = p.in.Peek(i)
	}
	value, err := strconv.ParseFloat(string(buf), 32)
	if err != nil {
		return nil, fmt.Errorf("container: invalid numeric literal %q: %w", buf, err)
	}
	p.in.Move(n)

	unit, unitLen := p.peekUnit()
	p.in.Move(unitLen)
	p.in.Skip()
	return &Number{Unit: unit, Value: float32(value)}, nil
}

func (p *numberParser) peekUnit() (Unit, int) {
	switch {
	case p.peekWord("dvw"):
		return UnitDvw, 3
	case p.peekWord("dvh"):
		return UnitDvh, 3
	case p.peekWord("vw"):
		return UnitVw, 2
	case p.peekWord("vh"):
		return UnitVh, 2
	case p.peekWord("px"):
		return UnitPx, 2
	case p.peekWord("%"):
		return UnitPercent, 1
	default:
		return UnitPx, 0
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
