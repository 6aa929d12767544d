package expr

import (
	"fmt"
	"math/big"
	"strings"
)

// Parse converts an algebraic string into a Linear expression.
//
// Accepted shape: signed terms joined by '+' / '-', where each term is a
// number, a variable, or number·variable with an optional '*':
//
//	"2x1 + 3x2"
//	"6 - x1 - x2"
//	"-1/2x3 + 0.25x4 - 7"
//	"3 * x1"
//
// Numbers are parsed exactly: integers, p/q rationals and finite decimals all
// land in *big.Rat with no rounding. Variable names start with a letter or
// underscore and continue with letters, digits, underscores or primes (').
//
// Terms accumulate in order of appearance, which fixes the expression's
// iteration order.
//
// Errors: ErrParse, wrapped with the offending offset.
func Parse(input string) (*Linear, error) {
	p := &parser{src: input}
	e, err := p.expression()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("trailing input")
	}

	return e, nil
}

// ParseConstraint converts "basic = <expression>" into a Constraint.
//
// The left-hand side must be exactly one variable name; everything after the
// first '=' is parsed like Parse. Errors: ErrParse for malformed input plus
// the NewConstraint sentinels (ErrNoBasic, ErrSelfReference).
func ParseConstraint(input string) (*Constraint, error) {
	lhs, rhs, found := strings.Cut(input, "=")
	if !found {
		return nil, fmt.Errorf("%w: constraint %q needs '='", ErrParse, input)
	}
	basic := strings.TrimSpace(lhs)
	if !isIdent(basic) {
		return nil, fmt.Errorf("%w: left-hand side %q is not a single variable", ErrParse, basic)
	}
	e, err := Parse(rhs)
	if err != nil {
		return nil, err
	}

	return NewConstraint(basic, e)
}

// parser is a minimal recursive-descent scanner over one expression string.
type parser struct {
	src string
	pos int
}

// expression parses the whole signed-term chain.
func (p *parser) expression() (*Linear, error) {
	e := NewLinear()
	first := true
	for {
		p.skipSpace()
		if p.pos == len(p.src) {
			if first {
				return nil, p.errorf("empty expression")
			}

			return e, nil
		}
		sign := int64(1)
		switch p.src[p.pos] {
		case '+':
			p.pos++
		case '-':
			sign = -1
			p.pos++
		default:
			if !first {
				return e, nil
			}
		}
		if err := p.term(e, sign); err != nil {
			return nil, err
		}
		first = false
	}
}

// term parses one [number]['*'][ident] fragment and folds it into e.
func (p *parser) term(e *Linear, sign int64) error {
	p.skipSpace()
	if p.pos == len(p.src) {
		return p.errorf("dangling sign")
	}

	coeff := big.NewRat(sign, 1)
	haveNumber, starred := false, false
	if tok := p.scanNumber(); tok != "" {
		var num big.Rat
		if _, ok := num.SetString(tok); !ok {
			return p.errorf("bad number %q", tok)
		}
		coeff.Mul(coeff, &num)
		haveNumber = true
		p.skipSpace()
		if p.pos < len(p.src) && p.src[p.pos] == '*' {
			p.pos++
			p.skipSpace()
			starred = true
		}
	}

	if name := p.scanIdent(); name != "" {
		e.AddTerm(name, coeff)

		return nil
	}
	if starred {
		return p.errorf("expected variable after '*'")
	}
	if !haveNumber {
		return p.errorf("expected number or variable")
	}
	e.AddConst(coeff)

	return nil
}

// scanNumber consumes digits with an optional '/q' or '.frac' tail.
func (p *parser) scanNumber() string {
	start := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return ""
	}
	if p.pos < len(p.src) && (p.src[p.pos] == '/' || p.src[p.pos] == '.') {
		mark := p.pos
		p.pos++
		tailStart := p.pos
		for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
			p.pos++
		}
		if p.pos == tailStart {
			// lone '/' or '.' is not part of the number
			p.pos = mark
		}
	}

	return p.src[start:p.pos]
}

// scanIdent consumes a variable name, empty when none starts here.
func (p *parser) scanIdent() string {
	start := p.pos
	if p.pos < len(p.src) && isIdentStart(p.src[p.pos]) {
		p.pos++
		for p.pos < len(p.src) && isIdentRest(p.src[p.pos]) {
			p.pos++
		}
	}

	return p.src[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)

	return fmt.Errorf("%w: %s at offset %d of %q", ErrParse, detail, p.pos, p.src)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentRest(b byte) bool { return isIdentStart(b) || isDigit(b) || b == '\'' }

// isIdent reports whether s as a whole is one valid variable name.
func isIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentRest(s[i]) {
			return false
		}
	}

	return true
}
