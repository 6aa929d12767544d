package expr

import (
	"math/big"
	"strings"
)

// Linear is an exact-rational linear expression:
//
//	constant + Σ coefficient·variable
//
// Variables iterate in insertion order (first appearance). A coefficient that
// cancels to exactly zero removes its variable from the expression entirely,
// so Vars never reports zero terms.
//
// Linear is not safe for concurrent mutation; the solver owns one writer.
type Linear struct {
	c     *big.Rat
	order []string
	coef  map[string]*big.Rat
}

// NewLinear returns the zero expression.
//
// Complexity: O(1).
func NewLinear() *Linear {
	return &Linear{
		c:    new(big.Rat),
		coef: make(map[string]*big.Rat),
	}
}

// NewConst returns an expression holding only the given constant.
func NewConst(c *big.Rat) *Linear {
	e := NewLinear()
	e.c.Set(c)

	return e
}

// Clone returns a deep copy; later mutation of either side never affects
// the other.
//
// Complexity: O(t) where t is the number of terms.
func (e *Linear) Clone() *Linear {
	out := &Linear{
		c:     new(big.Rat).Set(e.c),
		order: make([]string, len(e.order)),
		coef:  make(map[string]*big.Rat, len(e.coef)),
	}
	copy(out.order, e.order)
	for name, k := range e.coef {
		out.coef[name] = new(big.Rat).Set(k)
	}

	return out
}

// Const returns a copy of the constant term.
func (e *Linear) Const() *big.Rat {
	return new(big.Rat).Set(e.c)
}

// ConstSign reports the sign of the constant term (-1, 0, +1).
// An expression with no explicit constant reads as zero.
func (e *Linear) ConstSign() int {
	return e.c.Sign()
}

// Coeff returns a copy of the coefficient of name; zero if absent.
func (e *Linear) Coeff(name string) *big.Rat {
	if k, ok := e.coef[name]; ok {
		return new(big.Rat).Set(k)
	}

	return new(big.Rat)
}

// CoeffSign reports the sign of name's coefficient (-1, 0, +1); 0 if absent.
func (e *Linear) CoeffSign(name string) int {
	if k, ok := e.coef[name]; ok {
		return k.Sign()
	}

	return 0
}

// Has reports whether name carries a non-zero coefficient.
func (e *Linear) Has(name string) bool {
	_, ok := e.coef[name]

	return ok
}

// Len returns the number of variables with non-zero coefficients.
func (e *Linear) Len() int { return len(e.order) }

// Vars returns the variable names in insertion order. The slice is a copy.
func (e *Linear) Vars() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)

	return out
}

// AddConst adds delta to the constant term and returns e for chaining.
func (e *Linear) AddConst(delta *big.Rat) *Linear {
	e.c.Add(e.c, delta)

	return e
}

// AddTerm adds delta to name's coefficient, inserting the variable at the end
// of the iteration order if new and dropping it if the sum cancels to zero.
// Returns e for chaining.
//
// Complexity: O(1) amortized; O(t) when a term is removed.
func (e *Linear) AddTerm(name string, delta *big.Rat) *Linear {
	if delta.Sign() == 0 && !e.Has(name) {
		return e
	}
	k, ok := e.coef[name]
	if !ok {
		e.coef[name] = new(big.Rat).Set(delta)
		e.order = append(e.order, name)

		return e
	}
	k.Add(k, delta)
	if k.Sign() == 0 {
		e.remove(name)
	}

	return e
}

// AddScaled adds factor·other (constant included) into e.
// The receiver and other must be distinct values.
//
// Complexity: O(t_other).
func (e *Linear) AddScaled(other *Linear, factor *big.Rat) *Linear {
	if factor.Sign() == 0 {
		return e
	}
	var scaled big.Rat
	scaled.Mul(other.c, factor)
	e.c.Add(e.c, &scaled)
	for _, name := range other.order {
		scaled.Mul(other.coef[name], factor)
		e.AddTerm(name, &scaled)
	}

	return e
}

// Scale multiplies the whole expression (constant included) by factor.
func (e *Linear) Scale(factor *big.Rat) *Linear {
	if factor.Sign() == 0 {
		e.c.SetInt64(0)
		e.order = e.order[:0]
		e.coef = make(map[string]*big.Rat)

		return e
	}
	e.c.Mul(e.c, factor)
	for _, k := range e.coef {
		k.Mul(k, factor)
	}

	return e
}

// Substitute replaces every occurrence of name by the expression sub,
// i.e. e ← e − k·name + k·sub where k is name's current coefficient.
// A no-op when name is absent. The substituted expression's variables join
// the iteration order at the end, after existing terms.
//
// Complexity: O(t_e + t_sub).
func (e *Linear) Substitute(name string, sub *Linear) *Linear {
	k, ok := e.coef[name]
	if !ok {
		return e
	}
	factor := new(big.Rat).Set(k)
	e.remove(name)
	e.AddScaled(sub, factor)

	return e
}

// Equal reports exact structural equality: same constant and the same
// coefficient per variable. Iteration order does not participate.
func (e *Linear) Equal(other *Linear) bool {
	if e.c.Cmp(other.c) != 0 || len(e.coef) != len(other.coef) {
		return false
	}
	for name, k := range e.coef {
		ok, found := other.coef[name]
		if !found || k.Cmp(ok) != 0 {
			return false
		}
	}

	return true
}

// String renders the expression in parseable form: the constant first when
// non-zero (or alone when there are no terms), then each term in iteration
// order joined by " + " / " - ", with unit coefficients elided:
//
//	"6 - x1 - x2", "2x1 + 3/2x2", "0"
func (e *Linear) String() string {
	var b strings.Builder
	wrote := false
	if e.c.Sign() != 0 || len(e.order) == 0 {
		b.WriteString(e.c.RatString())
		wrote = true
	}
	var abs big.Rat
	for _, name := range e.order {
		k := e.coef[name]
		switch {
		case !wrote && k.Sign() < 0:
			b.WriteString("-")
		case wrote && k.Sign() < 0:
			b.WriteString(" - ")
		case wrote:
			b.WriteString(" + ")
		}
		wrote = true
		abs.Abs(k)
		if abs.Cmp(ratOne) != 0 {
			b.WriteString(abs.RatString())
		}
		b.WriteString(name)
	}

	return b.String()
}

// ratOne is the shared constant 1 used for unit-coefficient elision.
var ratOne = big.NewRat(1, 1)

// remove drops name from both the map and the order slice.
func (e *Linear) remove(name string) {
	delete(e.coef, name)
	for i, n := range e.order {
		if n == name {
			e.order = append(e.order[:i], e.order[i+1:]...)

			return
		}
	}
}
