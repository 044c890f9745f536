/*
   polycalc - Single-variable polynomial algebra library

   Copyright (C) 2012  Casey Marshall <casey.marshall@gmail.com>

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package polycalc

import (
	"bytes"
	"fmt"

	"gopkg.in/errgo.v1"
)

// Polynomial represents a sum of terms in a single variable x.
//
// Arithmetic concatenates or maps term lists and does not combine like
// terms; call Simplify to obtain the canonical form. The zero value is the
// zero polynomial.
type Polynomial[T Number[T]] struct {
	// terms in insertion order, or by strictly descending exponent after
	// Simplify.
	terms []Term[T]
}

// NewPolynomial creates a polynomial holding a copy of the given terms, in
// the given order.
func NewPolynomial[T Number[T]](terms ...Term[T]) *Polynomial[T] {
	p := &Polynomial[T]{terms: make([]Term[T], len(terms))}
	copy(p.terms, terms)
	return p
}

// Pairs creates a polynomial from a flat list of alternating coefficients and
// exponents. For example, Pairs(2., 2., -3., 1., 5., 0.) represents
// 2x^2 - 3x + 5.
func Pairs[T Number[T]](values ...T) (*Polynomial[T], error) {
	if len(values)%2 != 0 {
		return nil, errgo.WithCausef(nil, ErrOddPairs, "%v, got %d values", ErrOddPairs, len(values))
	}
	p := &Polynomial[T]{terms: make([]Term[T], 0, len(values)/2)}
	for i := 0; i < len(values); i += 2 {
		p.terms = append(p.terms, Term[T]{Coefficient: values[i], Exponent: values[i+1]})
	}
	return p, nil
}

// MustPairs is like Pairs but panics on an odd number of values.
func MustPairs[T Number[T]](values ...T) *Polynomial[T] {
	p, err := Pairs(values...)
	if err != nil {
		panic(err)
	}
	return p
}

// String represents a polynomial in a readable form, such as
// "2x^2 + -3x^1 + 5x^0". The polynomial without terms is "0".
func (p *Polynomial[T]) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	result := bytes.NewBuffer(nil)
	for i, t := range p.terms {
		if i > 0 {
			fmt.Fprintf(result, " + ")
		}
		fmt.Fprintf(result, "%v", t.String())
	}
	return result.String()
}

// Terms returns a copy of the polynomial's terms.
func (p *Polynomial[T]) Terms() Terms[T] {
	ts := make(Terms[T], len(p.terms))
	copy(ts, p.terms)
	return ts
}

// Len returns the number of terms, including duplicates and zero terms
// that Simplify has not yet removed.
func (p *Polynomial[T]) Len() int {
	return len(p.terms)
}

// Lead returns the first term. After Simplify it is the leading term, the
// one with the greatest exponent.
func (p *Polynomial[T]) Lead() (Term[T], bool) {
	if len(p.terms) == 0 {
		return Term[T]{}, false
	}
	return p.terms[0], true
}

// Degree returns the greatest exponent among the terms with a nonzero
// coefficient. It returns false for the zero polynomial.
func (p *Polynomial[T]) Degree() (T, bool) {
	var degree T
	found := false
	for _, t := range p.terms {
		if t.Coefficient.IsZero() {
			continue
		}
		if !found || t.Exponent.Cmp(degree) > 0 {
			degree, found = t.Exponent, true
		}
	}
	return degree, found
}

// IsZero returns whether every coefficient is zero. A polynomial without
// terms is zero.
func (p *Polynomial[T]) IsZero() bool {
	for _, t := range p.terms {
		if !t.Coefficient.IsZero() {
			return false
		}
	}
	return true
}

// Copy returns a copy of the polynomial. Terms are values, so the copy
// shares nothing with p.
func (p *Polynomial[T]) Copy() *Polynomial[T] {
	return NewPolynomial(p.terms...)
}

// Equal compares with another polynomial term by term, in order. Compare
// canonical forms to test algebraic equality.
func (p *Polynomial[T]) Equal(q *Polynomial[T]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if !p.terms[i].Equal(q.terms[i]) {
			return false
		}
	}
	return true
}

// Add sets the Polynomial to the sum of two Polynomials, returning the
// result. The terms of y follow the terms of x.
func (p *Polynomial[T]) Add(x, y *Polynomial[T]) *Polynomial[T] {
	terms := make([]Term[T], 0, len(x.terms)+len(y.terms))
	terms = append(terms, x.terms...)
	terms = append(terms, y.terms...)
	p.terms = terms
	return p
}

// AddTerm sets the Polynomial to x + t, returning the result.
func (p *Polynomial[T]) AddTerm(x *Polynomial[T], t Term[T]) *Polynomial[T] {
	terms := make([]Term[T], 0, len(x.terms)+1)
	terms = append(terms, x.terms...)
	p.terms = append(terms, t)
	return p
}

// Neg negates the Polynomial, returning the result.
func (p *Polynomial[T]) Neg() *Polynomial[T] {
	for i := range p.terms {
		p.terms[i] = p.terms[i].Neg()
	}
	return p
}

// Sub sets the Polynomial to the difference of two Polynomials, returning
// the result.
func (p *Polynomial[T]) Sub(x, y *Polynomial[T]) *Polynomial[T] {
	return p.Add(x, y.Copy().Neg())
}

// SubTerm sets the Polynomial to x - t, returning the result.
func (p *Polynomial[T]) SubTerm(x *Polynomial[T], t Term[T]) *Polynomial[T] {
	return p.AddTerm(x, t.Neg())
}

// Mul sets the Polynomial to the product of two Polynomials, returning the
// result. Every term of x is multiplied by every term of y; like terms are
// left for Simplify to combine.
func (p *Polynomial[T]) Mul(x, y *Polynomial[T]) *Polynomial[T] {
	terms := make([]Term[T], 0, len(x.terms)*len(y.terms))
	for _, xt := range x.terms {
		for _, yt := range y.terms {
			terms = append(terms, xt.Mul(yt))
		}
	}
	p.terms = terms
	return p
}

// MulTerm sets the Polynomial to x * t, returning the result.
func (p *Polynomial[T]) MulTerm(x *Polynomial[T], t Term[T]) *Polynomial[T] {
	return p.mapTerms(x, func(u Term[T]) Term[T] { return u.Mul(t) })
}

// Scale sets the Polynomial to x * k, returning the result.
func (p *Polynomial[T]) Scale(x *Polynomial[T], k T) *Polynomial[T] {
	return p.mapTerms(x, func(u Term[T]) Term[T] { return u.Scale(k) })
}

// QuoTerm sets the Polynomial to x / t, returning the result. Each term is
// divided independently.
func (p *Polynomial[T]) QuoTerm(x *Polynomial[T], t Term[T]) *Polynomial[T] {
	return p.mapTerms(x, func(u Term[T]) Term[T] { return u.Quo(t) })
}

// QuoScalar sets the Polynomial to x / k, returning the result.
func (p *Polynomial[T]) QuoScalar(x *Polynomial[T], k T) *Polynomial[T] {
	return p.mapTerms(x, func(u Term[T]) Term[T] { return u.QuoScalar(k) })
}

func (p *Polynomial[T]) mapTerms(x *Polynomial[T], f func(Term[T]) Term[T]) *Polynomial[T] {
	terms := make([]Term[T], len(x.terms))
	for i, t := range x.terms {
		terms[i] = f(t)
	}
	p.terms = terms
	return p
}

// Eval returns the value of the polynomial at x.
func (p *Polynomial[T]) Eval(x T) T {
	return Terms[T](p.terms).Eval(x)
}

// SumBetween returns p(upper) - p(lower).
func (p *Polynomial[T]) SumBetween(lower, upper T) T {
	return Terms[T](p.terms).SumBetween(lower, upper)
}

// DiffAt returns the slope of the polynomial at x.
func (p *Polynomial[T]) DiffAt(x T) T {
	return Terms[T](p.terms).DiffAt(x)
}

// Differentiate returns the derivative as a new Polynomial.
func (p *Polynomial[T]) Differentiate() *Polynomial[T] {
	return &Polynomial[T]{terms: Terms[T](p.terms).Differentiate()}
}

// Integrate returns the antiderivative as a new Polynomial. The constant of
// integration is omitted.
func (p *Polynomial[T]) Integrate() *Polynomial[T] {
	return &Polynomial[T]{terms: Terms[T](p.terms).Integrate()}
}

// DefiniteIntegral returns the integral of the polynomial from lower to
// upper.
func (p *Polynomial[T]) DefiniteIntegral(lower, upper T) T {
	return Terms[T](p.terms).DefiniteIntegral(lower, upper)
}
