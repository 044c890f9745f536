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
	"gopkg.in/errgo.v1"
)

// DefaultMaxDivSteps is the step limit for long division when DivOptions
// does not set one.
const DefaultMaxDivSteps = 10000

// DivOptions controls polynomial long division.
type DivOptions[T Number[T]] struct {
	// MaxSteps is the largest number of quotient terms division may
	// produce before failing with ErrDivisionDiverged. Zero means
	// DefaultMaxDivSteps.
	MaxSteps int

	// Observe, if not nil, is called after every step with the step
	// number starting at 1, the quotient term found and the remainder left.
	Observe func(step int, q Term[T], r *Polynomial[T])
}

// PolyDivmod returns the quotient and remainder between two Polynomials.
func PolyDivmod[T Number[T]](x, y *Polynomial[T]) (q *Polynomial[T], r *Polynomial[T], err error) {
	return PolyDivmodWith(x, y, DivOptions[T]{})
}

// PolyDivmodWith returns the quotient and remainder between two Polynomials,
// by long division.
//
// Both operands are simplified first. Each step divides the leading term of
// the remainder by the leading term of y, and subtracts y times that
// quotient term from the remainder. Division stops when the remainder is zero
// or its leading exponent is less than the leading exponent of y. The
// quotient and remainder are returned in canonical form.
//
// Each step must lower the leading exponent of the remainder, or division
// fails with ErrDivisionStalled; this can happen with exponents that wrap
// around, as in a finite field.
//
// x == q*y + r always holds. When the leading coefficient of y does not
// divide the remainder's, which happens over Int, division stops early and
// the remainder may keep a leading exponent at or above that of y.
func PolyDivmodWith[T Number[T]](x, y *Polynomial[T], opts DivOptions[T]) (*Polynomial[T], *Polynomial[T], error) {
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxDivSteps
	}
	d := y.Copy().Simplify()
	if len(d.terms) == 0 {
		return nil, nil, errgo.WithCausef(nil, ErrZeroDivisor, "cannot divide (%v) by (%v)", x, y)
	}
	dLead := d.terms[0]
	dTail := &Polynomial[T]{terms: d.terms[1:]}

	q := &Polynomial[T]{}
	r := x.Copy().Simplify()
	for step := 1; len(r.terms) > 0; step++ {
		lead := r.terms[0]
		if lead.Exponent.Cmp(dLead.Exponent) < 0 {
			break
		}
		if step > maxSteps {
			return nil, nil, errgo.WithCausef(nil, ErrDivisionDiverged,
				"%v within %d steps, remainder (%v)", ErrDivisionDiverged, maxSteps, r)
		}
		m := lead.Quo(dLead)
		if m.Coefficient.IsZero() {
			// dLead does not divide lead, as with Int; r is as reduced as
			// it gets.
			break
		}
		q.terms = append(q.terms, m)

		rTail := &Polynomial[T]{terms: r.terms[1:]}
		next := new(Polynomial[T]).Sub(rTail, new(Polynomial[T]).MulTerm(dTail, m)).Simplify()
		if len(next.terms) > 0 && next.terms[0].Exponent.Cmp(lead.Exponent) >= 0 {
			return nil, nil, errgo.WithCausef(nil, ErrDivisionStalled,
				"%v: step %d left x^%v after eliminating x^%v", ErrDivisionStalled, step, next.terms[0].Exponent, lead.Exponent)
		}
		// Whatever of lead that dLead*m did not cancel stays in the
		// remainder: a truncated Int quotient, or rounding in Float and
		// Decimal.
		if rest := lead.Coefficient.Sub(dLead.Coefficient.Mul(m.Coefficient)); !rest.IsZero() {
			next = new(Polynomial[T]).AddTerm(next, Term[T]{Coefficient: rest, Exponent: lead.Exponent}).Simplify()
		}
		r = next
		if opts.Observe != nil {
			opts.Observe(step, m, r.Copy())
		}
	}
	return q.Simplify(), r, nil
}

// PolyDiv returns the quotient between two Polynomials.
func PolyDiv[T Number[T]](x, y *Polynomial[T]) (*Polynomial[T], error) {
	q, _, err := PolyDivmod(x, y)
	return q, errgo.Mask(err, errgo.Any)
}

// PolyMod returns the remainder of dividing x by y.
func PolyMod[T Number[T]](x, y *Polynomial[T]) (*Polynomial[T], error) {
	_, r, err := PolyDivmod(x, y)
	return r, errgo.Mask(err, errgo.Any)
}

// Quo sets the Polynomial to the quotient of x by y, returning the result.
// The remainder is discarded.
func (p *Polynomial[T]) Quo(x, y *Polynomial[T]) (*Polynomial[T], error) {
	q, _, err := PolyDivmod(x, y)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	p.terms = q.terms
	return p, nil
}
