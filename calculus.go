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

// Calculus is implemented by Term, Terms and *Polynomial. The rules are
// defined on a single Term and applied term by term to collections.
type Calculus[T Number[T], S any] interface {
	// Eval sums the value of every term at x.
	Eval(x T) T
	// SumBetween returns Eval(upper) - Eval(lower).
	SumBetween(lower, upper T) T
	// DiffAt returns the derivative evaluated at x.
	DiffAt(x T) T
	// Differentiate returns the derivative.
	Differentiate() S
	// Integrate returns the antiderivative, without a constant term.
	Integrate() S
	// DefiniteIntegral integrates and sums between lower and upper.
	DefiniteIntegral(lower, upper T) T
}

var (
	_ Calculus[Float, Term[Float]]        = Term[Float]{}
	_ Calculus[Float, Terms[Float]]       = Terms[Float]{}
	_ Calculus[Float, *Polynomial[Float]] = (*Polynomial[Float])(nil)
)

// Eval returns c * x^e. A result that is not a valid number, such as NaN
// from a negative base raised to a fractional power, is replaced by zero so
// that sums over many terms stay defined. A zero coefficient is zero without
// computing x^e.
//
// Int has no invalid value: a nonzero coefficient with a negative exponent
// panics at x = 0, as Go integer division by zero does.
func (t Term[T]) Eval(x T) T {
	if t.Coefficient.IsZero() {
		return zero[T]()
	}
	v := t.Coefficient.Mul(x.Pow(t.Exponent))
	if !v.IsValid() {
		return zero[T]()
	}
	return v
}

func (t Term[T]) SumBetween(lower, upper T) T {
	return t.Eval(upper).Sub(t.Eval(lower))
}

func (t Term[T]) DiffAt(x T) T {
	return t.Differentiate().Eval(x)
}

// Differentiate applies the power rule, c x^e -> (c*e) x^(e-1).
func (t Term[T]) Differentiate() Term[T] {
	return Term[T]{
		Coefficient: t.Coefficient.Mul(t.Exponent),
		Exponent:    t.Exponent.Sub(one[T]()),
	}
}

// Integrate applies the inverse power rule, c x^e -> (c/(e+1)) x^(e+1).
//
// The rule is undefined for e == -1, where the antiderivative is a logarithm.
// The coefficient then gets the numeric type's division by zero behavior:
// an infinity for Float, an invalid value for Rat, Decimal and Zp, and a
// panic for Int.
func (t Term[T]) Integrate() Term[T] {
	e := t.Exponent.Add(one[T]())
	return Term[T]{Coefficient: t.Coefficient.Quo(e), Exponent: e}
}

func (t Term[T]) DefiniteIntegral(lower, upper T) T {
	return t.Integrate().SumBetween(lower, upper)
}

// Terms is an ordered collection of terms, representing their sum.
type Terms[T Number[T]] []Term[T]

func (ts Terms[T]) Eval(x T) T {
	total := zero[T]()
	for _, t := range ts {
		total = total.Add(t.Eval(x))
	}
	return total
}

func (ts Terms[T]) SumBetween(lower, upper T) T {
	return ts.Eval(upper).Sub(ts.Eval(lower))
}

func (ts Terms[T]) DiffAt(x T) T {
	total := zero[T]()
	for _, t := range ts {
		total = total.Add(t.DiffAt(x))
	}
	return total
}

// Differentiate differentiates each term. Like terms are not merged.
func (ts Terms[T]) Differentiate() Terms[T] {
	result := make(Terms[T], len(ts))
	for i, t := range ts {
		result[i] = t.Differentiate()
	}
	return result
}

// Integrate integrates each term. Like terms are not merged.
func (ts Terms[T]) Integrate() Terms[T] {
	result := make(Terms[T], len(ts))
	for i, t := range ts {
		result[i] = t.Integrate()
	}
	return result
}

func (ts Terms[T]) DefiniteIntegral(lower, upper T) T {
	return ts.Integrate().SumBetween(lower, upper)
}
