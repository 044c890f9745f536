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
	"fmt"
)

// Term represents a single monomial, Coefficient * x^Exponent.
type Term[T Number[T]] struct {
	// Coefficient is the number that x^Exponent is multiplied by.
	Coefficient T
	// Exponent is the power x is raised to.
	Exponent T
}

// NewTerm returns the term c * x^e.
func NewTerm[T Number[T]](c, e T) Term[T] {
	return Term[T]{Coefficient: c, Exponent: e}
}

// Mul returns the product of two terms, (c1*c2) x^(e1+e2).
func (t Term[T]) Mul(u Term[T]) Term[T] {
	return Term[T]{
		Coefficient: t.Coefficient.Mul(u.Coefficient),
		Exponent:    t.Exponent.Add(u.Exponent),
	}
}

// Scale multiplies the coefficient by k.
func (t Term[T]) Scale(k T) Term[T] {
	return Term[T]{Coefficient: t.Coefficient.Mul(k), Exponent: t.Exponent}
}

// Quo returns the quotient of two terms, (c1/c2) x^(e1-e2). A zero divisor
// coefficient gets the numeric type's division behavior.
func (t Term[T]) Quo(u Term[T]) Term[T] {
	return Term[T]{
		Coefficient: t.Coefficient.Quo(u.Coefficient),
		Exponent:    t.Exponent.Sub(u.Exponent),
	}
}

// QuoScalar divides the coefficient by k.
func (t Term[T]) QuoScalar(k T) Term[T] {
	return Term[T]{Coefficient: t.Coefficient.Quo(k), Exponent: t.Exponent}
}

// Neg flips the sign of the coefficient.
func (t Term[T]) Neg() Term[T] {
	return Term[T]{Coefficient: t.Coefficient.Neg(), Exponent: t.Exponent}
}

// Equal compares both coefficient and exponent.
func (t Term[T]) Equal(u Term[T]) bool {
	return t.Coefficient.Cmp(u.Coefficient) == 0 && t.Exponent.Cmp(u.Exponent) == 0
}

// String renders the term as "<c>x^<e>", such as "2x^3".
func (t Term[T]) String() string {
	return fmt.Sprintf("%vx^%v", t.Coefficient.String(), t.Exponent.String())
}
