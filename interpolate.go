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

// Interpolate returns the polynomial of least degree through the points
// (xs[i], ys[i]), in canonical form. It solves the Vandermonde system for
// the coefficients of x^0 through x^(n-1) with Matrix.Reduce, so T should be
// a field.
//
// Repeated x values make the system singular, failing with an error caused
// by ErrSingular.
func Interpolate[T Number[T]](xs, ys []T) (*Polynomial[T], error) {
	n := len(xs)
	if n != len(ys) {
		return nil, errgo.Newf("got %d x values and %d y values", n, len(ys))
	}
	m := NewMatrix(n+1, n, zero[T]())
	for row, x := range xs {
		pow := one[T]()
		for col := 0; col < n; col++ {
			m.Set(col, row, pow)
			pow = pow.Mul(x)
		}
		m.Set(n, row, ys[row])
	}
	if err := m.Reduce(); err != nil {
		return nil, errgo.Mask(err, errgo.Is(ErrSingular))
	}
	p := &Polynomial[T]{terms: make([]Term[T], 0, n)}
	for e := n - 1; e >= 0; e-- {
		p.terms = append(p.terms, Term[T]{Coefficient: m.Get(n, e), Exponent: zero[T]().FromInt(e)})
	}
	return p.Simplify(), nil
}
