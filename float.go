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
	"cmp"
	"math"
	"strconv"

	"gopkg.in/errgo.v1"
)

// Float is a float64 Number. Division by zero and undefined powers follow
// IEEE 754, producing infinities and NaN.
type Float float64

func (x Float) Add(y Float) Float { return x + y }
func (x Float) Sub(y Float) Float { return x - y }
func (x Float) Mul(y Float) Float { return x * y }
func (x Float) Quo(y Float) Float { return x / y }
func (x Float) Neg() Float        { return -x }

// Pow returns x**y. A negative base with a fractional exponent is NaN.
func (x Float) Pow(y Float) Float {
	return Float(math.Pow(float64(x), float64(y)))
}

// Cmp orders NaN before every other value, and equal to itself.
func (x Float) Cmp(y Float) int {
	return cmp.Compare(float64(x), float64(y))
}

func (x Float) IsZero() bool  { return x == 0 }
func (x Float) IsValid() bool { return !math.IsNaN(float64(x)) }

func (Float) FromInt(n int) Float { return Float(n) }

func (Float) Parse(s string) (Float, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errgo.Notef(err, "invalid float %q", s)
	}
	return Float(f), nil
}

func (x Float) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}
