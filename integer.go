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
	"strconv"

	"gopkg.in/errgo.v1"
)

// Int is an int64 Number. Division truncates toward zero, and division by
// zero panics as Go integer division does.
type Int int64

func (x Int) Add(y Int) Int { return x + y }
func (x Int) Sub(y Int) Int { return x - y }
func (x Int) Mul(y Int) Int { return x * y }
func (x Int) Quo(y Int) Int { return x / y }
func (x Int) Neg() Int      { return -x }

// Pow returns x**y by repeated squaring. A negative exponent yields
// 1 / x**-y in integer division, which panics for a zero base.
func (x Int) Pow(y Int) Int {
	if y < 0 {
		return 1 / x.Pow(-y)
	}
	result, base := Int(1), x
	for y > 0 {
		if y&1 == 1 {
			result *= base
		}
		base *= base
		y >>= 1
	}
	return result
}

func (x Int) Cmp(y Int) int   { return cmp.Compare(x, y) }
func (x Int) IsZero() bool    { return x == 0 }
func (Int) IsValid() bool     { return true }
func (Int) FromInt(n int) Int { return Int(n) }

func (Int) Parse(s string) (Int, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errgo.Notef(err, "invalid integer %q", s)
	}
	return Int(n), nil
}

func (x Int) String() string {
	return strconv.FormatInt(int64(x), 10)
}
