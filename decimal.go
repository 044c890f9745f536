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
	"github.com/govalues/decimal"
	"gopkg.in/errgo.v1"
)

var errParsedNaN = errgo.New("invalid decimal read as NaN")

// Decimal is a decimal floating-point Number backed by
// github.com/govalues/decimal.
//
// The decimal package reports overflow, division by zero and invalid powers
// as errors. Decimal keeps the first such error and becomes invalid, so that
// the failure propagates through later arithmetic like NaN.
type Decimal struct {
	v   decimal.Decimal
	err error
}

// D returns the decimal coef * 10^-scale. It panics if scale is out of the
// range supported by the decimal package.
func D(coef int64, scale int) Decimal {
	return Decimal{v: decimal.MustNew(coef, scale)}
}

// DecimalOf wraps a decimal.Decimal.
func DecimalOf(d decimal.Decimal) Decimal {
	return Decimal{v: d}
}

// Decimal returns the underlying decimal value and the error that made it
// invalid, if any.
func (x Decimal) Decimal() (decimal.Decimal, error) {
	return x.v, x.err
}

func (x Decimal) apply(y Decimal, op func(a, b decimal.Decimal) (decimal.Decimal, error)) Decimal {
	if x.err != nil {
		return x
	}
	if y.err != nil {
		return y
	}
	v, err := op(x.v, y.v)
	if err != nil {
		return Decimal{err: errgo.Mask(err)}
	}
	return Decimal{v: v}
}

func (x Decimal) Add(y Decimal) Decimal { return x.apply(y, decimal.Decimal.Add) }
func (x Decimal) Sub(y Decimal) Decimal { return x.apply(y, decimal.Decimal.Sub) }
func (x Decimal) Mul(y Decimal) Decimal { return x.apply(y, decimal.Decimal.Mul) }
func (x Decimal) Quo(y Decimal) Decimal { return x.apply(y, decimal.Decimal.Quo) }

func (x Decimal) Neg() Decimal {
	if x.err != nil {
		return x
	}
	return Decimal{v: x.v.Neg()}
}

// Pow raises x to an integer power. Fractional exponents are invalid.
func (x Decimal) Pow(y Decimal) Decimal {
	return x.apply(y, func(a, b decimal.Decimal) (decimal.Decimal, error) {
		if !b.IsInt() {
			return decimal.Decimal{}, errgo.Newf("non-integer exponent %v", b)
		}
		n, _, ok := b.Int64(0)
		if !ok || n != int64(int(n)) {
			return decimal.Decimal{}, errgo.Newf("exponent %v out of range", b)
		}
		return a.Pow(int(n))
	})
}

// Cmp orders invalid values before every valid value.
func (x Decimal) Cmp(y Decimal) int {
	switch {
	case x.err != nil && y.err != nil:
		return 0
	case x.err != nil:
		return -1
	case y.err != nil:
		return 1
	}
	return x.v.Cmp(y.v)
}

func (x Decimal) IsZero() bool  { return x.err == nil && x.v.IsZero() }
func (x Decimal) IsValid() bool { return x.err == nil }

func (Decimal) FromInt(n int) Decimal {
	return Decimal{v: decimal.MustNew(int64(n), 0)}
}

// Parse accepts the decimal package's syntax, and "NaN" for an invalid
// value.
func (Decimal) Parse(s string) (Decimal, error) {
	if s == nanString {
		return Decimal{err: errParsedNaN}, nil
	}
	v, err := decimal.Parse(s)
	if err != nil {
		return Decimal{}, errgo.Notef(err, "invalid decimal %q", s)
	}
	return Decimal{v: v}, nil
}

func (x Decimal) String() string {
	if x.err != nil {
		return nanString
	}
	return x.v.String()
}
