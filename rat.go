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
	"math/big"

	"gopkg.in/errgo.v1"
)

// Rat is an exact rational Number backed by math/big.Rat.
//
// Division by zero, zero raised to a negative power and non-integer
// exponents produce an invalid Rat, which propagates like NaN.
type Rat struct {
	v   *big.Rat
	bad bool
}

// R returns the rational p/q. It panics if q is zero.
func R(p, q int64) Rat {
	if q == 0 {
		panic("polycalc: rational denominator is zero")
	}
	return Rat{v: new(big.Rat).SetFrac64(p, q)}
}

// RatOf returns a Rat holding a copy of r.
func RatOf(r *big.Rat) Rat {
	return Rat{v: new(big.Rat).Set(r)}
}

var invalidRat = Rat{bad: true}

func (x Rat) rat() *big.Rat {
	if x.v == nil {
		return new(big.Rat)
	}
	return x.v
}

// Big returns a copy of the underlying rational, or nil if x is invalid.
func (x Rat) Big() *big.Rat {
	if x.bad {
		return nil
	}
	return new(big.Rat).Set(x.rat())
}

func (x Rat) Add(y Rat) Rat {
	if x.bad || y.bad {
		return invalidRat
	}
	return Rat{v: new(big.Rat).Add(x.rat(), y.rat())}
}

func (x Rat) Sub(y Rat) Rat {
	if x.bad || y.bad {
		return invalidRat
	}
	return Rat{v: new(big.Rat).Sub(x.rat(), y.rat())}
}

func (x Rat) Mul(y Rat) Rat {
	if x.bad || y.bad {
		return invalidRat
	}
	return Rat{v: new(big.Rat).Mul(x.rat(), y.rat())}
}

func (x Rat) Quo(y Rat) Rat {
	if x.bad || y.bad || y.IsZero() {
		return invalidRat
	}
	return Rat{v: new(big.Rat).Quo(x.rat(), y.rat())}
}

func (x Rat) Neg() Rat {
	if x.bad {
		return invalidRat
	}
	return Rat{v: new(big.Rat).Neg(x.rat())}
}

// Pow raises x to an integer power.
func (x Rat) Pow(y Rat) Rat {
	if x.bad || y.bad || !y.rat().IsInt() {
		return invalidRat
	}
	n := new(big.Int).Set(y.rat().Num())
	neg := n.Sign() < 0
	if neg {
		if x.IsZero() {
			return invalidRat
		}
		n.Neg(n)
	}
	num := new(big.Int).Exp(x.rat().Num(), n, nil)
	den := new(big.Int).Exp(x.rat().Denom(), n, nil)
	if neg {
		num, den = den, num
	}
	return Rat{v: new(big.Rat).SetFrac(num, den)}
}

// Cmp orders invalid values before every valid value.
func (x Rat) Cmp(y Rat) int {
	switch {
	case x.bad && y.bad:
		return 0
	case x.bad:
		return -1
	case y.bad:
		return 1
	}
	return x.rat().Cmp(y.rat())
}

func (x Rat) IsZero() bool  { return !x.bad && x.rat().Sign() == 0 }
func (x Rat) IsValid() bool { return !x.bad }

func (Rat) FromInt(n int) Rat {
	return Rat{v: new(big.Rat).SetInt64(int64(n))}
}

// Parse accepts integers, fractions ("3/4") and decimals ("0.75"), and
// "NaN" for the invalid value.
func (Rat) Parse(s string) (Rat, error) {
	if s == nanString {
		return invalidRat, nil
	}
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, errgo.Newf("invalid rational %q", s)
	}
	return Rat{v: v}, nil
}

func (x Rat) String() string {
	if x.bad {
		return nanString
	}
	return x.rat().RatString()
}
