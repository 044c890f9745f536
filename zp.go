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
	"math/big"

	"gopkg.in/errgo.v1"
)

// P_SKS is the prime of the finite field used by SKS, the Synchronizing Key
// Server.
var P_SKS *big.Int

var (
	p97    = big.NewInt(97)
	p65537 = big.NewInt(65537)
)

func init() {
	P_SKS, _ = big.NewInt(0).SetString("530512889551602322505127520352579437339", 10)
}

// Modulus selects the prime P of a finite field Z(P). Implementations are
// empty struct types, so that the field is part of the Zp type.
type Modulus interface {
	P() *big.Int
}

// F97 is the field Z(97).
type F97 struct{}

func (F97) P() *big.Int { return p97 }

// F65537 is the field Z(65537).
type F65537 struct{}

func (F65537) P() *big.Int { return p65537 }

// FSKS is the field Z(P_SKS).
type FSKS struct{}

func (FSKS) P() *big.Int { return P_SKS }

// Zp represents a value in the finite field Z(p), an integer in which all
// arithmetic is (mod p). Exponents of a Zp term are field elements too.
//
// Dividing by zero has no inverse, and produces an invalid Zp.
type Zp[M Modulus] struct {
	v   *big.Int
	bad bool
}

func modulus[M Modulus]() *big.Int {
	var m M
	return m.P()
}

// Zi creates the integer n in the finite field selected by M.
func Zi[M Modulus](n int64) Zp[M] {
	return norm[M](big.NewInt(n))
}

// Zs creates an integer from base10 string s in the finite field selected
// by M. The string "NaN" gives the invalid value.
func Zs[M Modulus](s string) (Zp[M], error) {
	if s == nanString {
		return Zp[M]{bad: true}, nil
	}
	i, ok := big.NewInt(0).SetString(s, 10)
	if !ok {
		return Zp[M]{}, errgo.Newf("invalid integer %q", s)
	}
	return norm[M](i), nil
}

// norm normalizes the integer to its finite field, (mod P). It takes
// ownership of i.
func norm[M Modulus](i *big.Int) Zp[M] {
	return Zp[M]{v: i.Mod(i, modulus[M]())}
}

func (zp Zp[M]) int() *big.Int {
	if zp.v == nil {
		return new(big.Int)
	}
	return zp.v
}

// Int returns a copy of the integer value, or nil if zp is invalid.
func (zp Zp[M]) Int() *big.Int {
	if zp.bad {
		return nil
	}
	return new(big.Int).Set(zp.int())
}

func (zp Zp[M]) Add(x Zp[M]) Zp[M] {
	if zp.bad || x.bad {
		return Zp[M]{bad: true}
	}
	return norm[M](new(big.Int).Add(zp.int(), x.int()))
}

func (zp Zp[M]) Sub(x Zp[M]) Zp[M] {
	if zp.bad || x.bad {
		return Zp[M]{bad: true}
	}
	return norm[M](new(big.Int).Sub(zp.int(), x.int()))
}

func (zp Zp[M]) Mul(x Zp[M]) Zp[M] {
	if zp.bad || x.bad {
		return Zp[M]{bad: true}
	}
	return norm[M](new(big.Int).Mul(zp.int(), x.int()))
}

// Inv returns the multiplicative inverse in P.
func (zp Zp[M]) Inv() Zp[M] {
	if zp.bad {
		return zp
	}
	inv := new(big.Int).ModInverse(zp.int(), modulus[M]())
	if inv == nil {
		return Zp[M]{bad: true}
	}
	return Zp[M]{v: inv}
}

func (zp Zp[M]) Quo(x Zp[M]) Zp[M] {
	return zp.Mul(x.Inv())
}

// Neg returns the additive inverse of an integer.
func (zp Zp[M]) Neg() Zp[M] {
	if zp.bad {
		return zp
	}
	return norm[M](new(big.Int).Sub(modulus[M](), zp.int()))
}

// Pow calculates zp**x ("zp to the xth power").
func (zp Zp[M]) Pow(x Zp[M]) Zp[M] {
	if zp.bad || x.bad {
		return Zp[M]{bad: true}
	}
	return Zp[M]{v: new(big.Int).Exp(zp.int(), x.int(), modulus[M]())}
}

// Cmp compares the canonical residues, ordering invalid values first.
func (zp Zp[M]) Cmp(x Zp[M]) int {
	switch {
	case zp.bad && x.bad:
		return 0
	case zp.bad:
		return -1
	case x.bad:
		return 1
	}
	return zp.int().Cmp(x.int())
}

// IsZero returns true if the integer is zero, otherwise false.
func (zp Zp[M]) IsZero() bool  { return !zp.bad && zp.int().Sign() == 0 }
func (zp Zp[M]) IsValid() bool { return !zp.bad }

func (Zp[M]) FromInt(n int) Zp[M] { return Zi[M](int64(n)) }

func (Zp[M]) Parse(s string) (Zp[M], error) { return Zs[M](s) }

func (zp Zp[M]) String() string {
	if zp.bad {
		return nanString
	}
	return zp.int().String()
}

// Format prints the residue along with its field, such as "5 (mod 97)",
// for the %+v verb.
func (zp Zp[M]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "%s (mod %v)", zp.String(), modulus[M]())
		return
	}
	fmt.Fprint(f, zp.String())
}
