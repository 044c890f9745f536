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

// Package polycalc provides single-variable polynomial algebra over a
// generic numeric type: term and polynomial arithmetic, polynomial long
// division, canonicalization, and term-wise calculus.
package polycalc

// Number is the capability set a numeric type must provide for use as a
// polynomial coefficient and exponent.
//
// Implementations are value types. Operations return new values and never
// modify the receiver.
type Number[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	// Quo follows the type's own division semantics when the divisor is
	// zero: it may panic, or return an infinite or invalid value.
	Quo(T) T
	Pow(T) T
	Neg() T

	// Cmp returns -1, 0 or +1, ordering all values of the type totally.
	Cmp(T) int
	// IsZero returns whether the value is the additive identity.
	IsZero() bool
	// IsValid returns false for NaN-equivalent values.
	IsValid() bool

	// FromInt converts a small non-negative integer into the type. It is
	// called on the zero value, so it must not depend on the receiver.
	FromInt(n int) T
	// Parse reads a value from its String form. An invalid value must
	// read back as invalid.
	Parse(s string) (T, error)

	String() string
}

// nanString is the String form of an invalid value.
const nanString = "NaN"

func zero[T Number[T]]() T {
	var z T
	return z.FromInt(0)
}

func one[T Number[T]]() T {
	var z T
	return z.FromInt(1)
}

func parse[T Number[T]](s string) (T, error) {
	var z T
	return z.Parse(s)
}
