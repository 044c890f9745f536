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

var (
	// ErrZeroDivisor is the cause of an error dividing by a polynomial
	// without a nonzero term.
	ErrZeroDivisor = errgo.New("division by zero polynomial")

	// ErrDivisionDiverged is the cause of an error when long division does
	// not finish within its step limit.
	ErrDivisionDiverged = errgo.New("division did not terminate")

	// ErrDivisionStalled is the cause of an error when a long division step
	// fails to lower the degree of the remainder.
	ErrDivisionStalled = errgo.New("division step did not reduce the remainder")

	// ErrOddPairs is the cause of an error building terms from an odd
	// number of coefficient and exponent values.
	ErrOddPairs = errgo.New("coefficients and exponents must be paired")

	// ErrNotFound is the cause of an error looking up a missing polynomial
	// in a Store.
	ErrNotFound = errgo.New("polynomial not found")
)

// IsNotFound returns whether err was caused by a missing polynomial.
func IsNotFound(err error) bool {
	return errgo.Cause(err) == ErrNotFound
}
