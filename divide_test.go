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
	gc "gopkg.in/check.v1"
	"gopkg.in/errgo.v1"
)

type DivideSuite struct{}

var _ = gc.Suite(&DivideSuite{})

func (s *DivideSuite) TestRemainder(c *gc.C) {
	// (x^2 + 1) / (x + 1) = x - 1, remainder 2
	x := MustPairs[Int](1, 2, 1, 0)
	y := MustPairs[Int](1, 1, 1, 0)
	q, r, err := PolyDivmod(x, y)
	c.Assert(err, gc.IsNil)
	c.Assert(q.String(), gc.Equals, "1x^1 + -1x^0")
	c.Assert(r.String(), gc.Equals, "2x^0")

	q, err = PolyDiv(x, y)
	c.Assert(err, gc.IsNil)
	c.Assert(q.String(), gc.Equals, "1x^1 + -1x^0")
	r, err = PolyMod(x, y)
	c.Assert(err, gc.IsNil)
	c.Assert(r.String(), gc.Equals, "2x^0")

	p, err := new(Polynomial[Int]).Quo(x, y)
	c.Assert(err, gc.IsNil)
	c.Assert(p.String(), gc.Equals, "1x^1 + -1x^0")
}

// Over Int a leading coefficient that does not divide evenly stops the
// division, and the remainder keeps what could not be cancelled.
func (s *DivideSuite) TestNonMonicInt(c *gc.C) {
	for i, testCase := range []struct {
		x, y []Int
		q, r string
	}{{
		[]Int{1, 2, 1, 0}, []Int{2, 1},
		"0", "1x^2 + 1x^0",
	}, {
		[]Int{5, 2, 3, 1, 1, 0}, []Int{2, 1, 1, 0},
		"2x^1", "1x^2 + 1x^1 + 1x^0",
	}, {
		[]Int{4, 2, 2, 1}, []Int{2, 1, 1, 0},
		"2x^1", "0",
	}} {
		c.Logf("test#%d", i)
		x, y := MustPairs(testCase.x...), MustPairs(testCase.y...)
		q, r, err := PolyDivmod(x, y)
		c.Assert(err, gc.IsNil)
		c.Check(q.String(), gc.Equals, testCase.q)
		c.Check(r.String(), gc.Equals, testCase.r)
		p := new(Polynomial[Int]).Add(new(Polynomial[Int]).Mul(q, y), r).Simplify()
		c.Check(p.Equal(x.Copy().Simplify()), gc.Equals, true)
	}
}

// A dividend of lower degree is all remainder.
func (s *DivideSuite) TestLowerDegree(c *gc.C) {
	x := MustPairs[Float](3, 1, 1, 0)
	y := MustPairs[Float](1, 2)
	q, r, err := PolyDivmod(x, y)
	c.Assert(err, gc.IsNil)
	c.Assert(q.Len(), gc.Equals, 0)
	c.Assert(r.String(), gc.Equals, "3x^1 + 1x^0")
}

// Operands are simplified before division, and are left unchanged.
func (s *DivideSuite) TestUnsimplifiedOperands(c *gc.C) {
	x := MustPairs[Float](-24, 0, 1, 3, 0, 9, -10, 1, 1, 2, 2, 2)
	y := MustPairs[Float](8, 0, 3, 1, 3, 1, 1, 2)
	q, r, err := PolyDivmod(x, y)
	c.Assert(err, gc.IsNil)
	c.Assert(q.String(), gc.Equals, "1x^1 + -3x^0")
	c.Assert(r.Len(), gc.Equals, 0)
	c.Assert(x.Len(), gc.Equals, 6)
	c.Assert(y.Len(), gc.Equals, 4)
}

func (s *DivideSuite) TestZeroDivisor(c *gc.C) {
	x := MustPairs[Float](1, 2)
	for i, y := range []*Polynomial[Float]{
		NewPolynomial[Float](),
		MustPairs[Float](0, 3, 0, 0),
		MustPairs[Float](2, 1, -2, 1),
	} {
		c.Logf("test#%d: %v", i, y)
		_, _, err := PolyDivmod(x, y)
		c.Assert(errgo.Cause(err), gc.Equals, ErrZeroDivisor)
	}
	_, err := PolyDiv(x, NewPolynomial[Float]())
	c.Assert(errgo.Cause(err), gc.Equals, ErrZeroDivisor)
	_, err = new(Polynomial[Float]).Quo(x, NewPolynomial[Float]())
	c.Assert(errgo.Cause(err), gc.Equals, ErrZeroDivisor)
}

func (s *DivideSuite) TestMaxSteps(c *gc.C) {
	// x^5 / (x + 1) takes five steps.
	x := MustPairs[Int](1, 5)
	y := MustPairs[Int](1, 1, 1, 0)
	_, _, err := PolyDivmodWith(x, y, DivOptions[Int]{MaxSteps: 4})
	c.Assert(errgo.Cause(err), gc.Equals, ErrDivisionDiverged)
	c.Assert(err, gc.ErrorMatches, "division did not terminate within 4 steps.*")

	q, r, err := PolyDivmodWith(x, y, DivOptions[Int]{MaxSteps: 5})
	c.Assert(err, gc.IsNil)
	c.Assert(q.String(), gc.Equals, "1x^4 + -1x^3 + 1x^2 + -1x^1 + 1x^0")
	c.Assert(r.String(), gc.Equals, "-1x^0")
}

// Exponents that lose precision can keep the remainder from shrinking.
func (s *DivideSuite) TestStalled(c *gc.C) {
	x := MustPairs[Float](1, 1e17)
	y := MustPairs[Float](1, 1, 1, 0.5)
	_, _, err := PolyDivmod(x, y)
	c.Assert(errgo.Cause(err), gc.Equals, ErrDivisionStalled)
}

func (s *DivideSuite) TestObserve(c *gc.C) {
	type step struct {
		n int
		q string
		r string
	}
	var steps []step
	x := MustPairs[Float](1, 3, 3, 2, -10, 1, -24, 0)
	y := MustPairs[Float](1, 2, 6, 1, 8, 0)
	_, _, err := PolyDivmodWith(x, y, DivOptions[Float]{
		Observe: func(n int, q Term[Float], r *Polynomial[Float]) {
			steps = append(steps, step{n, q.String(), r.String()})
		},
	})
	c.Assert(err, gc.IsNil)
	c.Assert(steps, gc.DeepEquals, []step{
		{1, "1x^1", "-3x^2 + -18x^1 + -24x^0"},
		{2, "-3x^0", "0"},
	})
}

func (s *DivideSuite) TestFiniteField(c *gc.C) {
	// In Z(97), (x^2 - 1) / (2x + 2) = 49x + 48, since 2 * 49 = 1.
	x := MustPairs(Zi[F97](1), Zi[F97](2), Zi[F97](-1), Zi[F97](0))
	y := MustPairs(Zi[F97](2), Zi[F97](1), Zi[F97](2), Zi[F97](0))
	q, r, err := PolyDivmod(x, y)
	c.Assert(err, gc.IsNil)
	c.Assert(q.String(), gc.Equals, "49x^1 + 48x^0")
	c.Assert(r.Len(), gc.Equals, 0)
	p := new(Polynomial[Zp[F97]]).Mul(q, y).Simplify()
	c.Assert(p.Equal(x.Copy().Simplify()), gc.Equals, true)
}
