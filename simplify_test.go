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
)

type SimplifySuite struct{}

var _ = gc.Suite(&SimplifySuite{})

func (s *SimplifySuite) TestOrderAndMerge(c *gc.C) {
	p := MustPairs[Int](5, 0, 1, 3, 2, 1, 4, 3, -2, 1)
	c.Assert(p.Simplify().String(), gc.Equals, "5x^3 + 5x^0")
}

func (s *SimplifySuite) TestAllCancel(c *gc.C) {
	p := MustPairs[Float](2, 2, -2, 2)
	p.Simplify()
	c.Assert(p.Len(), gc.Equals, 0)
	c.Assert(p.String(), gc.Equals, "0")
}

func (s *SimplifySuite) TestKeepZeros(c *gc.C) {
	p := MustPairs[Int](2, 2, -2, 2, 1, 0, 0, 5)
	c.Assert(p.Copy().SimplifyWith(KeepZeros).String(), gc.Equals, "0x^5 + 0x^2 + 1x^0")
	c.Assert(p.Copy().SimplifyWith(DropZeros).String(), gc.Equals, "1x^0")
	c.Assert(KeepZeros.String(), gc.Equals, "keep")
	c.Assert(DropZeros.String(), gc.Equals, "drop")
}

func (s *SimplifySuite) TestNegativeAndFractionalExponents(c *gc.C) {
	p := MustPairs(R(1, 1), R(-1, 1), R(1, 1), R(1, 2), R(2, 1), R(0, 1), R(1, 1), R(2, 4))
	c.Assert(p.Simplify().String(), gc.Equals, "2x^1/2 + 2x^0 + 1x^-1")
}

// Like terms are grouped by the exponent's Cmp, not its representation.
func (s *SimplifySuite) TestEquivalentExponents(c *gc.C) {
	p := MustPairs(D(1, 0), D(20, 1), D(3, 0), D(2, 0))
	p.Simplify()
	c.Assert(p.Len(), gc.Equals, 1)
	lead, _ := p.Lead()
	c.Assert(lead.Coefficient.String(), gc.Equals, "4")

	z := MustPairs(Zi[F97](1), Zi[F97](98), Zi[F97](1), Zi[F97](1))
	c.Assert(z.Simplify().String(), gc.Equals, "2x^1")
}

// Simplify leaves the receiver's old term slice alone.
func (s *SimplifySuite) TestSimplifyCopy(c *gc.C) {
	p := MustPairs[Int](1, 1, 1, 1)
	ts := p.Terms()
	p.Simplify()
	c.Assert(ts, gc.DeepEquals, Terms[Int]{{1, 1}, {1, 1}})
	c.Assert(p.String(), gc.Equals, "2x^1")
}
