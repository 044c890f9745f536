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
	"bytes"
	"testing"

	"github.com/bmizerany/assert"
	"gopkg.in/errgo.v1"
)

func TestPolyRoundTrip(t *testing.T) {
	p := MustPairs(R(1, 3), R(2, 1), R(0, 1), R(2, 1), R(-7, 2), R(-1, 1))
	buf := bytes.NewBuffer(nil)
	err := WritePoly(buf, p)
	assert.Equal(t, nil, err)
	t.Logf("poly=%x", buf)
	q, err := ReadPoly[Rat](bytes.NewBuffer(buf.Bytes()))
	assert.Equal(t, nil, err)
	assert.T(t, p.Equal(q))
	assert.Equal(t, 3, q.Len())
}

func TestPolyEncoding(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := WritePoly(buf, MustPairs[Int](-3, 12))
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte{
		0, 0, 0, 1,
		0, 0, 0, 2, '-', '3',
		0, 0, 0, 2, '1', '2',
	}, buf.Bytes())
}

func TestEmptyPoly(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := WritePoly(buf, NewPolynomial[Float]())
	assert.Equal(t, nil, err)
	q, err := ReadPoly[Float](buf)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, q.Len())
}

func TestReadTruncated(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := WritePoly(buf, MustPairs[Int](1, 2, 3, 4))
	assert.Equal(t, nil, err)
	data := buf.Bytes()
	_, err = ReadPoly[Int](bytes.NewBuffer(data[:len(data)-1]))
	assert.NotEqual(t, nil, err)
	_, err = ReadPoly[Int](bytes.NewBuffer(nil))
	assert.NotEqual(t, nil, err)
}

func TestReadHugeString(t *testing.T) {
	_, err := ReadString(bytes.NewBuffer([]byte{0xff, 0xff, 0xff, 0xff}))
	assert.NotEqual(t, nil, err)
}

func TestParsePairs(t *testing.T) {
	p, err := ParsePairs[Float]([]string{"2", "2", "-3", "1", "5", "0"})
	assert.Equal(t, nil, err)
	assert.Equal(t, "2x^2 + -3x^1 + 5x^0", p.String())

	_, err = ParsePairs[Float]([]string{"2", "2", "-3"})
	assert.Equal(t, ErrOddPairs, errgo.Cause(err))
	_, err = ParsePairs[Int]([]string{"2", "x"})
	assert.NotEqual(t, nil, err)
}

// The wire form of a value in one number type reads back in another that
// accepts the same syntax.
func TestReadAcrossTypes(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	err := WritePoly(buf, MustPairs[Int](100, 2))
	assert.Equal(t, nil, err)
	q, err := ReadPoly[Zp[F97]](buf)
	assert.Equal(t, nil, err)
	assert.Equal(t, "3x^2", q.String())
}

// Invalid values, such as the coefficient left by integrating x^-1, are
// written as NaN and read back invalid.
func TestInvalidRoundTrip(t *testing.T) {
	p := NewPolynomial(NewTerm(R(1, 1), R(-1, 1))).Integrate()
	buf := bytes.NewBuffer(nil)
	err := WritePoly(buf, p)
	assert.Equal(t, nil, err)
	q, err := ReadPoly[Rat](buf)
	assert.Equal(t, nil, err)
	assert.Equal(t, "NaNx^0", q.String())
	assert.T(t, !q.Terms()[0].Coefficient.IsValid())
	assert.T(t, p.Equal(q))

	d := NewPolynomial(NewTerm(D(1, 0).Quo(D(0, 0)), D(2, 0)))
	buf.Reset()
	err = WritePoly(buf, d)
	assert.Equal(t, nil, err)
	e, err := ReadPoly[Decimal](buf)
	assert.Equal(t, nil, err)
	assert.Equal(t, "NaNx^2", e.String())
	assert.T(t, !e.Terms()[0].Coefficient.IsValid())

	z := NewPolynomial(NewTerm(Zi[F97](3), Zi[F97](1).Quo(Zi[F97](0))))
	buf.Reset()
	err = WritePoly(buf, z)
	assert.Equal(t, nil, err)
	w, err := ReadPoly[Zp[F97]](buf)
	assert.Equal(t, nil, err)
	assert.Equal(t, "3x^NaN", w.String())
	assert.T(t, !w.Terms()[0].Exponent.IsValid())
}
