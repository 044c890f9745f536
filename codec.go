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
	"encoding/binary"
	"io"

	"gopkg.in/errgo.v1"
)

// maxStringLen bounds the length of a single encoded number, so that a
// corrupt length prefix cannot force a huge allocation.
const maxStringLen = 1 << 20

func ReadInt(r io.Reader) (n int, err error) {
	buf := make([]byte, 4)
	_, err = io.ReadFull(r, buf)
	n = int(binary.BigEndian.Uint32(buf))
	return
}

func WriteInt(w io.Writer, n int) (err error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(n))
	_, err = w.Write(buf)
	return
}

func ReadString(r io.Reader) (string, error) {
	n, err := ReadInt(r)
	if err != nil || n == 0 {
		return "", err
	}
	if n > maxStringLen {
		return "", errgo.Newf("string length %d exceeds %d", n, maxStringLen)
	}
	buf := make([]byte, n)
	_, err = io.ReadFull(r, buf)
	return string(buf), err
}

func WriteString(w io.Writer, text string) (err error) {
	err = WriteInt(w, len(text))
	if err != nil {
		return
	}
	_, err = w.Write([]byte(text))
	return
}

// WritePoly writes the number of terms, then the coefficient and exponent of
// each term in their String form. Term order is preserved.
func WritePoly[T Number[T]](w io.Writer, p *Polynomial[T]) error {
	err := WriteInt(w, len(p.terms))
	if err != nil {
		return errgo.Mask(err)
	}
	for _, t := range p.terms {
		if err = WriteString(w, t.Coefficient.String()); err != nil {
			return errgo.Mask(err)
		}
		if err = WriteString(w, t.Exponent.String()); err != nil {
			return errgo.Mask(err)
		}
	}
	return nil
}

// ReadPoly reads a polynomial written by WritePoly.
func ReadPoly[T Number[T]](r io.Reader) (*Polynomial[T], error) {
	n, err := ReadInt(r)
	if err != nil {
		return nil, errgo.Mask(err)
	}
	values := make([]string, 0, 2*min(n, 1024))
	for i := 0; i < 2*n; i++ {
		s, err := ReadString(r)
		if err != nil {
			return nil, errgo.Notef(err, "reading term %d of %d", i/2, n)
		}
		values = append(values, s)
	}
	return ParsePairs[T](values)
}

// ParsePairs parses a flat list of alternating coefficients and exponents,
// such as the command line arguments "2 2 -3 1 5 0".
func ParsePairs[T Number[T]](fields []string) (*Polynomial[T], error) {
	values := make([]T, len(fields))
	for i, field := range fields {
		v, err := parse[T](field)
		if err != nil {
			return nil, errgo.Mask(err)
		}
		values[i] = v
	}
	p, err := Pairs(values...)
	return p, errgo.Mask(err, errgo.Any)
}
