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
	ErrMatrixTooNarrow = errgo.New("matrix is too narrow to reduce")
	ErrSingular        = errgo.New("matrix is singular")
)

// Matrix is a dense matrix of numbers, stored row by row. Cells are
// addressed by column, then row.
type Matrix[T Number[T]] struct {
	columns, rows int
	cells         []T
}

func NewMatrix[T Number[T]](columns, rows int, x T) *Matrix[T] {
	matrix := &Matrix[T]{
		columns: columns,
		rows:    rows,
		cells:   make([]T, columns*rows)}
	for i := 0; i < len(matrix.cells); i++ {
		matrix.cells[i] = x
	}
	return matrix
}

func (m *Matrix[T]) Get(col, row int) T {
	return m.cells[col+(row*m.columns)]
}

func (m *Matrix[T]) Set(col, row int, x T) {
	m.cells[col+(row*m.columns)] = x
}

// Reduce puts the matrix in reduced row echelon form by Gauss-Jordan
// elimination. Each of the first rows columns becomes a unit column, so an
// augmented system's solution is left in the last column.
//
// Elimination divides by pivots, so the result is exact only when T is a
// field, such as Rat or Zp.
func (m *Matrix[T]) Reduce() error {
	if m.columns < m.rows {
		return ErrMatrixTooNarrow
	}
	for row := 0; row < m.rows; row++ {
		if err := m.processRow(row); err != nil {
			return err
		}
	}
	return nil
}

func (m *Matrix[T]) processRow(row int) error {
	v := m.Get(row, row)
	if v.IsZero() {
		rowSwap := -1
		for j := row + 1; j < m.rows; j++ {
			if !m.Get(row, j).IsZero() {
				rowSwap = j
				break
			}
		}
		if rowSwap == -1 {
			return errgo.WithCausef(nil, ErrSingular, "%v: no pivot in column %d", ErrSingular, row)
		}
		m.swapRows(row, rowSwap)
		v = m.Get(row, row)
	}
	if v.Cmp(one[T]()) != 0 {
		m.scquoRow(row, v)
	}
	for j := 0; j < m.rows; j++ {
		if row != j {
			m.rowsub(row, j, m.Get(row, j))
		}
	}
	return nil
}

func (m *Matrix[T]) swapRows(row1, row2 int) {
	start1 := row1 * m.columns
	start2 := row2 * m.columns
	for col := 0; col < m.columns; col++ {
		m.cells[start1+col], m.cells[start2+col] = m.cells[start2+col], m.cells[start1+col]
	}
}

func (m *Matrix[T]) scquoRow(row int, v T) {
	start := row * m.columns
	for col := 0; col < m.columns; col++ {
		m.cells[start+col] = m.cells[start+col].Quo(v)
	}
}

// rowsub subtracts scmult times row src from row dst.
func (m *Matrix[T]) rowsub(src, dst int, scmult T) {
	if scmult.IsZero() {
		return
	}
	for i := 0; i < m.columns; i++ {
		sval := m.Get(i, src)
		if !sval.IsZero() {
			m.Set(i, dst, m.Get(i, dst).Sub(sval.Mul(scmult)))
		}
	}
}
