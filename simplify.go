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
	"github.com/petar/GoLLRB/llrb"
)

// ZeroPolicy decides whether Simplify keeps a term whose merged coefficient
// is zero.
type ZeroPolicy int

const (
	// DropZeros removes every zero term. A polynomial whose terms all
	// cancel simplifies to the polynomial without terms.
	DropZeros ZeroPolicy = iota
	// KeepZeros emits one term per distinct exponent, zero or not.
	KeepZeros
)

func (zp ZeroPolicy) String() string {
	switch zp {
	case DropZeros:
		return "drop"
	case KeepZeros:
		return "keep"
	}
	return "unknown"
}

// likeTerms accumulates the coefficients of the terms sharing an exponent.
type likeTerms[T Number[T]] struct {
	Term[T]
}

func (l *likeTerms[T]) Less(than llrb.Item) bool {
	return l.Exponent.Cmp(than.(*likeTerms[T]).Exponent) < 0
}

// Simplify puts the Polynomial in canonical form, returning the result:
// terms sorted by strictly descending exponent, like terms combined and zero
// terms dropped.
func (p *Polynomial[T]) Simplify() *Polynomial[T] {
	return p.SimplifyWith(DropZeros)
}

// SimplifyWith is like Simplify, with the given handling of zero terms.
// Exponents are like when they compare equal with Cmp.
func (p *Polynomial[T]) SimplifyWith(policy ZeroPolicy) *Polynomial[T] {
	tree := llrb.New()
	for _, t := range p.terms {
		item := &likeTerms[T]{Term: t}
		if found := tree.Get(item); found != nil {
			like := found.(*likeTerms[T])
			like.Coefficient = like.Coefficient.Add(t.Coefficient)
		} else {
			tree.ReplaceOrInsert(item)
		}
	}
	terms := make([]Term[T], 0, tree.Len())
	if top := tree.Max(); top != nil {
		tree.DescendLessOrEqual(top, func(i llrb.Item) bool {
			t := i.(*likeTerms[T]).Term
			if policy == KeepZeros || !t.Coefficient.IsZero() {
				terms = append(terms, t)
			}
			return true
		})
	}
	p.terms = terms
	return p
}
