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

// Package mem provides an in-memory implementation of the polynomial Store
// interface.
package mem

import (
	"sync"

	"github.com/petar/GoLLRB/llrb"
	"gopkg.in/errgo.v1"

	"github.com/cmars/polycalc"
)

type entry[T polycalc.Number[T]] struct {
	name string
	poly *polycalc.Polynomial[T]
}

func (e *entry[T]) Less(than llrb.Item) bool {
	return e.name < than.(*entry[T]).name
}

// Store keeps named polynomials in a balanced tree ordered by name.
type Store[T polycalc.Number[T]] struct {
	mu   sync.RWMutex
	tree *llrb.LLRB
}

func New[T polycalc.Number[T]]() *Store[T] {
	return &Store[T]{tree: llrb.New()}
}

func (s *Store[T]) Put(name string, p *polycalc.Polynomial[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.ReplaceOrInsert(&entry[T]{name: name, poly: p.Copy()})
	return nil
}

func (s *Store[T]) Get(name string) (*polycalc.Polynomial[T], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item := s.tree.Get(&entry[T]{name: name})
	if item == nil {
		return nil, errgo.WithCausef(nil, polycalc.ErrNotFound, "polynomial %q not found", name)
	}
	return item.(*entry[T]).poly.Copy(), nil
}

func (s *Store[T]) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tree.Delete(&entry[T]{name: name}) == nil {
		return errgo.WithCausef(nil, polycalc.ErrNotFound, "polynomial %q not found", name)
	}
	return nil
}

func (s *Store[T]) Exists(name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Has(&entry[T]{name: name}), nil
}

func (s *Store[T]) Names() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, s.tree.Len())
	s.tree.AscendGreaterOrEqual(&entry[T]{}, func(i llrb.Item) bool {
		names = append(names, i.(*entry[T]).name)
		return true
	})
	return names, nil
}
