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

// Store defines an interface for keeping named polynomials (put, get,
// remove, exists) between computations.
//
// Polynomials are stored as given, without simplification. Get returns an
// error whose cause is ErrNotFound for an unknown name.
type Store[T Number[T]] interface {
	// Put saves a copy of p under name, replacing any previous value.
	Put(name string, p *Polynomial[T]) error
	// Get returns the polynomial saved under name.
	Get(name string) (*Polynomial[T], error)
	// Remove deletes the polynomial saved under name.
	Remove(name string) error
	// Exists tests whether a polynomial is saved under name.
	Exists(name string) (bool, error)
	// Names lists the saved names in ascending order.
	Names() ([]string, error)
}
