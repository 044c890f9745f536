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

// Package testing provides some unit-testing support functions.
package testing

import (
	"testing"

	"github.com/bmizerany/assert"

	. "github.com/cmars/polycalc"
)

// StoreManager creates and destroys Store implementations under test.
// Stores hold exact rationals so that round trips compare equal.
type StoreManager interface {
	CreateStore() (Store[Rat], string)
	DestroyStore(Store[Rat], string)
}

func withStore(t *testing.T, storeMgr StoreManager, f func(Store[Rat])) {
	store, path := storeMgr.CreateStore()
	defer storeMgr.DestroyStore(store, path)
	f(store)
}

// RunStoreTests runs every store test against storeMgr.
func RunStoreTests(t *testing.T, storeMgr StoreManager) {
	RunPutGet(t, storeMgr)
	RunPutReplaces(t, storeMgr)
	RunPreservesTerms(t, storeMgr)
	RunEmptyPolynomial(t, storeMgr)
	RunNotFound(t, storeMgr)
	RunRemove(t, storeMgr)
	RunNames(t, storeMgr)
	RunCopyOnPut(t, storeMgr)
	RunInvalidValues(t, storeMgr)
}

// Polynomials come back as stored.
func RunPutGet(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		p := MustPairs(R(2, 1), R(2, 1), R(-3, 2), R(1, 1), R(5, 1), R(0, 1))
		err := store.Put("p", p)
		assert.Equal(t, nil, err)
		ok, err := store.Exists("p")
		assert.Equal(t, nil, err)
		assert.T(t, ok)
		q, err := store.Get("p")
		assert.Equal(t, nil, err)
		assert.Tf(t, p.Equal(q), "got %v, want %v", q, p)
	})
}

func RunPutReplaces(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		err := store.Put("p", MustPairs(R(1, 1), R(3, 1), R(1, 1), R(2, 1)))
		assert.Equal(t, nil, err)
		want := MustPairs(R(7, 3), R(1, 1))
		err = store.Put("p", want)
		assert.Equal(t, nil, err)
		got, err := store.Get("p")
		assert.Equal(t, nil, err)
		assert.Tf(t, want.Equal(got), "got %v, want %v", got, want)
	})
}

// Stores do not simplify: order, like terms and zero terms survive.
func RunPreservesTerms(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		p := MustPairs(R(1, 1), R(0, 1), R(0, 1), R(4, 1), R(2, 1), R(0, 1), R(-1, 4), R(3, 1))
		err := store.Put("raw", p)
		assert.Equal(t, nil, err)
		q, err := store.Get("raw")
		assert.Equal(t, nil, err)
		assert.Equal(t, 4, q.Len())
		assert.Tf(t, p.Equal(q), "got %v, want %v", q, p)
	})
}

func RunEmptyPolynomial(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		err := store.Put("zero", NewPolynomial[Rat]())
		assert.Equal(t, nil, err)
		ok, err := store.Exists("zero")
		assert.Equal(t, nil, err)
		assert.T(t, ok)
		q, err := store.Get("zero")
		assert.Equal(t, nil, err)
		assert.Equal(t, 0, q.Len())
		assert.Equal(t, "0", q.String())
	})
}

func RunNotFound(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		ok, err := store.Exists("nope")
		assert.Equal(t, nil, err)
		assert.T(t, !ok)
		_, err = store.Get("nope")
		assert.T(t, IsNotFound(err))
		err = store.Remove("nope")
		assert.T(t, IsNotFound(err))
	})
}

func RunRemove(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		err := store.Put("a", MustPairs(R(1, 1), R(1, 1)))
		assert.Equal(t, nil, err)
		err = store.Put("b", MustPairs(R(2, 1), R(2, 1)))
		assert.Equal(t, nil, err)
		err = store.Remove("a")
		assert.Equal(t, nil, err)
		ok, err := store.Exists("a")
		assert.Equal(t, nil, err)
		assert.T(t, !ok)
		_, err = store.Get("a")
		assert.T(t, IsNotFound(err))
		ok, err = store.Exists("b")
		assert.Equal(t, nil, err)
		assert.T(t, ok)
	})
}

func RunNames(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		names, err := store.Names()
		assert.Equal(t, nil, err)
		assert.Equal(t, 0, len(names))
		for _, name := range []string{"q", "f(x)", "a b", "Z", "p"} {
			err = store.Put(name, MustPairs(R(1, 1), R(0, 1)))
			assert.Equal(t, nil, err)
		}
		names, err = store.Names()
		assert.Equal(t, nil, err)
		assert.Equal(t, []string{"Z", "a b", "f(x)", "p", "q"}, names)
	})
}

// Changing a polynomial after Put does not change the stored value.
func RunCopyOnPut(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		p := MustPairs(R(1, 1), R(2, 1))
		err := store.Put("p", p)
		assert.Equal(t, nil, err)
		p.Add(p, MustPairs(R(1, 1), R(5, 1)))
		q, err := store.Get("p")
		assert.Equal(t, nil, err)
		assert.Equal(t, "1x^2", q.String())
	})
}

// Invalid values survive storage, so a stored result that integrated x^-1
// can still be listed and shown.
func RunInvalidValues(t *testing.T, storeMgr StoreManager) {
	withStore(t, storeMgr, func(store Store[Rat]) {
		p := MustPairs(R(1, 1), R(-1, 1), R(2, 1), R(1, 1)).Integrate()
		err := store.Put("log", p)
		assert.Equal(t, nil, err)
		q, err := store.Get("log")
		assert.Equal(t, nil, err)
		assert.Equal(t, "NaNx^0 + 1x^2", q.String())
		assert.T(t, !q.Terms()[0].Coefficient.IsValid())
		names, err := store.Names()
		assert.Equal(t, nil, err)
		assert.Equal(t, []string{"log"}, names)
	})
}
