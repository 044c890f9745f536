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

// Package diskv provides a key-value storage implementation of the
// polynomial Store interface.
package diskv

import (
	"bytes"
	"encoding/hex"
	"sort"

	"github.com/peterbourgon/diskv"
	"gopkg.in/errgo.v1"

	"github.com/cmars/polycalc"
)

const keyPrefix = "p"

// Store keeps each polynomial in its own file, in the polycalc wire
// encoding. Names are hex-encoded into keys so that any name is a safe
// file name.
type Store[T polycalc.Number[T]] struct {
	*Settings
	dv *diskv.Diskv
}

func balancedTransform(s string) (path []string) {
	for i, n, l := 0, 1, len(s); i+n < l && n < 8; {
		path = append(path, s[l-(i+n):l-i])
		i += n
		n *= 2
	}
	return
}

func nameKey(name string) string {
	return keyPrefix + hex.EncodeToString([]byte(name))
}

func keyName(key string) (string, bool) {
	if len(key) < len(keyPrefix) || key[:len(keyPrefix)] != keyPrefix {
		return "", false
	}
	name, err := hex.DecodeString(key[len(keyPrefix):])
	if err != nil {
		return "", false
	}
	return string(name), true
}

func New[T polycalc.Number[T]](settings *Settings) *Store[T] {
	polycalc.Logger().Println(polycalc.STORE, "diskv base path:", settings.BasePath())
	return &Store[T]{
		Settings: settings,
		dv: diskv.New(diskv.Options{
			BasePath:     settings.BasePath(),
			Transform:    balancedTransform,
			CacheSizeMax: uint64(settings.CacheSizeMax())}),
	}
}

func (s *Store[T]) Put(name string, p *polycalc.Polynomial[T]) error {
	var buf bytes.Buffer
	if err := polycalc.WritePoly(&buf, p); err != nil {
		return errgo.Mask(err)
	}
	return errgo.Mask(s.dv.Write(nameKey(name), buf.Bytes()))
}

func (s *Store[T]) Get(name string) (*polycalc.Polynomial[T], error) {
	key := nameKey(name)
	if !s.dv.Has(key) {
		return nil, errgo.WithCausef(nil, polycalc.ErrNotFound, "polynomial %q not found", name)
	}
	data, err := s.dv.Read(key)
	if err != nil {
		return nil, errgo.Mask(err)
	}
	p, err := polycalc.ReadPoly[T](bytes.NewReader(data))
	if err != nil {
		return nil, errgo.Notef(err, "corrupt polynomial %q", name)
	}
	return p, nil
}

func (s *Store[T]) Remove(name string) error {
	key := nameKey(name)
	if !s.dv.Has(key) {
		return errgo.WithCausef(nil, polycalc.ErrNotFound, "polynomial %q not found", name)
	}
	return errgo.Mask(s.dv.Erase(key))
}

func (s *Store[T]) Exists(name string) (bool, error) {
	return s.dv.Has(nameKey(name)), nil
}

func (s *Store[T]) Names() ([]string, error) {
	var names []string
	for key := range s.dv.Keys(nil) {
		if name, ok := keyName(key); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Drop erases every stored polynomial.
func (s *Store[T]) Drop() error {
	return s.dv.EraseAll()
}
