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

package sqlstore

import (
	"github.com/cmars/polycalc"
)

type Settings struct {
	*polycalc.Settings
}

func (s *Settings) Driver() string {
	return s.GetString("polycalc.store.sql.driver", "sqlite")
}

func (s *Settings) DSN() string {
	return s.GetString("polycalc.store.sql.dsn", "polycalc.db")
}

func (s *Settings) Namespace() string {
	return s.GetString("polycalc.store.sql.ns", "polycalc")
}

func NewSettings(settings *polycalc.Settings) *Settings {
	return &Settings{settings}
}

func DefaultSettings() *Settings {
	return NewSettings(polycalc.DefaultSettings())
}
