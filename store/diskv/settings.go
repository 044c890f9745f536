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

package diskv

import (
	"github.com/cmars/polycalc"
)

type Settings struct {
	*polycalc.Settings
}

func (s *Settings) BasePath() string {
	return s.GetString("polycalc.store.diskv.basePath", "polycalc-store")
}

func (s *Settings) CacheSizeMax() int {
	return s.GetInt("polycalc.store.diskv.cacheSizeMax", 1024*1024)
}

func NewSettings(settings *polycalc.Settings) *Settings {
	return &Settings{settings}
}

func DefaultSettings() *Settings {
	return NewSettings(polycalc.DefaultSettings())
}
