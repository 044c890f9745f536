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
	"log"
	"os"
)

// Role tags prefixed to log lines.
const (
	STORE  = "store:"
	DIVIDE = "divide:"
	CMD    = "cmd:"
)

var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger replaces the logger used by stores and the command line.
func SetLogger(l *log.Logger) {
	logger = l
}

func Logger() *log.Logger {
	return logger
}
