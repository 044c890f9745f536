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

// polycalc is a command line calculator over named polynomials.
//
//	polycalc [-config file] command args...
//
// With no command, commands are read one per line from standard input.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"gopkg.in/errgo.v1"

	"github.com/cmars/polycalc"
)

var configFile = flag.String("config", "", "settings file (TOML)")

func loadSettings(path string) (*polycalc.Settings, error) {
	var settings *polycalc.Settings
	if path == "" {
		settings = polycalc.DefaultSettings()
	} else {
		var err error
		settings, err = polycalc.LoadSettings(path)
		if err != nil {
			return nil, errgo.Mask(err)
		}
	}
	if err := settings.ApplyEnv(); err != nil {
		return nil, errgo.Mask(err)
	}
	return settings, nil
}

// dispatch runs the command in args, or the commands read from in, with the
// number type named in settings.
func dispatch(settings *polycalc.Settings, args []string, in io.Reader, out io.Writer) error {
	switch numeric := settings.Numeric(); numeric {
	case "float":
		return run[polycalc.Float](settings, args, in, out)
	case "int":
		return run[polycalc.Int](settings, args, in, out)
	case "rat":
		return run[polycalc.Rat](settings, args, in, out)
	case "decimal":
		return run[polycalc.Decimal](settings, args, in, out)
	case "zp97":
		return run[polycalc.Zp[polycalc.F97]](settings, args, in, out)
	case "zp65537":
		return run[polycalc.Zp[polycalc.F65537]](settings, args, in, out)
	case "sks":
		return run[polycalc.Zp[polycalc.FSKS]](settings, args, in, out)
	default:
		return errgo.Newf("unknown numeric type %q", numeric)
	}
}

func main() {
	flag.Parse()
	settings, err := loadSettings(*configFile)
	if err != nil {
		log.Fatalln(polycalc.CMD, err)
	}
	polycalc.SetLogger(log.New(os.Stderr, settings.LogName()+" ", log.LstdFlags))
	err = dispatch(settings, flag.Args(), os.Stdin, os.Stdout)
	if err != nil {
		polycalc.Logger().Println(polycalc.CMD, err)
		os.Exit(1)
	}
}
