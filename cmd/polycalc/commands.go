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

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/errgo.v1"

	"github.com/cmars/polycalc"
	"github.com/cmars/polycalc/store/diskv"
	"github.com/cmars/polycalc/store/mem"
	"github.com/cmars/polycalc/store/sqlstore"
)

var errUsage = errgo.New("usage")

func openStore[T polycalc.Number[T]](settings *polycalc.Settings) (polycalc.Store[T], func(), error) {
	switch backend := settings.StoreBackend(); backend {
	case "mem":
		return mem.New[T](), func() {}, nil
	case "diskv":
		return diskv.New[T](diskv.NewSettings(settings)), func() {}, nil
	case "sql":
		sqlSettings := sqlstore.NewSettings(settings)
		db, err := sqlstore.Open(sqlSettings)
		if err != nil {
			return nil, nil, errgo.Mask(err)
		}
		store, err := sqlstore.New[T](sqlSettings.Namespace(), db)
		if err != nil {
			db.Close()
			return nil, nil, errgo.Mask(err)
		}
		return store, func() { db.Close() }, nil
	default:
		return nil, nil, errgo.Newf("unknown store backend %q", backend)
	}
}

func run[T polycalc.Number[T]](settings *polycalc.Settings, args []string, in io.Reader, out io.Writer) error {
	store, closeStore, err := openStore[T](settings)
	if err != nil {
		return errgo.Mask(err)
	}
	defer closeStore()
	s := &session[T]{
		store:  store,
		policy: settings.ZeroPolicy(),
		out:    out,
	}
	s.divOpts.MaxSteps = settings.MaxDivSteps()
	if settings.DivTrace() {
		s.divOpts.Observe = func(step int, q polycalc.Term[T], r *polycalc.Polynomial[T]) {
			polycalc.Logger().Println(polycalc.DIVIDE, "step", step, "quotient term", q, "remainder", r)
		}
	}
	if len(args) > 0 {
		return s.exec(args)
	}
	scanner := bufio.NewScanner(in)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := s.exec(strings.Fields(line)); err != nil {
			return errgo.NoteMask(err, fmt.Sprintf("line %d", lineno), errgo.Any)
		}
	}
	return errgo.Mask(scanner.Err())
}

type session[T polycalc.Number[T]] struct {
	store   polycalc.Store[T]
	policy  polycalc.ZeroPolicy
	divOpts polycalc.DivOptions[T]
	out     io.Writer
}

func (s *session[T]) get(name string) (*polycalc.Polynomial[T], error) {
	p, err := s.store.Get(name)
	return p, errgo.Mask(err, errgo.Any)
}

func (s *session[T]) number(arg string) (T, error) {
	var x T
	x, err := x.Parse(arg)
	return x, errgo.Mask(err)
}

func (s *session[T]) put(name string, p *polycalc.Polynomial[T]) error {
	if err := s.store.Put(name, p); err != nil {
		return errgo.Mask(err)
	}
	fmt.Fprintln(s.out, p)
	return nil
}

// binary applies op to the polynomials named a and b, storing the canonical
// result as dest.
func (s *session[T]) binary(dest, a, b string, op func(x, y *polycalc.Polynomial[T]) *polycalc.Polynomial[T]) error {
	x, err := s.get(a)
	if err != nil {
		return err
	}
	y, err := s.get(b)
	if err != nil {
		return err
	}
	return s.put(dest, op(x, y).SimplifyWith(s.policy))
}

func (s *session[T]) bounds(lower, upper string) (T, T, error) {
	lo, err := s.number(lower)
	if err != nil {
		return lo, lo, err
	}
	hi, err := s.number(upper)
	return lo, hi, err
}

func arity(args []string, n int, usage string) error {
	if len(args) != n+1 {
		return errgo.WithCausef(nil, errUsage, "usage: %s %s", args[0], usage)
	}
	return nil
}

func (s *session[T]) exec(args []string) error {
	cmd := args[0]
	switch cmd {
	case "def":
		if len(args) < 2 {
			return errgo.WithCausef(nil, errUsage, "usage: def NAME c0 e0 c1 e1 ...")
		}
		p, err := polycalc.ParsePairs[T](args[2:])
		if err != nil {
			return errgo.Mask(err, errgo.Any)
		}
		return s.put(args[1], p)
	case "fit":
		if len(args) < 2 || len(args)%2 != 0 {
			return errgo.WithCausef(nil, errUsage, "usage: fit NAME x0 y0 x1 y1 ...")
		}
		var xs, ys []T
		for i := 2; i < len(args); i += 2 {
			x, err := s.number(args[i])
			if err != nil {
				return err
			}
			y, err := s.number(args[i+1])
			if err != nil {
				return err
			}
			xs, ys = append(xs, x), append(ys, y)
		}
		p, err := polycalc.Interpolate(xs, ys)
		if err != nil {
			return errgo.Mask(err, errgo.Any)
		}
		return s.put(args[1], p)
	case "show":
		if err := arity(args, 1, "NAME"); err != nil {
			return err
		}
		p, err := s.get(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, p)
	case "list":
		names, err := s.store.Names()
		if err != nil {
			return errgo.Mask(err)
		}
		for _, name := range names {
			p, err := s.get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "%s = %v\n", name, p)
		}
	case "rm":
		if err := arity(args, 1, "NAME"); err != nil {
			return err
		}
		return errgo.Mask(s.store.Remove(args[1]), errgo.Any)
	case "simplify":
		if err := arity(args, 1, "NAME"); err != nil {
			return err
		}
		p, err := s.get(args[1])
		if err != nil {
			return err
		}
		return s.put(args[1], p.SimplifyWith(s.policy))
	case "add", "sub", "mul":
		if err := arity(args, 3, "DEST A B"); err != nil {
			return err
		}
		return s.binary(args[1], args[2], args[3], func(x, y *polycalc.Polynomial[T]) *polycalc.Polynomial[T] {
			switch cmd {
			case "add":
				return new(polycalc.Polynomial[T]).Add(x, y)
			case "sub":
				return new(polycalc.Polynomial[T]).Sub(x, y)
			}
			return new(polycalc.Polynomial[T]).Mul(x, y)
		})
	case "div", "mod":
		if err := arity(args, 3, "DEST A B"); err != nil {
			return err
		}
		x, err := s.get(args[2])
		if err != nil {
			return err
		}
		y, err := s.get(args[3])
		if err != nil {
			return err
		}
		q, r, err := polycalc.PolyDivmodWith(x, y, s.divOpts)
		if err != nil {
			return errgo.Mask(err, errgo.Any)
		}
		if cmd == "mod" {
			return s.put(args[1], r)
		}
		return s.put(args[1], q)
	case "scale":
		if err := arity(args, 3, "DEST A k"); err != nil {
			return err
		}
		x, err := s.get(args[2])
		if err != nil {
			return err
		}
		k, err := s.number(args[3])
		if err != nil {
			return err
		}
		return s.put(args[1], new(polycalc.Polynomial[T]).Scale(x, k).SimplifyWith(s.policy))
	case "diff", "integrate":
		if err := arity(args, 2, "DEST A"); err != nil {
			return err
		}
		x, err := s.get(args[2])
		if err != nil {
			return err
		}
		if cmd == "diff" {
			return s.put(args[1], x.Differentiate().SimplifyWith(s.policy))
		}
		return s.put(args[1], x.Integrate().SimplifyWith(s.policy))
	case "eval", "slope":
		if err := arity(args, 2, "A x"); err != nil {
			return err
		}
		p, err := s.get(args[1])
		if err != nil {
			return err
		}
		x, err := s.number(args[2])
		if err != nil {
			return err
		}
		if cmd == "slope" {
			fmt.Fprintln(s.out, p.DiffAt(x))
		} else {
			fmt.Fprintln(s.out, p.Eval(x))
		}
	case "between", "definite":
		if err := arity(args, 3, "A lower upper"); err != nil {
			return err
		}
		p, err := s.get(args[1])
		if err != nil {
			return err
		}
		lower, upper, err := s.bounds(args[2], args[3])
		if err != nil {
			return err
		}
		if cmd == "definite" {
			fmt.Fprintln(s.out, p.DefiniteIntegral(lower, upper))
		} else {
			fmt.Fprintln(s.out, p.SumBetween(lower, upper))
		}
	default:
		return errgo.Newf("unknown command %q", cmd)
	}
	return nil
}
