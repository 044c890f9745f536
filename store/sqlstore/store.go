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

// Package sqlstore provides a SQL database implementation of the polynomial
// Store interface.
package sqlstore

import (
	"bytes"
	"text/template"

	"github.com/jmoiron/sqlx"
	"gopkg.in/errgo.v1"
	_ "modernc.org/sqlite"

	"github.com/cmars/polycalc"
)

// PTerm is a row of a stored polynomial, one per term in its original order.
type PTerm struct {
	Name        string `db:"name"`
	Position    int    `db:"position"`
	Coefficient string `db:"coefficient"`
	Exponent    string `db:"exponent"`
}

type Store[T polycalc.Number[T]] struct {
	Namespace string
	db        *sqlx.DB
}

// Open connects to the database named by settings.
func Open(settings *Settings) (*sqlx.DB, error) {
	db, err := sqlx.Open(settings.Driver(), settings.DSN())
	if err != nil {
		return nil, errgo.Notef(err, "cannot open %s database", settings.Driver())
	}
	// An in-memory sqlite database is private to its connection.
	db.SetMaxOpenConns(1)
	return db, nil
}

// New returns a Store keeping polynomials in the tables prefixed by
// namespace, creating them as needed.
func New[T polycalc.Number[T]](namespace string, db *sqlx.DB) (*Store[T], error) {
	s := &Store[T]{Namespace: namespace, db: db}
	for _, sql := range createTables {
		if _, err := db.Exec(s.SqlTemplate(sql)); err != nil {
			return nil, errgo.Notef(err, "cannot create tables")
		}
	}
	polycalc.Logger().Println(polycalc.STORE, "sql namespace:", namespace)
	return s, nil
}

func (s *Store[T]) SqlTemplate(sql string) string {
	result := bytes.NewBuffer(nil)
	err := template.Must(template.New("sql").Parse(sql)).Execute(result, s)
	if err != nil {
		panic(err)
	}
	return result.String()
}

func (s *Store[T]) Put(name string, p *polycalc.Polynomial[T]) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return errgo.Mask(err)
	}
	err = s.put(tx, name, p)
	if err != nil {
		tx.Rollback()
		return errgo.Mask(err)
	}
	return errgo.Mask(tx.Commit())
}

func (s *Store[T]) put(tx *sqlx.Tx, name string, p *polycalc.Polynomial[T]) error {
	_, err := tx.Exec(s.SqlTemplate(
		"DELETE FROM {{.Namespace}}_pterm WHERE name = ?"), name)
	if err != nil {
		return err
	}
	_, err = tx.Exec(s.SqlTemplate(
		"INSERT OR IGNORE INTO {{.Namespace}}_pname (name) VALUES (?)"), name)
	if err != nil {
		return err
	}
	insert := s.SqlTemplate(`INSERT INTO {{.Namespace}}_pterm
		(name, position, coefficient, exponent) VALUES (?, ?, ?, ?)`)
	for i, t := range p.Terms() {
		_, err = tx.Exec(insert, name, i, t.Coefficient.String(), t.Exponent.String())
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[T]) Get(name string) (*polycalc.Polynomial[T], error) {
	ok, err := s.Exists(name)
	if err != nil {
		return nil, errgo.Mask(err)
	} else if !ok {
		return nil, errgo.WithCausef(nil, polycalc.ErrNotFound, "polynomial %q not found", name)
	}
	var rows []PTerm
	err = s.db.Select(&rows, s.SqlTemplate(
		"SELECT * FROM {{.Namespace}}_pterm WHERE name = ? ORDER BY position"), name)
	if err != nil {
		return nil, errgo.Mask(err)
	}
	fields := make([]string, 0, 2*len(rows))
	for _, row := range rows {
		fields = append(fields, row.Coefficient, row.Exponent)
	}
	p, err := polycalc.ParsePairs[T](fields)
	if err != nil {
		return nil, errgo.Notef(err, "corrupt polynomial %q", name)
	}
	return p, nil
}

func (s *Store[T]) Remove(name string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return errgo.Mask(err)
	}
	_, err = tx.Exec(s.SqlTemplate(
		"DELETE FROM {{.Namespace}}_pterm WHERE name = ?"), name)
	if err != nil {
		tx.Rollback()
		return errgo.Mask(err)
	}
	result, err := tx.Exec(s.SqlTemplate(
		"DELETE FROM {{.Namespace}}_pname WHERE name = ?"), name)
	if err != nil {
		tx.Rollback()
		return errgo.Mask(err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		tx.Rollback()
		return errgo.WithCausef(nil, polycalc.ErrNotFound, "polynomial %q not found", name)
	}
	return errgo.Mask(tx.Commit())
}

func (s *Store[T]) Exists(name string) (bool, error) {
	var result struct{ Count int }
	err := s.db.Get(&result, s.SqlTemplate(
		"SELECT COUNT(*) AS count FROM {{.Namespace}}_pname WHERE name = ?"), name)
	if err != nil {
		return false, errgo.Mask(err)
	}
	return result.Count > 0, nil
}

func (s *Store[T]) Names() ([]string, error) {
	var names []string
	err := s.db.Select(&names, s.SqlTemplate(
		"SELECT name FROM {{.Namespace}}_pname ORDER BY name"))
	if err != nil {
		return nil, errgo.Mask(err)
	}
	return names, nil
}

// Close closes the underlying database.
func (s *Store[T]) Close() error {
	return s.db.Close()
}
