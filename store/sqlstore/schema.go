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

const CreateTable_PName = `
CREATE TABLE IF NOT EXISTS {{.Namespace}}_pname (
	name TEXT NOT NULL,
	PRIMARY KEY (name))`

const CreateTable_PTerm = `
CREATE TABLE IF NOT EXISTS {{.Namespace}}_pterm (
	name TEXT NOT NULL,
	position INTEGER NOT NULL,
	coefficient TEXT NOT NULL,
	exponent TEXT NOT NULL,
	PRIMARY KEY (name, position),
	FOREIGN KEY (name) REFERENCES {{.Namespace}}_pname (name) ON DELETE CASCADE)`

var createTables = []string{
	CreateTable_PName,
	CreateTable_PTerm,
}
