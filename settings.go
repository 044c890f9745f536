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
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml"
	"gopkg.in/errgo.v1"
)

type Settings struct {
	*toml.Tree
}

func (s *Settings) GetString(key string, defaultValue string) string {
	if s, is := s.GetDefault(key, defaultValue).(string); is {
		return s
	}
	return defaultValue
}

func (s *Settings) GetInt(key string, defaultValue int) int {
	switch v := s.GetDefault(key, defaultValue).(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		i, err := strconv.Atoi(fmt.Sprintf("%v", v))
		if err != nil {
			return defaultValue
		}
		return i
	}
}

func (s *Settings) GetBool(key string, defaultValue bool) bool {
	switch v := s.GetDefault(key, defaultValue).(type) {
	case bool:
		return v
	default:
		b, err := strconv.ParseBool(fmt.Sprintf("%v", v))
		if err != nil {
			return defaultValue
		}
		return b
	}
}

// Numeric names the number type polynomials are computed in: float, int,
// rat, decimal, zp97, zp65537 or sks.
func (s *Settings) Numeric() string {
	return s.GetString("polycalc.numeric", "float")
}

func (s *Settings) LogName() string {
	return s.GetString("polycalc.logname", "polycalc")
}

func (s *Settings) ZeroPolicy() ZeroPolicy {
	if s.GetBool("polycalc.simplify.keepZeros", false) {
		return KeepZeros
	}
	return DropZeros
}

func (s *Settings) MaxDivSteps() int {
	return s.GetInt("polycalc.divide.maxSteps", DefaultMaxDivSteps)
}

func (s *Settings) DivTrace() bool {
	return s.GetBool("polycalc.divide.trace", false)
}

// StoreBackend names the Store implementation: mem, diskv or sql.
func (s *Settings) StoreBackend() string {
	return s.GetString("polycalc.store.backend", "mem")
}

func DefaultSettings() *Settings {
	tree, err := toml.Load("")
	if err != nil {
		panic(err) // unlikely
	}
	return NewSettings(tree)
}

func NewSettings(tree *toml.Tree) *Settings {
	return &Settings{tree}
}

func LoadSettings(path string) (*Settings, error) {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, errgo.Notef(err, "cannot load settings from %q", path)
	}
	return NewSettings(tree), nil
}

// envSettings are the settings that may be overridden from the environment.
type envSettings struct {
	Numeric      string `env:"POLYCALC_NUMERIC"`
	StoreBackend string `env:"POLYCALC_STORE_BACKEND"`
	MaxDivSteps  int    `env:"POLYCALC_DIVIDE_MAX_STEPS"`
}

// ApplyEnv overrides settings with the POLYCALC_* environment variables
// that are set.
func (s *Settings) ApplyEnv() error {
	return s.applyEnv(env.Options{})
}

// ApplyEnvFrom is like ApplyEnv, reading variables from environ instead of
// the process environment.
func (s *Settings) ApplyEnvFrom(environ map[string]string) error {
	return s.applyEnv(env.Options{Environment: environ})
}

func (s *Settings) applyEnv(opts env.Options) error {
	var es envSettings
	if err := env.ParseWithOptions(&es, opts); err != nil {
		return errgo.Notef(err, "invalid environment settings")
	}
	if es.Numeric != "" {
		s.Set("polycalc.numeric", es.Numeric)
	}
	if es.StoreBackend != "" {
		s.Set("polycalc.store.backend", es.StoreBackend)
	}
	if es.MaxDivSteps > 0 {
		s.Set("polycalc.divide.maxSteps", int64(es.MaxDivSteps))
	}
	return nil
}
