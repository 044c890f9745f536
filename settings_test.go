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
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	gc "gopkg.in/check.v1"
)

type SettingsSuite struct{}

var _ = gc.Suite(&SettingsSuite{})

type settingsValues struct {
	Numeric      string
	LogName      string
	ZeroPolicy   ZeroPolicy
	MaxDivSteps  int
	DivTrace     bool
	StoreBackend string
}

func valuesOf(s *Settings) settingsValues {
	return settingsValues{
		Numeric:      s.Numeric(),
		LogName:      s.LogName(),
		ZeroPolicy:   s.ZeroPolicy(),
		MaxDivSteps:  s.MaxDivSteps(),
		DivTrace:     s.DivTrace(),
		StoreBackend: s.StoreBackend(),
	}
}

var defaultValues = settingsValues{
	Numeric:      "float",
	LogName:      "polycalc",
	ZeroPolicy:   DropZeros,
	MaxDivSteps:  DefaultMaxDivSteps,
	StoreBackend: "mem",
}

func (s *SettingsSuite) TestParse(c *gc.C) {
	testCases := []struct {
		desc   string
		toml   string
		values settingsValues
		err    string
	}{{
		"empty string",
		``,
		defaultValues,
		"",
	}, {
		"override some defaults",
		`
[polycalc]
numeric="rat"
logname="calc"

[polycalc.simplify]
keepZeros=true

[polycalc.divide]
maxSteps=50
trace=true
`,
		settingsValues{
			Numeric:      "rat",
			LogName:      "calc",
			ZeroPolicy:   KeepZeros,
			MaxDivSteps:  50,
			DivTrace:     true,
			StoreBackend: "mem",
		},
		"",
	}, {
		"values of the wrong type fall back to defaults",
		`
[polycalc]
numeric=3

[polycalc.divide]
maxSteps="lots"
trace="yes"
`,
		defaultValues,
		"",
	}, {
		"strings holding values are converted",
		`
[polycalc.divide]
maxSteps="20"
trace="true"
`,
		settingsValues{
			Numeric:      "float",
			LogName:      "polycalc",
			ZeroPolicy:   DropZeros,
			MaxDivSteps:  20,
			DivTrace:     true,
			StoreBackend: "mem",
		},
		"",
	}, {
		"bad toml",
		`[polycalc`,
		settingsValues{},
		".*",
	}}
	for i, testCase := range testCases {
		c.Logf("test#%d: %s", i, testCase.desc)
		tree, err := toml.Load(testCase.toml)
		if err != nil {
			c.Check(err, gc.ErrorMatches, testCase.err)
			c.Check(testCase.err, gc.Not(gc.Equals), "")
		} else {
			c.Check(valuesOf(NewSettings(tree)), gc.DeepEquals, testCase.values)
		}
	}
}

func (s *SettingsSuite) TestLoadSettings(c *gc.C) {
	path := filepath.Join(c.MkDir(), "polycalc.toml")
	err := os.WriteFile(path, []byte("[polycalc.store]\nbackend=\"diskv\"\n"), 0644)
	c.Assert(err, gc.IsNil)
	settings, err := LoadSettings(path)
	c.Assert(err, gc.IsNil)
	c.Assert(settings.StoreBackend(), gc.Equals, "diskv")

	_, err = LoadSettings(filepath.Join(c.MkDir(), "missing.toml"))
	c.Assert(err, gc.ErrorMatches, `cannot load settings from ".*missing.toml": .*`)
}

func (s *SettingsSuite) TestApplyEnv(c *gc.C) {
	settings := DefaultSettings()
	err := settings.ApplyEnvFrom(map[string]string{
		"POLYCALC_NUMERIC":          "zp97",
		"POLYCALC_STORE_BACKEND":    "sql",
		"POLYCALC_DIVIDE_MAX_STEPS": "7",
	})
	c.Assert(err, gc.IsNil)
	c.Assert(settings.Numeric(), gc.Equals, "zp97")
	c.Assert(settings.StoreBackend(), gc.Equals, "sql")
	c.Assert(settings.MaxDivSteps(), gc.Equals, 7)

	settings = DefaultSettings()
	err = settings.ApplyEnvFrom(map[string]string{})
	c.Assert(err, gc.IsNil)
	c.Assert(valuesOf(settings), gc.DeepEquals, defaultValues)

	err = settings.ApplyEnvFrom(map[string]string{"POLYCALC_DIVIDE_MAX_STEPS": "many"})
	c.Assert(err, gc.ErrorMatches, "invalid environment settings: .*")
}

// Reading a setting leaves the tree as it was loaded.
func (s *SettingsSuite) TestGettersDoNotWrite(c *gc.C) {
	tree, err := toml.Load("[polycalc.divide]\nmaxSteps=\"20\"\n")
	c.Assert(err, gc.IsNil)
	settings := NewSettings(tree)
	c.Assert(settings.MaxDivSteps(), gc.Equals, 20)
	c.Assert(settings.Get("polycalc.divide.maxSteps"), gc.Equals, "20")
	c.Assert(settings.Has("polycalc.divide.trace"), gc.Equals, false)
	c.Assert(settings.DivTrace(), gc.Equals, false)
	c.Assert(settings.Has("polycalc.divide.trace"), gc.Equals, false)
}
