/*
Copyright © 2026 the nanolca authors.
This file is part of nanolca.

nanolca is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

nanolca is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with nanolca.  If not, see <http://www.gnu.org/licenses/>.
*/

package nanolcautil

import (
	"os"
	"testing"

	"github.com/kr/pretty"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/nanolca"
)

func TestGetStringMapString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want map[string]string
	}{
		{"json", `{"A":"CO2 * 2"}`, map[string]string{"A": "CO2 * 2"}},
		{"empty", "", map[string]string{}},
		{"map", map[string]interface{}{"a": "Cost"}, map[string]string{"a": "Cost"}},
		{"string map", map[string]string{"b": "HTP"}, map[string]string{"b": "HTP"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := viper.New()
			cfg.Set("OutputVariables", test.in)
			got, err := getStringMapString("OutputVariables", cfg)
			if err != nil {
				t.Fatal(err)
			}
			if diff := pretty.Diff(got, test.want); len(diff) > 0 {
				t.Errorf("(-have, +want): %v", diff)
			}
		})
	}
	cfg := viper.New()
	cfg.Set("OutputVariables", "{not json")
	if _, err := getStringMapString("OutputVariables", cfg); err == nil {
		t.Error("bad json: want error")
	}
	cfg.Set("OutputVariables", 12)
	if _, err := getStringMapString("OutputVariables", cfg); err == nil {
		t.Error("bad type: want error")
	}
}

func TestLoadDatabase(t *testing.T) {
	db, err := loadDatabase("")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Get("CuO"); err != nil {
		t.Errorf("built-in database: %v", err)
	}

	os.Setenv("NANOLCA_TEST_DATA", "../coefficients/testdata")
	defer os.Unsetenv("NANOLCA_TEST_DATA")
	db, err = loadDatabase("${NANOLCA_TEST_DATA}/cu_al.toml")
	if err != nil {
		t.Fatal(err)
	}
	if db.Len() != 2 {
		t.Errorf("got %d nanoparticles, want 2", db.Len())
	}

	if _, err := loadDatabase("../coefficients/testdata/typo.toml"); err == nil {
		t.Error("undecoded key: want error")
	}
}

func TestGWPConfig(t *testing.T) {
	cfg := viper.New()
	cfg.Set("GWP.CO2", 1.0)
	cfg.Set("GWP.CH4", 25.0)
	g, err := gwpConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if g != (nanolca.GWP{CO2: 1, CH4: 25}) {
		t.Errorf("got %+v", g)
	}
	cfg.Set("GWP.CH4", -1.0)
	if _, err := gwpConfig(cfg); err == nil {
		t.Error("negative GWP: want error")
	}
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"text", "json"} {
		if _, err := checkFormat(f); err != nil {
			t.Errorf("%s: %v", f, err)
		}
	}
	if _, err := checkFormat("csv"); err == nil {
		t.Error("csv: want error")
	}
}
