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

package coefficients

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

var (
	testBase = BaseFluid{Identifier: "Water", CO2Factor: 1, CH4Factor: 0.1,
		EnergyDemandMin: 0.5, EnergyDemandMax: 0.8}
	testCu = Nanoparticle{Identifier: "Cu", CO2Factor: 10, CH4Factor: 0.5,
		EnergyDemandMin: 3, EnergyDemandMax: 4, UnitCost: 8}
	testAl = Nanoparticle{Identifier: "Al", CO2Factor: 2.5,
		EnergyDemandMin: 4, EnergyDemandMax: 4.5, UnitCost: 4}
)

func testDB(t *testing.T) *Database {
	base := testBase
	db, err := New(&base, testCu, testAl)
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestGet(t *testing.T) {
	db := testDB(t)

	np, err := db.Get("Cu")
	if err != nil {
		t.Fatal(err)
	}
	if np != testCu {
		t.Errorf("got %+v, want %+v", np, testCu)
	}

	for _, id := range []string{"Fe", "cu", "CU", " Cu", ""} {
		_, err := db.Get(id)
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("Get(%q): want NotFoundError, got %v", id, err)
			continue
		}
		if nf.Identifier != id {
			t.Errorf("Get(%q): error identifier %q", id, nf.Identifier)
		}
	}
}

func TestBaseFluid(t *testing.T) {
	db := testDB(t)
	b, err := db.BaseFluid()
	if err != nil {
		t.Fatal(err)
	}
	if b != testBase {
		t.Errorf("got %+v, want %+v", b, testBase)
	}

	var cfg *ConfigurationError
	if _, err := new(Database).BaseFluid(); !errors.As(err, &cfg) {
		t.Errorf("empty database: want ConfigurationError, got %v", err)
	}
	var nilDB *Database
	if _, err := nilDB.BaseFluid(); !errors.As(err, &cfg) {
		t.Errorf("nil database: want ConfigurationError, got %v", err)
	}
}

func TestNew_invalid(t *testing.T) {
	inverted := testCu
	inverted.EnergyDemandMin, inverted.EnergyDemandMax = 5, 2

	negative := testCu
	negative.HTP = -1

	nan := testCu
	nan.WaterUseFactor = math.NaN()

	inf := testCu
	inf.UnitCost = math.Inf(1)

	unnamed := testCu
	unnamed.Identifier = ""

	badBase := testBase
	badBase.CO2Factor = -0.02

	tests := []struct {
		name  string
		base  *BaseFluid
		nps   []Nanoparticle
		field string
	}{
		{name: "inverted range", base: &testBase, nps: []Nanoparticle{inverted}, field: "EnergyDemandMin"},
		{name: "negative", base: &testBase, nps: []Nanoparticle{testAl, negative}, field: "HTP"},
		{name: "NaN", base: &testBase, nps: []Nanoparticle{nan}, field: "WaterUseFactor"},
		{name: "Inf", base: &testBase, nps: []Nanoparticle{inf}, field: "UnitCost"},
		{name: "no identifier", base: &testBase, nps: []Nanoparticle{unnamed}},
		{name: "bad base", base: &badBase, nps: []Nanoparticle{testCu}, field: "CO2Factor"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.base, test.nps...)
			var v *ValidationError
			if !errors.As(err, &v) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if v.Field != test.field {
				t.Errorf("field: got %q, want %q", v.Field, test.field)
			}
		})
	}
}

func TestNew_duplicate(t *testing.T) {
	_, err := New(&testBase, testCu, testAl, testCu)
	var d *DuplicateKeyError
	if !errors.As(err, &d) {
		t.Fatalf("want DuplicateKeyError, got %v", err)
	}
	if d.Identifier != "Cu" {
		t.Errorf("identifier: got %q", d.Identifier)
	}

	// Identifiers are case sensitive.
	cu := testCu
	cu.Identifier = "cu"
	if _, err := New(&testBase, testCu, cu); err != nil {
		t.Errorf("Cu and cu should both be accepted: %v", err)
	}
}

func TestNew_baseFluidIdentifier(t *testing.T) {
	water := Nanoparticle{Identifier: "Water", EnergyDemandMin: 1, EnergyDemandMax: 1}
	_, err := New(&testBase, testCu, water)
	var d *DuplicateKeyError
	if !errors.As(err, &d) {
		t.Fatalf("want DuplicateKeyError, got %v", err)
	}
	if d.Identifier != "Water" {
		t.Errorf("identifier: got %q", d.Identifier)
	}

	db := testDB(t)
	if _, err := db.With(water); !errors.As(err, &d) {
		t.Errorf("With: want DuplicateKeyError, got %v", err)
	}
}

func TestNilDatabase(t *testing.T) {
	var db *Database
	var nf *NotFoundError
	if _, err := db.Get("Cu"); !errors.As(err, &nf) {
		t.Errorf("Get: want NotFoundError, got %v", err)
	}
	var cfg *ConfigurationError
	if _, err := db.BaseFluid(); !errors.As(err, &cfg) {
		t.Errorf("BaseFluid: want ConfigurationError, got %v", err)
	}
	if db.Len() != 0 || len(db.Identifiers()) != 0 {
		t.Errorf("nil database should be empty")
	}
}

func TestNew_noBaseFluid(t *testing.T) {
	_, err := New(nil, testCu)
	var cfg *ConfigurationError
	if !errors.As(err, &cfg) {
		t.Fatalf("want ConfigurationError, got %v", err)
	}
}

func TestNew_copiesInput(t *testing.T) {
	base := testBase
	nps := []Nanoparticle{testCu}
	db, err := New(&base, nps...)
	if err != nil {
		t.Fatal(err)
	}
	base.CO2Factor = 99
	nps[0].CO2Factor = 99

	b, _ := db.BaseFluid()
	if b.CO2Factor != testBase.CO2Factor {
		t.Errorf("base fluid changed after construction: %g", b.CO2Factor)
	}
	np, _ := db.Get("Cu")
	if np.CO2Factor != testCu.CO2Factor {
		t.Errorf("nanoparticle changed after construction: %g", np.CO2Factor)
	}
}

func TestWith(t *testing.T) {
	db := testDB(t)
	fe := Nanoparticle{Identifier: "Fe", CO2Factor: 1.5, EnergyDemandMin: 1, EnergyDemandMax: 1}

	db2, err := db.With(fe)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"Al", "Cu", "Fe"}; !reflect.DeepEqual(db2.Identifiers(), want) {
		t.Errorf("new database: got %v, want %v", db2.Identifiers(), want)
	}
	if want := []string{"Al", "Cu"}; !reflect.DeepEqual(db.Identifiers(), want) {
		t.Errorf("receiver changed: got %v, want %v", db.Identifiers(), want)
	}

	var d *DuplicateKeyError
	if _, err := db.With(testAl); !errors.As(err, &d) {
		t.Errorf("want DuplicateKeyError, got %v", err)
	}
	bad := fe
	bad.CH4Factor = -1
	var v *ValidationError
	if _, err := db.With(bad); !errors.As(err, &v) {
		t.Errorf("want ValidationError, got %v", err)
	}
}

func TestDefault(t *testing.T) {
	db := Default()
	want := []string{"Ag", "Al2O3", "CuO", "SiO2", "TiO2", "TiO2-SiC", "ZnO"}
	if got := db.Identifiers(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	b, err := db.BaseFluid()
	if err != nil {
		t.Fatal(err)
	}
	if b.Identifier != "Water" {
		t.Errorf("base fluid: %s", b.Identifier)
	}
	np, err := db.Get("TiO2-SiC")
	if err != nil {
		t.Fatal(err)
	}
	if np.WaterUseFactor != 0.0125 {
		t.Errorf("TiO2-SiC water use: got %g, want 0.0125", np.WaterUseFactor)
	}
}
