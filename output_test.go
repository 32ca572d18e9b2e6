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

package nanolca

import (
	"math"
	"reflect"
	"testing"

	"github.com/Knetic/govaluate"
)

func TestOutputter(t *testing.T) {
	o, err := NewOutputter(map[string]string{
		"CO2Total":    "CO2 + 28 * CH4",
		"CEDRange":    "CEDMax - CEDMin",
		"Biggest":     "max(CO2, CEDMax, Cost)",
		"Smallest":    "min(CO2, CEDMin)",
		"CostPerCO2":  "Cost / CO2Eq",
		"Exponential": "exp(log(WaterFootprint))",
		"Doubled":     "double(Cost)",
	}, map[string]govaluate.ExpressionFunction{
		"double": func(arg ...interface{}) (interface{}, error) {
			return 2 * arg[0].(float64), nil
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Biggest", "CEDRange", "CO2Total", "CostPerCO2", "Doubled", "Exponential", "Smallest"}
	if !reflect.DeepEqual(o.Names(), want) {
		t.Errorf("names: got %v, want %v", o.Names(), want)
	}

	im := &Impacts{
		CarbonFootprint: CarbonFootprint{CO2: 2.8, CH4: 0.18},
		EnergyDemand:    EnergyDemand{Min: 1, Max: 1.5},
		WaterFootprint:  0.0125,
		Cost:            1.6,
	}
	r, err := o.Evaluate(im, DefaultGWP)
	if err != nil {
		t.Fatal(err)
	}
	co2eq := im.CarbonFootprint.CO2Eq(DefaultGWP)
	expected := map[string]float64{
		"CO2Total":    co2eq,
		"CEDRange":    0.5,
		"Biggest":     2.8,
		"Smallest":    1,
		"CostPerCO2":  1.6 / co2eq,
		"Exponential": 0.0125,
		"Doubled":     3.2,
	}
	for k, v := range expected {
		if different(r[k], v, 1e-12) {
			t.Errorf("%s: got %g, want %g", k, r[k], v)
		}
	}
}

func TestOutputter_invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown variable": {"X": "CO2 + Nickel"},
		"shadows impact":   {"Cost": "Cost * 2"},
		"syntax":           {"X": "CO2 +* 2"},
		"unknown function": {"X": "sqrt(CO2)"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewOutputter(vars, nil); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestOutputter_notNumber(t *testing.T) {
	o, err := NewOutputter(map[string]string{"Cheap": "Cost < 2"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.Evaluate(&Impacts{Cost: 1}, DefaultGWP); err == nil {
		t.Error("want error for boolean result")
	}
}

func TestOutputter_nonNumericArgument(t *testing.T) {
	tests := map[string]string{
		"exp": "exp(Cost > 1)",
		"log": "log(Cost > 1)",
		"max": "max(CO2, Cost < 1)",
		"min": "min(Cost < 1, CO2)",
	}
	for name, expr := range tests {
		t.Run(name, func(t *testing.T) {
			o, err := NewOutputter(map[string]string{"X": expr}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := o.Evaluate(&Impacts{Cost: 2}, DefaultGWP); err == nil {
				t.Errorf("%s: want error", expr)
			}
		})
	}
}

func TestOutputter_nan(t *testing.T) {
	o, err := NewOutputter(map[string]string{"Ratio": "Cost / CO2"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r, err := o.Evaluate(&Impacts{}, DefaultGWP)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(r["Ratio"]) {
		t.Errorf("0/0: got %g", r["Ratio"])
	}
}
