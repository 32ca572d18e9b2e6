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

import "math"

// Record holds the coefficients for one material, per unit mass of
// that material.
type Record struct {
	// Identifier is the name or chemical symbol of the material, e.g. "CuO".
	Identifier string `toml:"Identifier"`

	// Description is free text, e.g. "Hybrid nanofluid".
	Description string `toml:"Description"`

	// CO2Factor and CH4Factor are emissions [kg gas / kg].
	CO2Factor float64 `toml:"CO2Factor"`
	CH4Factor float64 `toml:"CH4Factor"`

	// EnergyDemandMin and EnergyDemandMax bound the cumulative
	// energy demand [MJ / kg].
	EnergyDemandMin float64 `toml:"EnergyDemandMin"`
	EnergyDemandMax float64 `toml:"EnergyDemandMax"`

	// HTP and ETP are the human toxicity and ecotoxicity
	// potentials [CTU / kg].
	HTP float64 `toml:"HTP"`
	ETP float64 `toml:"ETP"`

	// WaterUseFactor is the water consumed in production [m³ / kg].
	WaterUseFactor float64 `toml:"WaterUseFactor"`

	// UnitCost is the price [$ / kg].
	UnitCost float64 `toml:"UnitCost"`
}

// Nanoparticle is a Record describing a nanoparticle.
type Nanoparticle Record

// BaseFluid is a Record describing the host fluid that the
// nanoparticles are suspended in.
type BaseFluid Record

// Field selects one coefficient from a Record.
type Field struct {
	Name string
	Get  func(*Record) float64
	Set  func(*Record, float64)
}

// Fields are the numeric coefficients of a Record, in declaration order.
var (
	CO2Factor = Field{"CO2Factor",
		func(r *Record) float64 { return r.CO2Factor },
		func(r *Record, v float64) { r.CO2Factor = v }}
	CH4Factor = Field{"CH4Factor",
		func(r *Record) float64 { return r.CH4Factor },
		func(r *Record, v float64) { r.CH4Factor = v }}
	EnergyDemandMin = Field{"EnergyDemandMin",
		func(r *Record) float64 { return r.EnergyDemandMin },
		func(r *Record, v float64) { r.EnergyDemandMin = v }}
	EnergyDemandMax = Field{"EnergyDemandMax",
		func(r *Record) float64 { return r.EnergyDemandMax },
		func(r *Record, v float64) { r.EnergyDemandMax = v }}
	HTP = Field{"HTP",
		func(r *Record) float64 { return r.HTP },
		func(r *Record, v float64) { r.HTP = v }}
	ETP = Field{"ETP",
		func(r *Record) float64 { return r.ETP },
		func(r *Record, v float64) { r.ETP = v }}
	WaterUseFactor = Field{"WaterUseFactor",
		func(r *Record) float64 { return r.WaterUseFactor },
		func(r *Record, v float64) { r.WaterUseFactor = v }}
	UnitCost = Field{"UnitCost",
		func(r *Record) float64 { return r.UnitCost },
		func(r *Record, v float64) { r.UnitCost = v }}

	Fields = []Field{CO2Factor, CH4Factor, EnergyDemandMin, EnergyDemandMax,
		HTP, ETP, WaterUseFactor, UnitCost}
)

// validate checks the field invariants of r. kind is used in error
// messages.
func (r *Record) validate(kind string) error {
	if r.Identifier == "" {
		return &ValidationError{Kind: kind, Reason: "identifier is empty"}
	}
	for _, f := range Fields {
		v := f.Get(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Kind: kind, Identifier: r.Identifier,
				Field: f.Name, Value: v, Reason: "value is not finite"}
		}
		if v < 0 {
			return &ValidationError{Kind: kind, Identifier: r.Identifier,
				Field: f.Name, Value: v, Reason: "value is negative"}
		}
	}
	if r.EnergyDemandMin > r.EnergyDemandMax {
		return &ValidationError{Kind: kind, Identifier: r.Identifier,
			Field: EnergyDemandMin.Name, Value: r.EnergyDemandMin,
			Reason: "greater than EnergyDemandMax"}
	}
	return nil
}
