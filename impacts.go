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

import "github.com/spatialmodel/nanolca/coefficients"

// CarbonFootprint holds greenhouse gas emissions per unit mass of
// nanofluid [kg gas / kg].
type CarbonFootprint struct {
	CO2, CH4 float64
}

// GWP holds global warming potentials relative to CO2.
type GWP struct {
	CO2, CH4 float64
}

// DefaultGWP holds the IPCC AR5 100-year global warming potentials.
var DefaultGWP = GWP{CO2: 1, CH4: 28}

// CO2Eq returns the carbon footprint in CO2 equivalents [kg CO2-eq / kg].
func (cf CarbonFootprint) CO2Eq(gwp GWP) float64 {
	return cf.CO2*gwp.CO2 + cf.CH4*gwp.CH4
}

// EnergyDemand is the range of cumulative energy demand per unit
// mass of nanofluid [MJ / kg]. Min <= Max.
type EnergyDemand struct {
	Min, Max float64
}

// Mid returns the midpoint of the range.
func (e EnergyDemand) Mid() float64 { return (e.Min + e.Max) / 2 }

// Toxicity holds human toxicity and ecotoxicity potentials per unit
// mass of nanofluid [CTU / kg].
type Toxicity struct {
	HTP, ETP float64
}

// Total returns HTP + ETP.
func (t Toxicity) Total() float64 { return t.HTP + t.ETP }

// CalcCF calculates the carbon footprint of a nanofluid with the given
// nanoparticle mass fraction.
func CalcCF(np coefficients.Nanoparticle, base coefficients.BaseFluid, massFraction float64) (CarbonFootprint, error) {
	if err := checkMassFraction(massFraction); err != nil {
		return CarbonFootprint{}, err
	}
	return CarbonFootprint{
		CO2: blend(&np, &base, massFraction, coefficients.CO2Factor),
		CH4: blend(&np, &base, massFraction, coefficients.CH4Factor),
	}, nil
}

// CalcCED calculates the cumulative energy demand range of a nanofluid
// with the given nanoparticle mass fraction.
func CalcCED(np coefficients.Nanoparticle, base coefficients.BaseFluid, massFraction float64) (EnergyDemand, error) {
	if err := checkMassFraction(massFraction); err != nil {
		return EnergyDemand{}, err
	}
	return EnergyDemand{
		Min: blend(&np, &base, massFraction, coefficients.EnergyDemandMin),
		Max: blend(&np, &base, massFraction, coefficients.EnergyDemandMax),
	}, nil
}

// CalcToxicity calculates the toxicity potentials of a nanofluid
// with the given nanoparticle mass fraction.
func CalcToxicity(np coefficients.Nanoparticle, base coefficients.BaseFluid, massFraction float64) (Toxicity, error) {
	if err := checkMassFraction(massFraction); err != nil {
		return Toxicity{}, err
	}
	return Toxicity{
		HTP: blend(&np, &base, massFraction, coefficients.HTP),
		ETP: blend(&np, &base, massFraction, coefficients.ETP),
	}, nil
}

// CalcWF calculates the water footprint of a nanofluid with the given
// nanoparticle mass fraction [m³ / kg].
func CalcWF(np coefficients.Nanoparticle, base coefficients.BaseFluid, massFraction float64) (float64, error) {
	if err := checkMassFraction(massFraction); err != nil {
		return 0, err
	}
	return blend(&np, &base, massFraction, coefficients.WaterUseFactor), nil
}

// CalcCost calculates the cost of a nanofluid with the given
// nanoparticle mass fraction [$ / kg].
func CalcCost(np coefficients.Nanoparticle, base coefficients.BaseFluid, massFraction float64) (float64, error) {
	if err := checkMassFraction(massFraction); err != nil {
		return 0, err
	}
	return blend(&np, &base, massFraction, coefficients.UnitCost), nil
}
