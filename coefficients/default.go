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

// Water is the default base fluid.
var Water = BaseFluid{
	Identifier:      "Water",
	CO2Factor:       0.02,
	CH4Factor:       0.0005,
	EnergyDemandMin: 0.5,
	EnergyDemandMax: 0.8,
	WaterUseFactor:  (0.008 + 0.015) / 2,
	UnitCost:        0.001,
}

// DefaultNanoparticles are approximate values compiled from published
// life cycle inventories. Water use is the midpoint of the reported
// range. The reported toxicity scores combine human and ecotoxicity and
// are stored as HTP.
var DefaultNanoparticles = []Nanoparticle{
	{
		Identifier:      "Ag",
		CO2Factor:       0.3,
		CH4Factor:       0.01,
		EnergyDemandMin: 1.5,
		EnergyDemandMax: 1.8,
		HTP:             5000,
		WaterUseFactor:  (0.01 + 0.02) / 2,
		UnitCost:        50,
	},
	{
		Identifier:      "ZnO",
		CO2Factor:       0.1,
		CH4Factor:       0.002,
		EnergyDemandMin: 1.2,
		EnergyDemandMax: 1.5,
		HTP:             1500,
		WaterUseFactor:  (0.005 + 0.01) / 2,
		UnitCost:        20,
	},
	{
		Identifier:      "TiO2",
		CO2Factor:       7.69e-7,
		EnergyDemandMin: 0.7,
		EnergyDemandMax: 1.2,
		HTP:             1.37e-7,
		WaterUseFactor:  (0.01 + 0.015) / 2,
		UnitCost:        5,
	},
	{
		Identifier:      "SiO2",
		CO2Factor:       7.26,
		EnergyDemandMin: 5,
		EnergyDemandMax: 6,
		WaterUseFactor:  (0.02 + 0.025) / 2,
		UnitCost:        1,
	},
	{
		Identifier:      "CuO",
		CO2Factor:       1.2,
		EnergyDemandMin: 3,
		EnergyDemandMax: 4,
		HTP:             0.8,
		WaterUseFactor:  (0.015 + 0.02) / 2,
		UnitCost:        8,
	},
	{
		Identifier:      "Al2O3",
		CO2Factor:       2.5,
		CH4Factor:       0.001,
		EnergyDemandMin: 4,
		EnergyDemandMax: 4.5,
		HTP:             0.5,
		WaterUseFactor:  (0.01 + 0.02) / 2,
		UnitCost:        4,
	},
	{
		Identifier:      "TiO2-SiC",
		Description:     "Hybrid nanofluid",
		CO2Factor:       1,
		EnergyDemandMin: 1,
		EnergyDemandMax: 1.5,
		HTP:             1e-7,
		WaterUseFactor:  (0.01 + 0.015) / 2,
		UnitCost:        6.5,
	},
}

// Default returns a database holding Water and DefaultNanoparticles.
func Default() *Database {
	base := Water
	db, err := New(&base, DefaultNanoparticles...)
	if err != nil {
		panic(err)
	}
	return db
}
