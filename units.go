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

import "github.com/ctessum/unit"

var (
	dollarsDim = unit.NewDimension("$")
	ctuDim     = unit.NewDimension("CTU") // comparative toxic units
)

// Dimensions of the impact quantities.
var (
	// PerKilogram is for mass ratios [kg / kg].
	PerKilogram = unit.Dimless

	// JoulePerKilogram is specific energy [m2 s-2].
	JoulePerKilogram = unit.Dimensions{unit.LengthDim: 2, unit.TimeDim: -2}

	// CTUPerKilogram is toxicity potential per unit mass.
	CTUPerKilogram = unit.Dimensions{ctuDim: 1, unit.MassDim: -1}

	// Meter3PerKilogram is specific volume.
	Meter3PerKilogram = unit.Dimensions{unit.LengthDim: 3, unit.MassDim: -1}

	// DollarsPerKilogram is price per unit mass.
	DollarsPerKilogram = unit.Dimensions{dollarsDim: 1, unit.MassDim: -1}
)

// Names of the scalar impact values, as used by Values, Quantities and
// Outputter expressions.
const (
	MassFractionName   = "MassFraction"
	CO2Name            = "CO2"
	CH4Name            = "CH4"
	CO2EqName          = "CO2Eq"
	CEDMinName         = "CEDMin"
	CEDMaxName         = "CEDMax"
	HTPName            = "HTP"
	ETPName            = "ETP"
	ToxicityName       = "Toxicity"
	WaterFootprintName = "WaterFootprint"
	CostName           = "Cost"
)

// ValueNames lists the keys returned by Values, in display order.
var ValueNames = []string{MassFractionName, CO2Name, CH4Name, CO2EqName,
	CEDMinName, CEDMaxName, HTPName, ETPName, ToxicityName,
	WaterFootprintName, CostName}

// Values returns the impacts as named scalars in their native
// units: kg/kg, MJ/kg, CTU/kg, m³/kg and $/kg.
func (im *Impacts) Values(gwp GWP) map[string]float64 {
	return map[string]float64{
		MassFractionName:   im.MassFraction,
		CO2Name:            im.CarbonFootprint.CO2,
		CH4Name:            im.CarbonFootprint.CH4,
		CO2EqName:          im.CarbonFootprint.CO2Eq(gwp),
		CEDMinName:         im.EnergyDemand.Min,
		CEDMaxName:         im.EnergyDemand.Max,
		HTPName:            im.Toxicity.HTP,
		ETPName:            im.Toxicity.ETP,
		ToxicityName:       im.Toxicity.Total(),
		WaterFootprintName: im.WaterFootprint,
		CostName:           im.Cost,
	}
}

// Quantities returns the impacts as SI quantities with dimensions.
// Energy demand is converted from MJ to J.
func (im *Impacts) Quantities(gwp GWP) map[string]*unit.Unit {
	const mega = 1.0e6
	v := im.Values(gwp)
	return map[string]*unit.Unit{
		MassFractionName:   unit.New(v[MassFractionName], PerKilogram),
		CO2Name:            unit.New(v[CO2Name], PerKilogram),
		CH4Name:            unit.New(v[CH4Name], PerKilogram),
		CO2EqName:          unit.New(v[CO2EqName], PerKilogram),
		CEDMinName:         unit.New(v[CEDMinName]*mega, JoulePerKilogram),
		CEDMaxName:         unit.New(v[CEDMaxName]*mega, JoulePerKilogram),
		HTPName:            unit.New(v[HTPName], CTUPerKilogram),
		ETPName:            unit.New(v[ETPName], CTUPerKilogram),
		ToxicityName:       unit.New(v[ToxicityName], CTUPerKilogram),
		WaterFootprintName: unit.New(v[WaterFootprintName], Meter3PerKilogram),
		CostName:           unit.New(v[CostName], DollarsPerKilogram),
	}
}
