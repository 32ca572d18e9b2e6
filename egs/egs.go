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

// Package egs calculates a life cycle baseline for electricity from an
// enhanced geothermal system (EGS), for comparison with nanofluid
// impacts.
package egs

import (
	"fmt"

	"github.com/ctessum/unit"
)

const hoursPerYear = 24 * 365

// Config holds the parameters of an EGS plant.
type Config struct {
	DepthKm       float64 // well depth [km]
	LifetimeYears float64 // plant lifetime [years]

	// DrillingEnergy is the total energy used for drilling [kWh].
	DrillingEnergy float64

	// ConversionEfficiency is the fraction of thermal energy converted
	// to electricity.
	ConversionEfficiency float64

	// ThermalPower is the thermal output of the plant [kW].
	ThermalPower float64

	// GHGMin and GHGMax bound the life cycle greenhouse gas
	// emissions [g CO2-eq / kWh electricity].
	GHGMin, GHGMax float64
}

// Swiss returns the configuration of a Swiss EGS plant with 3.5 km deep
// wells and a 50-year lifetime.
func Swiss() Config {
	return Config{
		DepthKm:              3.5,
		LifetimeYears:        50,
		DrillingEnergy:       10986111.11,
		ConversionEfficiency: 0.15,
		ThermalPower:         3600,
		GHGMin:               30,
		GHGMax:               40,
	}
}

// Validate checks that the configuration is physically meaningful.
func (c Config) Validate() error {
	switch {
	case !(c.ConversionEfficiency > 0 && c.ConversionEfficiency <= 1):
		return fmt.Errorf("egs: conversion efficiency %g must be in (0, 1]", c.ConversionEfficiency)
	case !(c.LifetimeYears > 0):
		return fmt.Errorf("egs: lifetime %g years must be positive", c.LifetimeYears)
	case !(c.ThermalPower > 0):
		return fmt.Errorf("egs: thermal power %g kW must be positive", c.ThermalPower)
	case c.DrillingEnergy < 0 || c.DepthKm < 0:
		return fmt.Errorf("egs: energy use and depth must not be negative")
	case c.GHGMin < 0 || c.GHGMin > c.GHGMax:
		return fmt.Errorf("egs: invalid GHG emission range [%g, %g]", c.GHGMin, c.GHGMax)
	}
	return nil
}

// Baseline holds EGS impacts per kWh of electricity generated.
type Baseline struct {
	// TotalElectricity is the electricity generated over the plant
	// lifetime [kWh].
	TotalElectricity float64

	// DrillingIntensity is the drilling energy per unit of electricity
	// generated [kWh / kWh].
	DrillingIntensity float64

	// CarbonFootprint is the average greenhouse gas emissions
	// [kg CO2-eq / kWh].
	CarbonFootprint float64

	// Toxicity, WaterFootprint and Cost have no data and are zero.
	Toxicity, WaterFootprint, Cost float64
}

// Baseline calculates the baseline impacts for c.
func (c Config) Baseline() (*Baseline, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	total := c.ConversionEfficiency * c.ThermalPower * hoursPerYear * c.LifetimeYears
	return &Baseline{
		TotalElectricity:  total,
		DrillingIntensity: c.DrillingEnergy / total,
		CarbonFootprint:   (c.GHGMin + c.GHGMax) / 2 / 1000,
	}, nil
}

// Values returns the baseline impacts using the names that
// nanolca.Impacts.Values uses for the same quantities, with cumulative
// energy demand under "CED".
func (b *Baseline) Values() map[string]float64 {
	return map[string]float64{
		"CO2Eq":          b.CarbonFootprint,
		"CED":            b.DrillingIntensity,
		"Toxicity":       b.Toxicity,
		"WaterFootprint": b.WaterFootprint,
		"Cost":           b.Cost,
	}
}

// TotalEnergy returns the lifetime electricity output as an energy
// quantity [J].
func (b *Baseline) TotalEnergy() *unit.Unit {
	const joulesPerKWh = 3.6e6
	return unit.New(b.TotalElectricity*joulesPerKWh, unit.Joule)
}
