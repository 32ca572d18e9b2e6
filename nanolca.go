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

// Package nanolca estimates life cycle impacts of water-based nanofluids:
// carbon footprint, cumulative energy demand, toxicity, water footprint
// and cost. Each impact is a mass-fraction-weighted blend of nanoparticle
// and base fluid coefficients from a coefficients.Database.
package nanolca

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/nanolca/coefficients"
	"gonum.org/v1/gonum/floats"
)

// Version gives the version number.
const Version = "0.1.0"

// Impacts holds the life cycle impacts of one unit mass of nanofluid.
type Impacts struct {
	Nanoparticle string
	MassFraction float64

	CarbonFootprint CarbonFootprint
	EnergyDemand    EnergyDemand
	Toxicity        Toxicity

	// WaterFootprint is in m³ / kg.
	WaterFootprint float64

	// Cost is in $ / kg.
	Cost float64
}

// Engine calculates impacts for nanoparticles in a database.
// It is safe for concurrent use.
type Engine struct {
	DB  *coefficients.Database
	Log logrus.FieldLogger
}

// NewEngine returns an engine using db.
func NewEngine(db *coefficients.Database) *Engine {
	return &Engine{
		DB:  db,
		Log: logrus.StandardLogger(),
	}
}

// Evaluate calculates all impacts for the nanoparticle with the given
// identifier at the given mass fraction. No partial result is returned
// on error.
func (e *Engine) Evaluate(identifier string, massFraction float64) (*Impacts, error) {
	np, err := e.DB.Get(identifier)
	if err != nil {
		return nil, err
	}
	base, err := e.DB.BaseFluid()
	if err != nil {
		return nil, err
	}
	im, err := evaluate(np, base, massFraction)
	if err != nil {
		return nil, err
	}
	e.Log.WithFields(logrus.Fields{
		"nanoparticle": identifier,
		"massfraction": massFraction,
	}).Debug("nanolca: evaluated impacts")
	return im, nil
}

func evaluate(np coefficients.Nanoparticle, base coefficients.BaseFluid, mf float64) (*Impacts, error) {
	im := &Impacts{Nanoparticle: np.Identifier, MassFraction: mf}
	var err error
	if im.CarbonFootprint, err = CalcCF(np, base, mf); err != nil {
		return nil, err
	}
	if im.EnergyDemand, err = CalcCED(np, base, mf); err != nil {
		return nil, err
	}
	if im.Toxicity, err = CalcToxicity(np, base, mf); err != nil {
		return nil, err
	}
	if im.WaterFootprint, err = CalcWF(np, base, mf); err != nil {
		return nil, err
	}
	if im.Cost, err = CalcCost(np, base, mf); err != nil {
		return nil, err
	}
	return im, nil
}

// Sweep evaluates the nanoparticle at n evenly spaced mass fractions
// from 0 to 1 inclusive. n must be at least 2.
func (e *Engine) Sweep(identifier string, n int) ([]*Impacts, error) {
	if n < 2 {
		return nil, fmt.Errorf("nanolca: sweep needs at least 2 steps but got %d", n)
	}
	np, err := e.DB.Get(identifier)
	if err != nil {
		return nil, err
	}
	base, err := e.DB.BaseFluid()
	if err != nil {
		return nil, err
	}
	fractions := floats.Span(make([]float64, n), 0, 1)
	fractions[n-1] = 1 // Span can round the last step.

	o := make([]*Impacts, n)
	for i, mf := range fractions {
		if o[i], err = evaluate(np, base, mf); err != nil {
			return nil, err
		}
	}
	e.Log.WithFields(logrus.Fields{
		"nanoparticle": identifier,
		"steps":        n,
	}).Debug("nanolca: evaluated sweep")
	return o, nil
}
