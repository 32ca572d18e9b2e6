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
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/nanolca"
	"github.com/spatialmodel/nanolca/coefficients"
	"github.com/spatialmodel/nanolca/egs"
	"github.com/spf13/cast"
)

// loadDatabase loads the coefficient database from path, or returns the
// built-in database if path is empty.
func loadDatabase(path string) (*coefficients.Database, error) {
	path = os.ExpandEnv(path)
	if path == "" {
		logrus.Debug("nanolca: using built-in coefficient database")
		return coefficients.Default(), nil
	}
	db, err := coefficients.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nanolca: loading Database: %w", err)
	}
	return db, nil
}

// checkFormat makes sure the output format is one that is supported.
func checkFormat(f string) (string, error) {
	if f != "text" && f != "json" {
		return f, fmt.Errorf("the Format variable needs to be set to either text or json, but is currently set to `%s`", f)
	}
	return f, nil
}

// gwpConfig reads the global warming potentials from cfg.
func gwpConfig(cfg *viper.Viper) (nanolca.GWP, error) {
	g := nanolca.GWP{CO2: cfg.GetFloat64("GWP.CO2"), CH4: cfg.GetFloat64("GWP.CH4")}
	if g.CO2 < 0 || g.CH4 < 0 {
		return g, fmt.Errorf("nanolca: global warming potentials must not be negative: %+v", g)
	}
	return g, nil
}

// egsConfig reads the EGS plant configuration from cfg.
func egsConfig(cfg *viper.Viper) egs.Config {
	c := egs.Swiss()
	c.DepthKm = cfg.GetFloat64("EGS.DepthKm")
	c.LifetimeYears = cfg.GetFloat64("EGS.LifetimeYears")
	c.DrillingEnergy = cfg.GetFloat64("EGS.DrillingEnergy")
	c.ConversionEfficiency = cfg.GetFloat64("EGS.ConversionEfficiency")
	c.ThermalPower = cfg.GetFloat64("EGS.ThermalPower")
	c.GHGMin = cfg.GetFloat64("EGS.GHGMin")
	c.GHGMax = cfg.GetFloat64("EGS.GHGMax")
	return c
}

// getStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func getStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return nil, nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		o := make(map[string]string)
		if v == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, fmt.Errorf("nanolca: reading %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("nanolca: invalid type for %s: %#v", varName, i)
	}
}
