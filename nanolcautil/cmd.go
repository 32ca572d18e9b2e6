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

// Package nanolcautil contains the command-line interface for nanolca.
package nanolcautil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/nanolca"
	"github.com/spatialmodel/nanolca/egs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	swiss := egs.Swiss()

	// Options are the configuration options available to nanolca.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the minimum level of log messages that are
              printed: debug, info, warning, or error.`,
			defaultVal: "warning",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Database",
			usage: `
              Database is the path to a coefficient database file in
              TOML (.toml) or Excel (.xlsx) format. It can include
              environment variables. If it is left blank, the built-in
              database is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Format",
			usage: `
              Format specifies the output format. Acceptable values are
              'text' and 'json'.`,
			defaultVal: "text",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "nanoparticle",
			usage: `
              nanoparticle is the identifier of the nanoparticle in the
              coefficient database, e.g. CuO.`,
			shorthand:  "n",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "massfraction",
			usage: `
              massfraction is the nanoparticle share of the nanofluid
              by mass, between 0 and 1. It must be specified.`,
			shorthand:  "m",
			defaultVal: -1.0,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags()},
		},
		{
			name: "steps",
			usage: `
              steps is the number of evenly spaced mass fractions
              between 0 and 1 (inclusive) to evaluate.`,
			defaultVal: 11,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "GWP.CO2",
			usage: `
              GWP.CO2 is the global warming potential of CO2.`,
			defaultVal: nanolca.DefaultGWP.CO2,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "GWP.CH4",
			usage: `
              GWP.CH4 is the global warming potential of methane relative
              to CO2. The default is the IPCC AR5 100-year value.`,
			defaultVal: nanolca.DefaultGWP.CH4,
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables specifies additional variables to calculate
              from the impacts, as a map of names to expressions.
              Expressions can use the impact names (CO2, CH4, CO2Eq, CEDMin,
              CEDMax, HTP, ETP, Toxicity, WaterFootprint, Cost, MassFraction)
              and the functions exp, log, max, and min.`,
			defaultVal: map[string]string{},
			flagsets:   []*pflag.FlagSet{evalCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "EGS.DepthKm",
			usage: `
              EGS.DepthKm is the well depth of the geothermal plant [km].`,
			defaultVal: swiss.DepthKm,
			flagsets:   []*pflag.FlagSet{egsCmd.Flags()},
		},
		{
			name: "EGS.LifetimeYears",
			usage: `
              EGS.LifetimeYears is the lifetime of the geothermal plant [years].`,
			defaultVal: swiss.LifetimeYears,
			flagsets:   []*pflag.FlagSet{egsCmd.Flags()},
		},
		{
			name: "EGS.DrillingEnergy",
			usage: `
              EGS.DrillingEnergy is the total energy used to drill the
              wells [kWh].`,
			defaultVal: swiss.DrillingEnergy,
			flagsets:   []*pflag.FlagSet{egsCmd.Flags()},
		},
		{
			name: "EGS.ConversionEfficiency",
			usage: `
              EGS.ConversionEfficiency is the fraction of thermal energy
              converted to electricity.`,
			defaultVal: swiss.ConversionEfficiency,
			flagsets:   []*pflag.FlagSet{egsCmd.Flags()},
		},
		{
			name: "EGS.ThermalPower",
			usage: `
              EGS.ThermalPower is the thermal output of the plant [kW].`,
			defaultVal: swiss.ThermalPower,
			flagsets:   []*pflag.FlagSet{egsCmd.Flags()},
		},
		{
			name: "EGS.GHGMin",
			usage: `
              EGS.GHGMin is the lower bound of life cycle greenhouse gas
              emissions [g CO2-eq / kWh].`,
			defaultVal: swiss.GHGMin,
			flagsets:   []*pflag.FlagSet{egsCmd.Flags()},
		},
		{
			name: "EGS.GHGMax",
			usage: `
              EGS.GHGMax is the upper bound of life cycle greenhouse gas
              emissions [g CO2-eq / kWh].`,
			defaultVal: swiss.GHGMax,
			flagsets:   []*pflag.FlagSet{egsCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("NANOLCA")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
			case int:
				set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
			case map[string]string:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(option.defaultVal)
				set.StringP(option.name, option.shorthand, b.String(), option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(evalCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(listCmd)
	Root.AddCommand(egsCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("nanolca: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("nanolca: %v", err)
	}
	logrus.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "nanolca",
	Short: "Life cycle impacts of nanofluids.",
	Long: `nanolca estimates the carbon footprint, cumulative energy demand,
toxicity, water footprint, and cost of water-based nanofluids from a database
of nanoparticle coefficients. Use the subcommands specified below to access
the model functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'NANOLCA_var' where 'var' is the
name of the variable to be set, with '.' replaced by '_' (e.g. NANOLCA_GWP_CH4).
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of nanolca.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nanolca v%s\n", nanolca.Version)
	},
	DisableAutoGenTag: true,
}

// evalCmd calculates the impacts of one nanofluid.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Calculate nanofluid impacts.",
	Long: `eval calculates the life cycle impacts of one kilogram of nanofluid
made of the specified nanoparticle at the specified mass fraction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := checkFormat(Cfg.GetString("Format"))
		if err != nil {
			return err
		}
		gwp, err := gwpConfig(Cfg)
		if err != nil {
			return err
		}
		vars, err := getStringMapString("OutputVariables", Cfg)
		if err != nil {
			return err
		}
		mf := Cfg.GetFloat64("massfraction")
		if mf == -1 {
			return fmt.Errorf("nanolca: massfraction must be specified")
		}
		db, err := loadDatabase(Cfg.GetString("Database"))
		if err != nil {
			return err
		}
		return Eval(cmd.OutOrStdout(), db, Cfg.GetString("nanoparticle"), mf, gwp, vars, format)
	},
	DisableAutoGenTag: true,
}

// sweepCmd calculates impacts across the range of mass fractions.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Calculate nanofluid impacts across mass fractions.",
	Long: `sweep calculates the life cycle impacts of the specified nanoparticle
at evenly spaced mass fractions from 0 (pure base fluid) to 1 (pure nanoparticle).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := checkFormat(Cfg.GetString("Format"))
		if err != nil {
			return err
		}
		gwp, err := gwpConfig(Cfg)
		if err != nil {
			return err
		}
		vars, err := getStringMapString("OutputVariables", Cfg)
		if err != nil {
			return err
		}
		db, err := loadDatabase(Cfg.GetString("Database"))
		if err != nil {
			return err
		}
		return Sweep(cmd.OutOrStdout(), db, Cfg.GetString("nanoparticle"), Cfg.GetInt("steps"), gwp, vars, format)
	},
	DisableAutoGenTag: true,
}

// listCmd lists the database contents.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the coefficient database.",
	Long:  `list prints the base fluid and nanoparticle coefficients in the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := checkFormat(Cfg.GetString("Format"))
		if err != nil {
			return err
		}
		db, err := loadDatabase(Cfg.GetString("Database"))
		if err != nil {
			return err
		}
		return List(cmd.OutOrStdout(), db, format)
	},
	DisableAutoGenTag: true,
}

// egsCmd prints the geothermal baseline.
var egsCmd = &cobra.Command{
	Use:   "egs",
	Short: "Calculate the enhanced geothermal system baseline.",
	Long: `egs calculates life cycle impacts per kWh of electricity from an
enhanced geothermal system (EGS). The defaults describe a Swiss plant with
3.5 km deep wells and a 50-year lifetime.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := checkFormat(Cfg.GetString("Format"))
		if err != nil {
			return err
		}
		return EGS(cmd.OutOrStdout(), egsConfig(Cfg), format)
	},
	DisableAutoGenTag: true,
}
