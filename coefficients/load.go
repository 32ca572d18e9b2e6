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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/tealeg/xlsx"
)

// LoadFile reads a database from the file at path. The format is chosen
// by file extension: ".toml" or ".xlsx". Environment variables in path
// are expanded.
func LoadFile(path string) (*Database, error) {
	path = os.ExpandEnv(path)
	var (
		db  *Database
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("coefficients: opening database: %w", err)
		}
		defer f.Close()
		db, err = DecodeTOML(f)
	case ".xlsx":
		db, err = LoadXLSX(path)
	default:
		return nil, fmt.Errorf("coefficients: unsupported database file type '%s'", ext)
	}
	if err != nil {
		return nil, err
	}
	Log.WithFields(logrus.Fields{
		"file":          path,
		"nanoparticles": db.Len(),
	}).Info("loaded coefficient database")
	return db, nil
}

// tomlDB is the layout of a TOML database file:
//
//	[BaseFluid]
//	Identifier = "Water"
//	CO2Factor = 0.02
//
//	[[Nanoparticle]]
//	Identifier = "CuO"
//	CO2Factor = 1.2
type tomlDB struct {
	BaseFluid    *BaseFluid
	Nanoparticle []Nanoparticle
}

// DecodeTOML reads a database in TOML format from r.
func DecodeTOML(r io.Reader) (*Database, error) {
	var d tomlDB
	md, err := toml.DecodeReader(r, &d)
	if err != nil {
		return nil, fmt.Errorf("coefficients: decoding TOML: %w", err)
	}
	if u := md.Undecoded(); len(u) > 0 {
		return nil, fmt.Errorf("coefficients: unknown keys in TOML: %v", u)
	}
	return New(d.BaseFluid, d.Nanoparticle...)
}

// Sheet names used by LoadXLSX.
const (
	NanoparticleSheet = "nanoparticles"
	BaseFluidSheet    = "basefluid"
)

// LoadXLSX reads a database from an Excel file. The file must have a
// sheet named NanoparticleSheet and a sheet named BaseFluidSheet. In each
// sheet the first row holds column names matching the Record field names
// and each following row holds one record. Blank numeric cells are zero.
func LoadXLSX(path string) (*Database, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("coefficients: opening spreadsheet: %w", err)
	}
	npSheet, ok := f.Sheet[NanoparticleSheet]
	if !ok {
		return nil, fmt.Errorf("coefficients: reading spreadsheet: no sheet %s", NanoparticleSheet)
	}
	baseSheet, ok := f.Sheet[BaseFluidSheet]
	if !ok {
		return nil, &ConfigurationError{Reason: "no base fluid configured: missing sheet " + BaseFluidSheet}
	}

	nps, err := recordsFromSheet(npSheet)
	if err != nil {
		return nil, err
	}
	bases, err := recordsFromSheet(baseSheet)
	if err != nil {
		return nil, err
	}
	var base *BaseFluid
	switch len(bases) {
	case 0:
	case 1:
		b := BaseFluid(bases[0])
		base = &b
	default:
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("sheet %s has %d base fluids; it should have exactly one", BaseFluidSheet, len(bases)),
		}
	}
	o := make([]Nanoparticle, len(nps))
	for i, r := range nps {
		o[i] = Nanoparticle(r)
	}
	return New(base, o...)
}

// recordsFromSheet reads the records from s, skipping rows with no
// content.
func recordsFromSheet(s *xlsx.Sheet) ([]Record, error) {
	if len(s.Rows) == 0 {
		return nil, nil
	}
	setters := make(map[string]func(*Record, string) error)
	setters["Identifier"] = func(r *Record, v string) error { r.Identifier = v; return nil }
	setters["Description"] = func(r *Record, v string) error { r.Description = v; return nil }
	for _, f := range Fields {
		f := f
		setters[f.Name] = func(r *Record, v string) error {
			if v == "" {
				return nil
			}
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("coefficients: reading spreadsheet %s column %s: %w", s.Name, f.Name, err)
			}
			f.Set(r, x)
			return nil
		}
	}

	header := s.Rows[0]
	cols := make([]func(*Record, string) error, len(header.Cells))
	for i, c := range header.Cells {
		name := strings.TrimSpace(c.Value)
		if name == "" {
			continue
		}
		set, ok := setters[name]
		if !ok {
			return nil, fmt.Errorf("coefficients: reading spreadsheet %s: unknown column '%s'", s.Name, name)
		}
		cols[i] = set
	}

	var o []Record
	for _, row := range s.Rows[1:] {
		if row == nil {
			continue
		}
		var r Record
		empty := true
		for i, c := range row.Cells {
			if i >= len(cols) || cols[i] == nil {
				continue
			}
			v := strings.TrimSpace(c.Value)
			if v != "" {
				empty = false
			}
			if err := cols[i](&r, v); err != nil {
				return nil, err
			}
		}
		if !empty {
			o = append(o, r)
		}
	}
	return o, nil
}
