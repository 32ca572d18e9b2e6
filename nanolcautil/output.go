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
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spatialmodel/nanolca"
	"github.com/spatialmodel/nanolca/coefficients"
	"github.com/spatialmodel/nanolca/egs"
)

// Result is the output of one evaluation.
type Result struct {
	Nanoparticle string
	MassFraction float64

	// Impacts are in kg/kg, MJ/kg, CTU/kg, m³/kg and $/kg.
	Impacts map[string]float64

	// Outputs are the user-defined OutputVariables.
	Outputs map[string]float64 `json:",omitempty"`
}

func newResult(im *nanolca.Impacts, o *nanolca.Outputter, gwp nanolca.GWP) (*Result, error) {
	out, err := o.Evaluate(im, gwp)
	if err != nil {
		return nil, err
	}
	r := &Result{
		Nanoparticle: im.Nanoparticle,
		MassFraction: im.MassFraction,
		Impacts:      im.Values(gwp),
	}
	if len(out) > 0 {
		r.Outputs = out
	}
	return r, nil
}

// Eval calculates the impacts of the nanoparticle with the given identifier
// at mass fraction mf and writes them to w in the given format.
func Eval(w io.Writer, db *coefficients.Database, identifier string, mf float64, gwp nanolca.GWP, outputVariables map[string]string, format string) error {
	o, err := nanolca.NewOutputter(outputVariables, nil)
	if err != nil {
		return err
	}
	im, err := nanolca.NewEngine(db).Evaluate(identifier, mf)
	if err != nil {
		return err
	}
	r, err := newResult(im, o, gwp)
	if err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(w, r)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Nanoparticle\t%s\t\n", r.Nanoparticle)
	q := im.Quantities(gwp)
	for _, name := range nanolca.ValueNames {
		fmt.Fprintf(tw, "%s\t%g\t%s\n", name, q[name].Value(), q[name].Dimensions())
	}
	for _, name := range o.Names() {
		fmt.Fprintf(tw, "%s\t%g\t\n", name, r.Outputs[name])
	}
	return tw.Flush()
}

// Sweep calculates the impacts of the nanoparticle with the given identifier
// at n evenly spaced mass fractions and writes them to w as a table or
// a JSON array.
func Sweep(w io.Writer, db *coefficients.Database, identifier string, n int, gwp nanolca.GWP, outputVariables map[string]string, format string) error {
	o, err := nanolca.NewOutputter(outputVariables, nil)
	if err != nil {
		return err
	}
	ims, err := nanolca.NewEngine(db).Sweep(identifier, n)
	if err != nil {
		return err
	}
	results := make([]*Result, len(ims))
	for i, im := range ims {
		if results[i], err = newResult(im, o, gwp); err != nil {
			return err
		}
	}
	if format == "json" {
		return writeJSON(w, results)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	cols := append(append([]string{}, nanolca.ValueNames...), o.Names()...)
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
	for _, r := range results {
		row := make([]string, 0, len(cols))
		for _, name := range nanolca.ValueNames {
			row = append(row, fmt.Sprintf("%g", r.Impacts[name]))
		}
		for _, name := range o.Names() {
			row = append(row, fmt.Sprintf("%g", r.Outputs[name]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// List writes the base fluid and nanoparticle coefficients in db to w.
func List(w io.Writer, db *coefficients.Database, format string) error {
	base, err := db.BaseFluid()
	if err != nil {
		return err
	}
	nps := make([]coefficients.Nanoparticle, 0, db.Len())
	for _, id := range db.Identifiers() {
		np, err := db.Get(id)
		if err != nil {
			return err
		}
		nps = append(nps, np)
	}
	if format == "json" {
		return writeJSON(w, struct {
			BaseFluid     coefficients.BaseFluid
			Nanoparticles []coefficients.Nanoparticle
		}{base, nps})
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	header := []string{"Identifier", "Kind"}
	for _, f := range coefficients.Fields {
		header = append(header, f.Name)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	row := func(r *coefficients.Record, kind string) {
		cells := []string{r.Identifier, kind}
		for _, f := range coefficients.Fields {
			cells = append(cells, fmt.Sprintf("%g", f.Get(r)))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	row((*coefficients.Record)(&base), "base fluid")
	for i := range nps {
		row((*coefficients.Record)(&nps[i]), "nanoparticle")
	}
	return tw.Flush()
}

// EGS writes the baseline impacts of the EGS plant described by c to w.
func EGS(w io.Writer, c egs.Config, format string) error {
	b, err := c.Baseline()
	if err != nil {
		return err
	}
	if format == "json" {
		return writeJSON(w, struct {
			TotalElectricity float64
			Impacts          map[string]float64
		}{b.TotalElectricity, b.Values()})
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "TotalElectricity\t%g\tkWh\n", b.TotalElectricity)
	fmt.Fprintf(tw, "TotalEnergy\t%g\t%s\n", b.TotalEnergy().Value(), b.TotalEnergy().Dimensions())
	v := b.Values()
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%g\tper kWh\n", name, v[name])
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	if err := e.Encode(v); err != nil {
		return fmt.Errorf("nanolca: writing JSON output: %v", err)
	}
	return nil
}
