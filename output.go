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

import (
	"fmt"
	"math"
	"sort"

	"github.com/Knetic/govaluate"
)

// Outputter calculates user-defined variables from Impacts.
type Outputter struct {
	names []string
	exprs map[string]*govaluate.EvaluableExpression
}

// NewOutputter creates an Outputter from a map of variable names to
// expressions. Expressions may refer to any of ValueNames and call
// the functions in outputFunctions. Default functions are:
//
// 'exp(x)' which applies the exponential function e^x.
//
// 'log(x)' which gives the natural logarithm of x.
//
// 'max(x, y, ...)' and 'min(x, y, ...)'.
func NewOutputter(outputVariables map[string]string, outputFunctions map[string]govaluate.ExpressionFunction) (*Outputter, error) {
	funcs := map[string]govaluate.ExpressionFunction{
		"exp": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("nanolca: got %d arguments for function 'exp', but needs 1", len(arg))
			}
			x, ok := arg[0].(float64)
			if !ok {
				return nil, fmt.Errorf("nanolca: function 'exp' needs a numeric argument but got %T", arg[0])
			}
			return math.Exp(x), nil
		},
		"log": func(arg ...interface{}) (interface{}, error) {
			if len(arg) != 1 {
				return nil, fmt.Errorf("nanolca: got %d arguments for function 'log', but needs 1", len(arg))
			}
			x, ok := arg[0].(float64)
			if !ok {
				return nil, fmt.Errorf("nanolca: function 'log' needs a numeric argument but got %T", arg[0])
			}
			return math.Log(x), nil
		},
		"max": func(arg ...interface{}) (interface{}, error) {
			return reduce("max", math.Max, arg)
		},
		"min": func(arg ...interface{}) (interface{}, error) {
			return reduce("min", math.Min, arg)
		},
	}
	for k, f := range outputFunctions {
		funcs[k] = f
	}

	known := make(map[string]bool, len(ValueNames))
	for _, n := range ValueNames {
		known[n] = true
	}

	o := &Outputter{exprs: make(map[string]*govaluate.EvaluableExpression)}
	for name, expr := range outputVariables {
		if known[name] {
			return nil, fmt.Errorf("nanolca: output variable '%s' has the same name as an impact", name)
		}
		e, err := govaluate.NewEvaluableExpressionWithFunctions(expr, funcs)
		if err != nil {
			return nil, fmt.Errorf("nanolca: output variable '%s': %v", name, err)
		}
		for _, v := range e.Vars() {
			if !known[v] {
				return nil, fmt.Errorf("nanolca: output variable '%s' refers to unknown variable '%s'", name, v)
			}
		}
		o.exprs[name] = e
		o.names = append(o.names, name)
	}
	sort.Strings(o.names)
	return o, nil
}

func reduce(name string, f func(a, b float64) float64, arg []interface{}) (interface{}, error) {
	if len(arg) == 0 {
		return nil, fmt.Errorf("nanolca: function '%s' needs at least 1 argument", name)
	}
	var v float64
	for i, a := range arg {
		x, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("nanolca: function '%s' needs numeric arguments but argument %d is %T", name, i+1, a)
		}
		if i == 0 {
			v = x
			continue
		}
		v = f(v, x)
	}
	return v, nil
}

// Names returns the output variable names in sorted order.
func (o *Outputter) Names() []string { return o.names }

// Evaluate calculates the output variables for im.
func (o *Outputter) Evaluate(im *Impacts, gwp GWP) (map[string]float64, error) {
	vals := im.Values(gwp)
	params := make(map[string]interface{}, len(vals))
	for k, v := range vals {
		params[k] = v
	}
	out := make(map[string]float64, len(o.names))
	for _, name := range o.names {
		r, err := o.exprs[name].Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("nanolca: evaluating output variable '%s': %v", name, err)
		}
		v, ok := r.(float64)
		if !ok {
			return nil, fmt.Errorf("nanolca: output variable '%s' evaluates to %T, not a number", name, r)
		}
		out[name] = v
	}
	return out, nil
}
