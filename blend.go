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

	"github.com/spatialmodel/nanolca/coefficients"
)

// OutOfRangeError is returned when a mass fraction is not within [0, 1].
type OutOfRangeError struct {
	MassFraction float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("nanolca: mass fraction %g is outside of the range [0, 1]", e.MassFraction)
}

// checkMassFraction returns an error if mf is not in [0, 1]. NaN is
// out of range.
func checkMassFraction(mf float64) error {
	if !(mf >= 0 && mf <= 1) {
		return &OutOfRangeError{MassFraction: mf}
	}
	return nil
}

// blend returns the mixture value of coefficient f, where the
// nanoparticle is weighted by mass fraction mf and the base fluid by
// 1 - mf. The result equals the base fluid value exactly when mf == 0
// and the nanoparticle value exactly when mf == 1.
func blend(np *coefficients.Nanoparticle, base *coefficients.BaseFluid, mf float64, f coefficients.Field) float64 {
	cn := f.Get((*coefficients.Record)(np))
	cb := f.Get((*coefficients.Record)(base))
	return mf*cn + (1-mf)*cb
}
