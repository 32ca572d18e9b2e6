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

import "fmt"

// NotFoundError is returned when a nanoparticle identifier is not in
// the database.
type NotFoundError struct {
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("coefficients: no nanoparticle '%s' in database", e.Identifier)
}

// ConfigurationError is returned when the database has no base fluid.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "coefficients: " + e.Reason
}

// ValidationError is returned when a record violates its field invariants.
type ValidationError struct {
	// Kind is "nanoparticle" or "base fluid".
	Kind       string
	Identifier string
	Field      string
	Value      float64
	Reason     string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("coefficients: invalid %s '%s': %s", e.Kind, e.Identifier, e.Reason)
	}
	return fmt.Sprintf("coefficients: invalid %s '%s': %s = %g: %s",
		e.Kind, e.Identifier, e.Field, e.Value, e.Reason)
}

// DuplicateKeyError is returned when two records share an identifier.
type DuplicateKeyError struct {
	Identifier string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("coefficients: duplicate nanoparticle identifier '%s'", e.Identifier)
}
