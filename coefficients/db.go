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

// Package coefficients holds the curated table of nanoparticle and
// base-fluid coefficients used to estimate nanofluid life cycle impacts.
package coefficients

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Log receives messages about databases being loaded.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Database is a validated, read-only table of coefficient records.
// It is safe for concurrent use.
type Database struct {
	base          *BaseFluid
	nanoparticles map[string]Nanoparticle
}

// New creates a database from a base fluid and a set of nanoparticles,
// checking that every record is valid and that identifiers are unique
// across the base fluid and the nanoparticles.
func New(base *BaseFluid, nanoparticles ...Nanoparticle) (*Database, error) {
	if base == nil {
		return nil, &ConfigurationError{Reason: "no base fluid configured"}
	}
	b := *base
	if err := (*Record)(&b).validate("base fluid"); err != nil {
		return nil, err
	}
	db := &Database{
		base:          &b,
		nanoparticles: make(map[string]Nanoparticle, len(nanoparticles)),
	}
	if err := db.add(nanoparticles); err != nil {
		return nil, err
	}
	return db, nil
}

func (db *Database) add(nanoparticles []Nanoparticle) error {
	for _, np := range nanoparticles {
		if err := (*Record)(&np).validate("nanoparticle"); err != nil {
			return err
		}
		if _, ok := db.nanoparticles[np.Identifier]; ok || np.Identifier == db.base.Identifier {
			return &DuplicateKeyError{Identifier: np.Identifier}
		}
		db.nanoparticles[np.Identifier] = np
	}
	return nil
}

// With returns a new database holding the receiver's records plus
// the given nanoparticles. The receiver is not modified.
func (db *Database) With(nanoparticles ...Nanoparticle) (*Database, error) {
	base, err := db.BaseFluid()
	if err != nil {
		return nil, err
	}
	o := &Database{
		base:          &base,
		nanoparticles: make(map[string]Nanoparticle, len(db.nanoparticles)+len(nanoparticles)),
	}
	for id, np := range db.nanoparticles {
		o.nanoparticles[id] = np
	}
	if err := o.add(nanoparticles); err != nil {
		return nil, err
	}
	return o, nil
}

// Get returns the nanoparticle with the given identifier. Matching is
// exact and case-sensitive.
func (db *Database) Get(identifier string) (Nanoparticle, error) {
	if db == nil {
		return Nanoparticle{}, &NotFoundError{Identifier: identifier}
	}
	np, ok := db.nanoparticles[identifier]
	if !ok {
		return Nanoparticle{}, &NotFoundError{Identifier: identifier}
	}
	return np, nil
}

// BaseFluid returns the base fluid.
func (db *Database) BaseFluid() (BaseFluid, error) {
	if db == nil || db.base == nil {
		return BaseFluid{}, &ConfigurationError{Reason: "no base fluid configured"}
	}
	return *db.base, nil
}

// Identifiers returns the nanoparticle identifiers in sorted order.
func (db *Database) Identifiers() []string {
	if db == nil {
		return nil
	}
	o := make([]string, 0, len(db.nanoparticles))
	for id := range db.nanoparticles {
		o = append(o, id)
	}
	sort.Strings(o)
	return o
}

// Len returns the number of nanoparticles.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.nanoparticles)
}
