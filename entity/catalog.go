// SPDX-License-Identifier: MIT

package entity

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"
)

// Default catalog IDs.
const (
	Electron  = "electron"
	Muon      = "muon"
	Tau       = "tau"
	UpQuark   = "up_quark"
	DownQuark = "down_quark"
	Photon    = "photon"
	Gluon     = "gluon"
	Proton    = "proton"
)

// defaultRecords is the reference table. Leptons and quarks take odd
// orders, gauge bosons order 4.
var defaultRecords = []Record{
	{ID: Electron, Name: "electron", Order: 3, StabilityFactor: 0.95,
		Attributes: map[string]float64{AttrCharge: -1, AttrSpin: 0.5, AttrLeptonNumber: 1}},
	{ID: Muon, Name: "muon", Order: 5, StabilityFactor: 0.15,
		Attributes: map[string]float64{AttrCharge: -1, AttrSpin: 0.5, AttrLeptonNumber: 1}},
	{ID: Tau, Name: "tau", Order: 7, StabilityFactor: 0.05,
		Attributes: map[string]float64{AttrCharge: -1, AttrSpin: 0.5, AttrLeptonNumber: 1}},
	{ID: UpQuark, Name: "up quark", Order: 3, StabilityFactor: 0.90,
		Attributes: map[string]float64{AttrCharge: 2.0 / 3, AttrSpin: 0.5, AttrBaryonNumber: 1.0 / 3}},
	{ID: DownQuark, Name: "down quark", Order: 3, StabilityFactor: 0.90,
		Attributes: map[string]float64{AttrCharge: -1.0 / 3, AttrSpin: 0.5, AttrBaryonNumber: 1.0 / 3}},
	{ID: Photon, Name: "photon", Order: 4, StabilityFactor: 1,
		Attributes: map[string]float64{AttrCharge: 0, AttrSpin: 1, AttrMass: 0}},
	{ID: Gluon, Name: "gluon", Order: 4, StabilityFactor: 1,
		Attributes: map[string]float64{AttrCharge: 0, AttrSpin: 1, AttrMass: 0}},
	{ID: Proton, Name: "proton", Order: 5, StabilityFactor: 1,
		Attributes:   map[string]float64{AttrCharge: 1, AttrSpin: 0.5, AttrBaryonNumber: 1},
		Constituents: []string{UpQuark, UpQuark, DownQuark}},
}

// Catalog is an immutable set of records keyed by ID.
type Catalog struct {
	records map[string]Record
}

// NewCatalog validates recs and indexes them by ID. Duplicate IDs and
// constituents missing from the catalog are rejected.
func NewCatalog(recs ...Record) (*Catalog, error) {
	c := &Catalog{records: make(map[string]Record, len(recs))}
	for _, r := range recs {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.records[r.ID]; dup {
			return nil, fmt.Errorf("duplicate id %q: %w", r.ID, ErrInvalidRecord)
		}
		c.records[r.ID] = r
	}
	for _, r := range c.records {
		for _, id := range r.Constituents {
			if _, ok := c.records[id]; !ok {
				return nil, fmt.Errorf("%s: constituent %q: %w", r.ID, id, ErrUnknownEntity)
			}
		}
	}

	return c, nil
}

// DefaultRecords returns a copy of the reference records.
func DefaultRecords() []Record {
	out := make([]Record, len(defaultRecords))
	for i, r := range defaultRecords {
		r.Attributes = maps.Clone(r.Attributes)
		r.Constituents = slices.Clone(r.Constituents)
		out[i] = r
	}

	return out
}

// DefaultCatalog returns the reference catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultRecords()...)
	if err != nil {
		panic(err)
	}

	return c
}

// Lookup returns the record for id.
func (c *Catalog) Lookup(id string) (Record, error) {
	r, ok := c.records[id]
	if !ok {
		return Record{}, fmt.Errorf("%q: %w", id, ErrUnknownEntity)
	}

	return r, nil
}

// IDs returns the catalog IDs in ascending order.
func (c *Catalog) IDs() []string {
	return slices.Sorted(maps.Keys(c.records))
}

// Spawn derives a fresh Entity for id.
func (c *Catalog) Spawn(id string, rng *rand.Rand) (*Entity, error) {
	r, err := c.Lookup(id)
	if err != nil {
		return nil, err
	}

	return New(r, rng)
}
