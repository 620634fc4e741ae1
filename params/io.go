// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/emer/etable/v2/etable"
	"github.com/striatal/msn/density"
)

// cellJSON is the wire format of one fitted cell in the parameter file.
type cellJSON struct {
	Rheobase  float32              `json:"rheobase"`
	Variables map[string][]float32 `json:"variables"`
}

// ReadCells reads fitted per-cell parameter sets from JSON, keyed by
// cell type name ("dmsn", "imsn") with one entry per cell index.
// Mechanism names accept the legacy aliases used in the fitted files
// ("c32", "c33" for the Cav3.2 / Cav3.3 currents).
func ReadCells(r io.Reader) (map[CellType][]CellParams, error) {
	raw := map[string][]cellJSON{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("params.ReadCells: %w", err)
	}
	cells := map[CellType][]CellParams{}
	for tn, rcs := range raw {
		ct, err := CellTypeFromName(tn)
		if err != nil {
			return nil, err
		}
		cs := make([]CellParams, len(rcs))
		for i, rc := range rcs {
			vars := make(map[density.Mechanism][]float32, len(rc.Variables))
			for mn, args := range rc.Variables {
				mech, err := density.MechFromName(mn)
				if err != nil {
					return nil, fmt.Errorf("params.ReadCells: cell %s %d: %w", tn, i, err)
				}
				vars[mech] = args
			}
			cs[i] = CellParams{Rheobase: rc.Rheobase, Variables: vars}
		}
		cells[ct] = cs
	}
	return cells, nil
}

// ReadConductances reads the peak conductance table from CSV with the
// standard emergent headers ($Mechanism, $Compartment, $Cell, #Value),
// as written by WriteConductances.
func ReadConductances(r io.Reader) (*etable.Table, error) {
	dt := &etable.Table{}
	if err := dt.ReadCSV(r, etable.Comma); err != nil {
		return nil, fmt.Errorf("params.ReadConductances: %w", err)
	}
	for _, cn := range []string{"Mechanism", "Compartment", "Cell", "Value"} {
		if _, err := dt.ColByNameTry(cn); err != nil {
			return nil, fmt.Errorf("params.ReadConductances: %w", err)
		}
	}
	return dt, nil
}

// WriteConductances writes the peak conductance table as CSV with
// headers, the inverse of ReadConductances.
func WriteConductances(w io.Writer, dt *etable.Table) error {
	return dt.WriteCSV(w, etable.Comma, etable.Headers)
}
