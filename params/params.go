// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package params manages the parameters needed to model the Lindroos et al
medium spiny neurons: per-cell channel distribution parameters and
rheobase for the fitted set of 71 dMSNs and 34 iMSNs, and the peak
conductance (gbar / pbar) table defined per mechanism, compartment and
cell type.

The store is read-only after construction and safe to share across
concurrently constructed cells.
*/
package params

import (
	"errors"
	"fmt"

	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/goki/ki/kit"
	"github.com/striatal/msn/density"
)

var (
	// ErrUnknownCellIndex is returned when a cell index is outside the
	// valid range for the cell type (0..70 for dmsn, 0..33 for imsn).
	ErrUnknownCellIndex = errors.New("unknown cell index")

	// ErrMissingConductance is returned when the peak conductance table
	// has no row for a (mechanism, compartment, cell type) lookup.
	// A missed lookup fails here rather than surfacing later as a NaN
	// density.
	ErrMissingConductance = errors.New("missing peak conductance")

	// ErrMissingVariables is returned when a cell's fitted parameter
	// set lacks the shape arguments for a mechanism that requires them.
	ErrMissingVariables = errors.New("missing fitted shape arguments")
)

// CellType is the MSN subtype: direct (dmsn) or indirect (imsn) pathway.
type CellType int

//go:generate stringer -type=CellType

var KiT_CellType = kit.Enums.AddEnum(CellTypeN, kit.NotBitFlag, nil)

func (ev CellType) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CellType) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// DMSN is the direct-pathway (D1 receptor) medium spiny neuron
	DMSN CellType = iota

	// IMSN is the indirect-pathway (D2 receptor) medium spiny neuron
	IMSN

	CellTypeN
)

// typeNames are the cell type names used in parameter tables.
var typeNames = [CellTypeN]string{"dmsn", "imsn"}

// nCells is the number of fitted parameter sets per cell type in the
// Lindroos et al dataset.
var nCells = [CellTypeN]int{71, 34}

// TypeName returns the lowercase cell type name used in parameter
// tables ("dmsn" or "imsn").
func (ct CellType) TypeName() string {
	if ct < 0 || ct >= CellTypeN {
		return ""
	}
	return typeNames[ct]
}

// NCells returns the number of fitted cells available for this type:
// 71 for dmsn, 34 for imsn.
func (ct CellType) NCells() int {
	if ct < 0 || ct >= CellTypeN {
		return 0
	}
	return nCells[ct]
}

// CellTypeFromName returns the CellType for a table name.
func CellTypeFromName(nm string) (CellType, error) {
	for ct, tn := range typeNames {
		if nm == tn {
			return CellType(ct), nil
		}
	}
	return CellTypeN, errors.New("params.CellTypeFromName: unknown cell type name: " + nm)
}

// DensityParams is one resolved channel distribution entry: the shape
// arguments (p0..p3) and peak value for one mechanism in one
// compartment class.
type DensityParams struct {
	Compartment density.CompartmentClass `desc:"compartment class the entry applies to"`
	Mechanism   density.Mechanism        `desc:"mechanism whose density is distributed"`
	Args        []float32                `desc:"1-4 shape arguments, p0..p3 in the published tables"`
	Peak        float32                  `desc:"peak conductance (gbar) or permeability (pbar)"`
}

// CellParams is the fitted parameter set for one cell: its rheobase and
// the per-mechanism distribution shape arguments.
type CellParams struct {
	Rheobase  float32                         `desc:"minimum sustained current to elicit sustained firing, in pA"`
	Variables map[density.Mechanism][]float32 `desc:"fitted distribution shape args per mechanism"`
}

// Store holds the model parameters, loaded once at startup and
// read-only thereafter.
type Store struct {
	Cells        map[CellType][]CellParams `desc:"fitted per-cell parameter sets, indexed by cell type then cell index"`
	Conductances *etable.Table             `desc:"peak conductance table with columns Mechanism, Compartment, Cell, Value; Compartment and Cell may be 'all'"`
}

// NewStore returns a store over the given fitted cell sets and peak
// conductance table.
func NewStore(cells map[CellType][]CellParams, cond *etable.Table) *Store {
	return &Store{Cells: cells, Conductances: cond}
}

// NewConductances returns an empty peak conductance table with the
// standard schema.
func NewConductances(rows int) *etable.Table {
	dt := &etable.Table{}
	dt.SetFromSchema(etable.Schema{
		{Name: "Mechanism", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Compartment", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Cell", Type: etensor.STRING, CellShape: nil, DimNames: nil},
		{Name: "Value", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}, rows)
	return dt
}

// checkIndex validates a cell index against the loaded set for the type.
func (st *Store) checkIndex(ct CellType, idx int) error {
	cs, ok := st.Cells[ct]
	if !ok {
		return fmt.Errorf("%w: no cells loaded for type %s", ErrUnknownCellIndex, ct.TypeName())
	}
	if idx < 0 || idx >= len(cs) {
		return fmt.Errorf("%w: %s %d (valid range 0..%d)", ErrUnknownCellIndex, ct.TypeName(), idx, len(cs)-1)
	}
	return nil
}

// Rheobase returns the rheobase (in pA) of the selected cell.
func (st *Store) Rheobase(ct CellType, idx int) (float32, error) {
	if err := st.checkIndex(ct, idx); err != nil {
		return 0, err
	}
	return st.Cells[ct][idx].Rheobase, nil
}

// PeakConductance returns the peak conductance (gbar) or permeability
// (pbar) for a mechanism in a compartment for the given cell type.
// Table rows with Compartment or Cell equal to "all" match any
// compartment or cell type.  The first matching row wins.
func (st *Store) PeakConductance(ct CellType, mech density.Mechanism, comp density.CompartmentClass) (float32, error) {
	mn, cn, tn := mech.MechName(), comp.ClassName(), ct.TypeName()
	ix := etable.NewIdxView(st.Conductances)
	ix.Filter(func(et *etable.Table, row int) bool {
		if et.CellString("Mechanism", row) != mn {
			return false
		}
		if cc := et.CellString("Compartment", row); cc != cn && cc != "all" {
			return false
		}
		cl := et.CellString("Cell", row)
		return cl == tn || cl == "all"
	})
	if ix.Len() == 0 {
		return 0, fmt.Errorf("%w: %s %s in %s", ErrMissingConductance, tn, mn, cn)
	}
	return float32(st.Conductances.CellFloat("Value", ix.Idxs[0])), nil
}

// dendMechs are the dendritic channel mechanisms in the order the
// distribution entries are assembled.
var dendMechs = []density.Mechanism{
	density.Naf, density.Kaf, density.Kas, density.Kir, density.SK,
	density.CaN, density.Cav32, density.Cav33, density.Kdr,
	density.CaL12, density.CaL13, density.CaR, density.BK,
}

// somaDefaultMechs take the default shape argument [0] in the soma.
var somaDefaultMechs = []density.Mechanism{
	density.Naf, density.Kaf, density.Kas, density.Kdr, density.BK,
	density.CaL12, density.CaL13, density.CaR, density.CaN,
}

// somaFittedMechs use the cell's fitted shape arguments in the soma.
var somaFittedMechs = []density.Mechanism{density.SK, density.Kir}

// axonNafArgs are the default axonal naf step profile arguments.
var axonNafArgs = []float32{1, 1.1, 30, 500}

// DensityParams assembles the ordered channel distribution entries for
// the selected cell: 13 dendritic, 11 somatic and 3 axonal mechanisms,
// each joined with its peak value from the conductance table.
//
// Mechanisms without fitted shape arguments default to [0]: the args
// enter the density formulas as the exponent in 10^p0, and 10^0 = 1.
// The axonal naf step profile takes the fixed default arguments
// [1, 1.1, 30, 500].
func (st *Store) DensityParams(ct CellType, idx int) ([]DensityParams, error) {
	if err := st.checkIndex(ct, idx); err != nil {
		return nil, err
	}
	vars := st.Cells[ct][idx].Variables

	ps := make([]DensityParams, 0, len(dendMechs)+len(somaDefaultMechs)+len(somaFittedMechs)+3)
	for _, mech := range dendMechs {
		args, ok := vars[mech]
		if !ok {
			args = []float32{0}
		}
		ps = append(ps, DensityParams{Compartment: density.Dend, Mechanism: mech, Args: args})
	}
	for _, mech := range somaDefaultMechs {
		ps = append(ps, DensityParams{Compartment: density.Soma, Mechanism: mech, Args: []float32{0}})
	}
	for _, mech := range somaFittedMechs {
		args, ok := vars[mech]
		if !ok {
			return nil, fmt.Errorf("%w: %s %d soma %s", ErrMissingVariables, ct.TypeName(), idx, mech.MechName())
		}
		ps = append(ps, DensityParams{Compartment: density.Soma, Mechanism: mech, Args: args})
	}
	ps = append(ps,
		DensityParams{Compartment: density.Axon, Mechanism: density.Kas, Args: []float32{0}},
		DensityParams{Compartment: density.Axon, Mechanism: density.Naf, Args: axonNafArgs},
		DensityParams{Compartment: density.Axon, Mechanism: density.KM, Args: []float32{0}},
	)

	for i := range ps {
		peak, err := st.PeakConductance(ct, ps[i].Mechanism, ps[i].Compartment)
		if err != nil {
			return nil, fmt.Errorf("cell %s %d: %w", ct.TypeName(), idx, err)
		}
		ps[i].Peak = peak
	}
	return ps, nil
}
