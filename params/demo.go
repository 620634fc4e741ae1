// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"github.com/emer/emergent/v2/erand"
	"github.com/striatal/msn/density"
)

// demoCond are the synthetic peak conductance rows used by DemoStore.
// The magnitudes are in the physiological range of the published MSN
// model but are stand-ins, not the fitted dataset values.
var demoCond = []struct {
	Mech density.Mechanism
	Comp string
	Cell string
	Val  float64
}{
	{density.Naf, "soma", "all", 1.5},
	{density.Kaf, "soma", "all", 0.5},
	{density.Kas, "soma", "all", 0.1},
	{density.Kdr, "soma", "all", 0.01},
	{density.Kir, "soma", "all", 1.5e-4},
	{density.SK, "soma", "all", 5e-5},
	{density.BK, "soma", "all", 1e-4},
	{density.CaN, "soma", "all", 3e-5},
	{density.CaL12, "soma", "all", 1e-5},
	{density.CaL13, "soma", "all", 1e-6},
	{density.CaR, "soma", "all", 1e-4},

	{density.Naf, "dend", "all", 0.015},
	{density.Kaf, "dend", "all", 0.5},
	{density.Kas, "dend", "all", 0.01},
	{density.Kir, "dend", "all", 1.5e-4},
	{density.SK, "dend", "all", 1e-5},
	{density.CaN, "dend", "all", 1e-5},
	{density.Cav32, "dend", "all", 1e-7},
	{density.Cav33, "dend", "all", 1e-8},
	{density.Kdr, "dend", "all", 0.005},
	{density.CaL12, "dend", "all", 1e-5},
	{density.CaL13, "dend", "all", 1e-6},
	{density.CaR, "dend", "all", 1e-4},
	{density.BK, "dend", "all", 1e-4},

	{density.Naf, "axon", "all", 2},
	{density.Kas, "axon", "all", 0.2},
	{density.KM, "axon", "all", 0.01},

	{density.Pas, "all", "dmsn", 1.25e-5},
	{density.Pas, "all", "imsn", 1.15e-5},
}

// demoVarRanges give the uniform sampling ranges for the fitted shape
// arguments in the synthetic cell sets, chosen so that every density
// profile stays non-negative at all distances.
var demoVarRanges = map[density.Mechanism][][2]float64{
	density.Naf:   {{-0.1, 0.1}, {0.6, 0.95}, {20, 50}, {5, 15}},
	density.Kaf:   {{-0.1, 0.1}, {0.5, 1.5}, {100, 130}, {20, 40}},
	density.Kas:   {{-0.1, 0.1}, {40, 70}, {5, 20}},
	density.Kir:   {{-0.2, 0.2}},
	density.SK:    {{-0.2, 0.2}},
	density.CaN:   {{-4.5, -3.8}, {0.7, 1.0}, {20, 40}, {5, 15}},
	density.Cav32: {{-8, -6}, {60, 80}, {-50, -20}},
	density.Cav33: {{-9, -7}, {60, 80}, {-50, -20}},
}

// demoFitted is the order the fitted mechanisms are sampled in, for
// reproducibility.
var demoFitted = []density.Mechanism{
	density.Naf, density.Kaf, density.Kas, density.Kir, density.SK,
	density.CaN, density.Cav32, density.Cav33,
}

// demoRheob are the rheobase sampling ranges per cell type, in pA.
var demoRheob = [CellTypeN][2]float64{{150, 350}, {60, 200}}

// DemoStore returns a deterministic synthetic parameter store covering
// the full 71 dmsn + 34 imsn index ranges, for tests and the bundled
// examples when the fitted Lindroos dataset files are not available.
// The same seed always produces the same store.
func DemoStore() *Store {
	rnd := erand.NewSysRand(42)

	dt := NewConductances(len(demoCond))
	for i, cd := range demoCond {
		dt.SetCellString("Mechanism", i, cd.Mech.MechName())
		dt.SetCellString("Compartment", i, cd.Comp)
		dt.SetCellString("Cell", i, cd.Cell)
		dt.SetCellFloat("Value", i, cd.Val)
	}

	cells := map[CellType][]CellParams{}
	for ct := CellType(0); ct < CellTypeN; ct++ {
		cs := make([]CellParams, ct.NCells())
		for i := range cs {
			vars := make(map[density.Mechanism][]float32, len(demoFitted))
			for _, mech := range demoFitted {
				rngs := demoVarRanges[mech]
				args := make([]float32, len(rngs))
				for j, rg := range rngs {
					args[j] = float32(erand.UniformMinMax(rg[0], rg[1], -1, rnd))
				}
				vars[mech] = args
			}
			rb := demoRheob[ct]
			cs[i] = CellParams{
				Rheobase:  float32(erand.UniformMinMax(rb[0], rb[1], -1, rnd)),
				Variables: vars,
			}
		}
		cells[ct] = cs
	}
	return NewStore(cells, dt)
}
