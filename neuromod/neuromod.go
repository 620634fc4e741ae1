// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuromod applies dopaminergic (DA) and cholinergic (ACh)
neuromodulation to an assembled medium spiny neuron.  Modulation is a
per-target scaling of channel and synaptic conductances: each mechanism
and synapse carries two independent modulation slots, slot 1 for DA
(MaxMod / Level) and slot 2 for ACh (Max2 / Lev2), sharing one enable
switch (Damod).  The external solver folds the slots into its
conductance as

	g * (1 + damod*((maxMod-1)*level + (max2-1)*lev2))

so a level of 0 is always a no-op even while the switch is on.
*/
package neuromod

import (
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/minmax"
	"github.com/goki/ki/kit"
	"github.com/striatal/msn/density"
	"github.com/striatal/msn/params"
)

// Transmitter is the modulating neurotransmitter.
type Transmitter int

//go:generate stringer -type=Transmitter

const (
	// DA is dopamine, modulation slot 1.
	DA Transmitter = iota

	// ACh is acetylcholine, modulation slot 2.
	ACh

	TransmitterN
)

var KiT_Transmitter = kit.Enums.AddEnum(TransmitterN, kit.NotBitFlag, nil)

// Scope selects which sections of the cell are modulated.
type Scope int

//go:generate stringer -type=Scope

const (
	// NoAxon modulates the soma and dendrites only.  This is the
	// dopamine default.
	NoAxon Scope = iota

	// All modulates every section.  This is the acetylcholine default.
	All

	ScopeN
)

var KiT_Scope = kit.Enums.AddEnum(ScopeN, kit.NotBitFlag, nil)

// ResetScope selects which part of an applied modulation to reset.
type ResetScope int

//go:generate stringer -type=ResetScope

const (
	// ResetAll resets intrinsic and synaptic modulation.
	ResetAll ResetScope = iota

	// ResetIntrinsic resets only the channel mechanisms.
	ResetIntrinsic

	// ResetGlut resets only the AMPA and NMDA synapses.
	ResetGlut

	// ResetGABA resets only the GABA synapses.
	ResetGABA

	ResetScopeN
)

var KiT_ResetScope = kit.Enums.AddEnum(ResetScopeN, kit.NotBitFlag, nil)

// Factors is one sampled set of modulation factors: the maximum
// multiplicative change per intrinsic mechanism and per synaptic
// receptor.  A factor of 1 is no modulation.
type Factors struct {
	Intrinsic map[density.Mechanism]float32 `desc:"per-mechanism maximum modulation factors"`
	AMPA      float32                       `desc:"AMPA receptor factor"`
	NMDA      float32                       `desc:"NMDA receptor factor"`
	GABA      float32                       `desc:"GABA receptor factor"`
}

// synRange is the synaptic factor sampling ranges for one (cell type,
// transmitter) pair.
type synRange struct {
	AMPA, NMDA, GABA minmax.F32
}

// fixed returns a degenerate range [v, v].
func fixed(v float32) minmax.F32 {
	return minmax.F32{Min: v, Max: v}
}

// Intrinsic factor ranges per cell type and transmitter, Table 3 of
// Lindroos & Hellgren Kotaleski (2020).  Mechanisms absent from a
// table are not modulated by that transmitter.  Cholinergic kaf
// modulation in dmsn is a voltage shift, not a factor, so kaf does not
// appear in the dmsn ACh table.
var intrinsicRanges = map[params.CellType]map[Transmitter]map[density.Mechanism]minmax.F32{
	params.DMSN: {
		DA: {
			density.Naf:   {Min: 0.6, Max: 0.8},
			density.Kaf:   {Min: 0.75, Max: 0.85},
			density.Kas:   {Min: 0.65, Max: 0.85},
			density.Kir:   {Min: 0.85, Max: 1.25},
			density.CaL12: {Min: 1, Max: 2},
			density.CaL13: {Min: 1, Max: 2},
			density.CaN:   {Min: 0.2, Max: 1},
		},
		ACh: {
			density.Naf:   {Min: 1, Max: 1.2},
			density.Kir:   {Min: 0.8, Max: 1},
			density.CaL12: {Min: 0.3, Max: 0.7},
			density.CaL13: {Min: 0.3, Max: 0.7},
			density.CaN:   {Min: 0.65, Max: 0.85},
			density.KM:    {Min: 0, Max: 0.4},
		},
	},
	params.IMSN: {
		DA: {
			density.Naf:   {Min: 0.95, Max: 1.1},
			density.Kaf:   {Min: 1, Max: 1.1},
			density.Kas:   {Min: 1, Max: 1.1},
			density.Kir:   {Min: 0.8, Max: 1},
			density.CaL12: {Min: 0.7, Max: 0.8},
			density.CaL13: {Min: 0.7, Max: 0.8},
			density.CaN:   {Min: 0.9, Max: 1},
			density.CaR:   {Min: 0.6, Max: 0.8},
		},
		ACh: {
			density.Naf:   {Min: 1, Max: 1.2},
			density.Kir:   {Min: 0.5, Max: 0.7},
			density.CaL12: {Min: 0.3, Max: 0.7},
			density.CaL13: {Min: 0.3, Max: 0.7},
			density.CaN:   {Min: 0.65, Max: 0.85},
			density.KM:    {Min: 0, Max: 0.4},
		},
	},
}

// Synaptic factor ranges.  Dopaminergic synaptic factors in dmsn are
// fixed, not sampled; cholinergic synaptic factors in dmsn are neutral
// (ACh has no reported synaptic effect in dmsn).
var synRanges = map[params.CellType]map[Transmitter]synRange{
	params.DMSN: {
		DA:  {AMPA: fixed(1.2), NMDA: fixed(1.3), GABA: fixed(0.8)},
		ACh: {AMPA: fixed(1), NMDA: fixed(1), GABA: fixed(1)},
	},
	params.IMSN: {
		DA: {
			AMPA: minmax.F32{Min: 0.7, Max: 0.9},
			NMDA: minmax.F32{Min: 0.85, Max: 1.05},
			GABA: minmax.F32{Min: 0.9, Max: 1.1},
		},
		ACh: {
			AMPA: minmax.F32{Min: 0.99, Max: 1.01},
			NMDA: minmax.F32{Min: 1, Max: 1.05},
			GABA: minmax.F32{Min: 0.99, Max: 1.01},
		},
	},
}

// KafShift is the default cholinergic shift in the kaf voltage
// dependence, mV, dmsn only.
const KafShift = -10

// sample draws uniformly from a range; a degenerate range returns its
// value without consuming randomness, so fixed factors do not perturb
// the stream.
func sample(rg minmax.F32, rnd erand.Rand) float32 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return float32(erand.UniformMinMax(float64(rg.Min), float64(rg.Max), -1, rnd))
}

// SampleFactors draws one set of modulation factors for the given cell
// type and transmitter from the documented ranges.  Mechanisms are
// sampled in enum order for reproducibility under a seeded source.
func SampleFactors(ct params.CellType, tr Transmitter, rnd erand.Rand) Factors {
	rgs := intrinsicRanges[ct][tr]
	fc := Factors{Intrinsic: make(map[density.Mechanism]float32, len(rgs))}
	for mc := density.Mechanism(0); mc < density.MechanismN; mc++ {
		if rg, ok := rgs[mc]; ok {
			fc.Intrinsic[mc] = sample(rg, rnd)
		}
	}
	sr := synRanges[ct][tr]
	fc.AMPA = sample(sr.AMPA, rnd)
	fc.NMDA = sample(sr.NMDA, rnd)
	fc.GABA = sample(sr.GABA, rnd)
	return fc
}
