// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package cell assembles one striatal medium spiny neuron: it takes a
morphology tree and a fitted parameter store and produces a cell whose
segments carry the compartment-specific, distance-resolved channel
densities, ready for an external numerical solver to integrate.
*/
package cell

import (
	"errors"
	"fmt"

	"github.com/goki/ki/kit"
	"github.com/striatal/msn/density"
	"github.com/striatal/msn/params"
)

// ErrUnknownCompartment is returned when a section carries a
// compartment class the mechanism tables do not cover.
var ErrUnknownCompartment = errors.New("unknown compartment class")

// BuildState tracks the assembly stage a cell has reached.  Stages run
// in a fixed order and a failure leaves the cell in the last completed
// state.
type BuildState int

//go:generate stringer -type=BuildState

const (
	// Uninitialized is a freshly allocated cell.
	Uninitialized BuildState = iota

	// MorphologyLoaded: the tree is validated and discretized, and
	// somatic distances are recorded per segment.
	MorphologyLoaded

	// MechanismsInserted: every segment carries the mechanism set of
	// its compartment class.
	MechanismsInserted

	// BiophysicsSet: passive and reversal parameters are in place.
	BiophysicsSet

	// DensityApplied: per-segment channel densities are resolved.
	DensityApplied

	// Ready: assembly complete.
	Ready

	BuildStateN
)

var KiT_BuildState = kit.Enums.AddEnum(BuildStateN, kit.NotBitFlag, nil)

// Standard biophysical constants, shared by both cell types.
const (
	// AxialResistance is the cytoplasmic resistivity, ohm cm.
	AxialResistance = 150

	// MembCapacitance is the specific membrane capacitance, uF/cm2.
	MembCapacitance = 1

	// EPas is the passive leak reversal potential, mV.
	EPas = -70

	// ENa is the sodium reversal potential, mV.
	ENa = 50

	// EK is the potassium reversal potential, mV.
	EK = -85

	// VInitDefault is the initialization voltage, mV.
	VInitDefault = -80

	// CelsiusDefault is the simulation temperature, deg C.
	CelsiusDefault = 35

	// AxonNSeg is the fixed segment count for axonal sections, which
	// are kept deliberately coarse.
	AxonNSeg = 2

	// SegRule is the denominator of the odd-segment discretization
	// rule nseg = 2*floor(L/SegRule)+1 for soma and dendrites.
	SegRule = 40
)

// Mechanism sets per compartment class.  The axon carries only the
// spike-initiation channels; the soma adds the full somatodendritic
// complement minus the T-type calcium channels, which are dendritic.
var (
	dendMechs = []density.Mechanism{
		density.Naf, density.Kaf, density.Kas, density.Kdr, density.Kir,
		density.SK, density.BK, density.CaN, density.Cav32, density.Cav33,
		density.CaL12, density.CaL13, density.CaR,
		density.CaDyn, density.CalDyn,
	}
	somaMechs = []density.Mechanism{
		density.Naf, density.Kaf, density.Kas, density.Kdr, density.Kir,
		density.SK, density.BK, density.CaN,
		density.CaL12, density.CaL13, density.CaR,
		density.CaDyn, density.CalDyn,
	}
	axonMechs = []density.Mechanism{
		density.Naf, density.Kas, density.KM,
	}
)

// classMechs returns the mechanism set for a compartment class.
func classMechs(cc density.CompartmentClass) ([]density.Mechanism, error) {
	switch cc {
	case density.Dend:
		return dendMechs, nil
	case density.Soma:
		return somaMechs, nil
	case density.Axon:
		return axonMechs, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCompartment, cc)
}

// MSN is one assembled medium spiny neuron.  It exclusively owns the
// morphology passed to New: callers must not share one Morphology
// between cells.
type MSN struct {
	Typ        params.CellType        `desc:"cell type: DMSN or IMSN"`
	Index      int                    `desc:"fitted cell index within the type"`
	Rheobase   float32                `desc:"fitted rheobase current, pA"`
	VInit      float32                `def:"-80" desc:"initialization voltage, mV"`
	Celsius    float32                `def:"35" desc:"simulation temperature, deg C"`
	DistParams []params.DensityParams `view:"no-inline" desc:"resolved distribution directives for this cell"`
	Morph      *Morphology            `desc:"the compartment tree, owned by this cell"`
	Soma       *Section               `desc:"the single soma section"`
	State      BuildState             `inactive:"+" desc:"assembly stage reached"`

	bgNoise []*SynInput
}

// New assembles a cell of the given type and fitted index from the
// store, on the given morphology.  The stages run in order; any error
// aborts assembly with the cell left in its last completed state.
func New(st *params.Store, morph *Morphology, ct params.CellType, idx int) (*MSN, error) {
	dps, err := st.DensityParams(ct, idx)
	if err != nil {
		return nil, err
	}
	rheo, err := st.Rheobase(ct, idx)
	if err != nil {
		return nil, err
	}
	ms := &MSN{
		Typ:        ct,
		Index:      idx,
		Rheobase:   rheo,
		VInit:      VInitDefault,
		Celsius:    CelsiusDefault,
		DistParams: dps,
		Morph:      morph,
		State:      Uninitialized,
	}
	if err := ms.loadMorphology(); err != nil {
		return ms, err
	}
	if err := ms.insertMechanisms(); err != nil {
		return ms, err
	}
	if err := ms.setBiophysics(st); err != nil {
		return ms, err
	}
	if err := ms.applyDensity(); err != nil {
		return ms, err
	}
	ms.State = Ready
	return ms, nil
}

// Name returns the display name of the cell, e.g. dmsn[12].
func (ms *MSN) Name() string {
	return fmt.Sprintf("%s[%d]", ms.Typ.TypeName(), ms.Index)
}

// loadMorphology validates the tree, discretizes every section, and
// records the somatic distance at each segment center.
func (ms *MSN) loadMorphology() error {
	soma, err := ms.Morph.Soma()
	if err != nil {
		return err
	}
	if err := ms.Morph.checkTree(); err != nil {
		return err
	}
	ms.Soma = soma
	for _, sec := range ms.Morph.Secs {
		nseg := AxonNSeg
		if sec.Class != density.Axon {
			nseg = 2*int(sec.L/SegRule) + 1
		}
		sec.Discretize(nseg)
		for _, sg := range sec.Segs {
			sg.Dist = ms.Morph.DistanceFromSoma(sec, sg.X)
		}
	}
	ms.State = MorphologyLoaded
	return nil
}

// insertMechanisms installs the class mechanism set into every segment.
func (ms *MSN) insertMechanisms() error {
	for _, sec := range ms.Morph.Secs {
		mechs, err := classMechs(sec.Class)
		if err != nil {
			return fmt.Errorf("section %s: %w", sec.Name, err)
		}
		for _, sg := range sec.Segs {
			for _, mc := range mechs {
				sg.Mechs[mc] = &Mech{Typ: mc}
			}
		}
	}
	ms.State = MechanismsInserted
	return nil
}

// setBiophysics applies the passive and reversal parameters.  The leak
// conductance is the one per-type fitted passive value from the store.
func (ms *MSN) setBiophysics(st *params.Store) error {
	gpas, err := st.PeakConductance(ms.Typ, density.Pas, density.Soma)
	if err != nil {
		return err
	}
	for _, sec := range ms.Morph.Secs {
		sec.Ra = AxialResistance
		sec.Cm = MembCapacitance
		sec.Ena = ENa
		sec.Ek = EK
		for _, sg := range sec.Segs {
			sg.PasG = gpas
			sg.PasE = EPas
		}
	}
	ms.State = BiophysicsSet
	return nil
}

// applyDensity resolves every distribution directive at every segment
// of its compartment class and writes the result into the installed
// mechanism instance.
func (ms *MSN) applyDensity() error {
	for _, dp := range ms.DistParams {
		for _, sec := range ms.Morph.Class(dp.Compartment) {
			for _, sg := range sec.Segs {
				den, err := density.Resolve(sg.Dist, dp.Compartment, dp.Mechanism, dp.Args, dp.Peak)
				if err != nil {
					return fmt.Errorf("%s section %s x %g: %w", ms.Name(), sec.Name, sg.X, err)
				}
				mech := sg.Mech(dp.Mechanism)
				if mech == nil {
					return fmt.Errorf("%s section %s: mechanism %s not installed in %s",
						ms.Name(), sec.Name, dp.Mechanism.MechName(), dp.Compartment.ClassName())
				}
				mech.Gbar = den
			}
		}
	}
	ms.State = DensityApplied
	return nil
}

// Segs calls fn for every segment of every section of the given class.
func (ms *MSN) Segs(cc density.CompartmentClass, fn func(sg *Segment)) {
	for _, sec := range ms.Morph.Class(cc) {
		for _, sg := range sec.Segs {
			fn(sg)
		}
	}
}

// AllSegs calls fn for every segment of the cell.
func (ms *MSN) AllSegs(fn func(sg *Segment)) {
	for _, sec := range ms.Morph.Secs {
		for _, sg := range sec.Segs {
			fn(sg)
		}
	}
}
