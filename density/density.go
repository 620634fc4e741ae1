// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package density computes distance-dependent ion channel densities for
the MSN model.  Channel density (peak conductance gbar, or peak
permeability pbar for calcium mechanisms) is a function of somatic
distance, following sigmoidal, step, or uniform profiles; see Table 2 in
Lindroos et al. (2018) and Table 1 in Lindroos & Hellgren Kotaleski
(2020).  The profile parameters are named p0..p3 following that same
table convention.

Which profile applies is determined by the (compartment, mechanism)
pair, via a fixed dispatch table built into Resolve.
*/
package density

import (
	"errors"

	"github.com/goki/ki/kit"
)

// CompartmentClass is the class of a cell compartment, which determines
// the mechanism set inserted into it and the density profile family
// used for its channels.
type CompartmentClass int

//go:generate stringer -type=CompartmentClass

var KiT_CompartmentClass = kit.Enums.AddEnum(CompartmentClassN, kit.NotBitFlag, nil)

func (ev CompartmentClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CompartmentClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Soma is the cell body -- exactly one per cell
	Soma CompartmentClass = iota

	// Dend is a dendritic compartment
	Dend

	// Axon is an axonal compartment
	Axon

	CompartmentClassN
)

// classNames are the compartment names used in parameter tables and
// section names ("soma", "dend", "axon").
var classNames = [CompartmentClassN]string{"soma", "dend", "axon"}

// ClassName returns the lowercase compartment name used in parameter
// tables and section naming.
func (cc CompartmentClass) ClassName() string {
	if cc < 0 || cc >= CompartmentClassN {
		return ""
	}
	return classNames[cc]
}

// ClassFromName returns the CompartmentClass for a table / section name.
func ClassFromName(nm string) (CompartmentClass, error) {
	for cc, cn := range classNames {
		if nm == cn {
			return CompartmentClass(cc), nil
		}
	}
	return CompartmentClassN, errors.New("density.ClassFromName: unknown compartment name: " + nm)
}

// Mechanism identifies one of the ion channel (or calcium dynamics)
// mechanisms of the MSN model.
type Mechanism int

//go:generate stringer -type=Mechanism

var KiT_Mechanism = kit.Enums.AddEnum(MechanismN, kit.NotBitFlag, nil)

func (ev Mechanism) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Mechanism) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Naf is the fast sodium channel
	Naf Mechanism = iota

	// Kaf is the fast A-type potassium channel (Kv4.2)
	Kaf

	// Kas is the slow A-type potassium channel (Kv1.2)
	Kas

	// Kdr is the delayed rectifier potassium channel
	Kdr

	// Kir is the inward rectifier potassium channel
	Kir

	// SK is the small-conductance calcium-activated potassium channel
	SK

	// BK is the large-conductance calcium-activated potassium channel
	BK

	// CaN is the N-type calcium channel (Cav2.2)
	CaN

	// Cav32 is the low-threshold T-type calcium channel Cav3.2
	Cav32

	// Cav33 is the low-threshold T-type calcium channel Cav3.3
	Cav33

	// CaL12 is the L-type calcium channel Cav1.2
	CaL12

	// CaL13 is the L-type calcium channel Cav1.3
	CaL13

	// CaR is the R-type calcium channel (Cav2.3)
	CaR

	// KM is the muscarine-sensitive potassium channel (Kv7, also "Im")
	KM

	// Pas is the passive leak conductance
	Pas

	// CaDyn is the intracellular calcium dynamics mechanism for
	// N-, R- and T-type channels (no density profile)
	CaDyn

	// CalDyn is the intracellular calcium dynamics mechanism for
	// L-type channels (no density profile)
	CalDyn

	MechanismN
)

// MechKind distinguishes how a mechanism's density parameter is
// expressed at the solver boundary.
type MechKind int

//go:generate stringer -type=MechKind

var KiT_MechKind = kit.Enums.AddEnum(MechKindN, kit.NotBitFlag, nil)

const (
	// Conductance mechanisms have a maximal conductance, gbar
	Conductance MechKind = iota

	// Permeability mechanisms (calcium channels) have a maximal
	// permeability, pbar
	Permeability

	// Dynamics mechanisms (intracellular calcium pools) have no
	// density parameter at all
	Dynamics

	MechKindN
)

// mechNames are the mechanism names used by the external solver and in
// parameter tables.
var mechNames = [MechanismN]string{
	"naf", "kaf", "kas", "kdr", "kir", "sk", "bk", "can", "cav32",
	"cav33", "cal12", "cal13", "car", "km", "pas", "cadyn", "caldyn",
}

// mechKinds is an explicit table rather than a name-prefix convention:
// calcium channel mechanisms are Permeability, calcium pools are
// Dynamics, everything else is Conductance.
var mechKinds = [MechanismN]MechKind{
	Naf:    Conductance,
	Kaf:    Conductance,
	Kas:    Conductance,
	Kdr:    Conductance,
	Kir:    Conductance,
	SK:     Conductance,
	BK:     Conductance,
	CaN:    Permeability,
	Cav32:  Permeability,
	Cav33:  Permeability,
	CaL12:  Permeability,
	CaL13:  Permeability,
	CaR:    Permeability,
	KM:     Conductance,
	Pas:    Conductance,
	CaDyn:  Dynamics,
	CalDyn: Dynamics,
}

// MechName returns the lowercase mechanism name used by the external
// solver and in parameter tables (e.g. "naf", "cav32").
func (mc Mechanism) MechName() string {
	if mc < 0 || mc >= MechanismN {
		return ""
	}
	return mechNames[mc]
}

// Kind returns whether this mechanism is parameterized by a maximal
// conductance (gbar), a maximal permeability (pbar), or nothing.
func (mc Mechanism) Kind() MechKind {
	if mc < 0 || mc >= MechanismN {
		return MechKindN
	}
	return mechKinds[mc]
}

// RangeVarName returns the name of the per-segment scalar the external
// solver reads for this mechanism's density: "gbar_<mech>" for
// conductance mechanisms and "pbar_<mech>" for permeability ones.
// Dynamics mechanisms return "".
func (mc Mechanism) RangeVarName() string {
	switch mc.Kind() {
	case Conductance:
		return "gbar_" + mc.MechName()
	case Permeability:
		return "pbar_" + mc.MechName()
	}
	return ""
}

// mechAliases map legacy parameter-file names onto mechanisms: the
// fitted parameter sets name the Cav3.2 and Cav3.3 currents "c32" and
// "c33", and some sources call the M-current "Im".
var mechAliases = map[string]Mechanism{
	"c32": Cav32,
	"c33": Cav33,
	"Im":  KM,
}

// MechFromName returns the Mechanism for a solver / parameter-table
// name, accepting the legacy aliases "c32", "c33" and "Im".
func MechFromName(nm string) (Mechanism, error) {
	for mc, mn := range mechNames {
		if nm == mn {
			return Mechanism(mc), nil
		}
	}
	if mc, ok := mechAliases[nm]; ok {
		return mc, nil
	}
	return MechanismN, errors.New("density.MechFromName: unknown mechanism name: " + nm)
}
