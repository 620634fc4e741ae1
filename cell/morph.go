// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"errors"
	"fmt"

	"github.com/striatal/msn/density"
)

// ErrMalformedMorphology is returned when the compartment tree is
// structurally invalid (not exactly one soma, or a parent chain that
// does not reach the soma).
var ErrMalformedMorphology = errors.New("malformed morphology")

// Mech is one ion channel mechanism instance within a segment: the
// typed handle the external solver reads, resolved once when the
// mechanism is inserted rather than re-parsed from a formatted name on
// every write.
type Mech struct {
	Typ      density.Mechanism `desc:"which mechanism this instance is"`
	Gbar     float32           `desc:"channel density: maximal conductance gbar, or maximal permeability pbar for calcium mechanisms"`
	Damod    float32           `desc:"modulation switch: 1 when any neuromodulation is enabled on this mechanism, 0 otherwise"`
	MaxMod   float32           `desc:"maximum dopaminergic modulation factor"`
	Level    float32           `desc:"dopaminergic modulation level in [0,1]: 0 = fully reset, 1 = full effect"`
	Max2     float32           `desc:"maximum cholinergic modulation factor"`
	Lev2     float32           `desc:"cholinergic modulation level in [0,1]"`
	ModShift float32           `desc:"shift in the voltage dependence of the channel, in mV (cholinergic kaf modulation)"`
}

// Segment is one point on a section: the unit of spatial discretization
// that carries the per-mechanism scalar parameters the external solver
// consults on each integration step.
type Segment struct {
	Sec   *Section                    `desc:"owning section"`
	X     float32                     `desc:"position along the section, in [0,1]"`
	Dist  float32                     `desc:"somatic distance: path length to the soma origin, in um"`
	PasG  float32                     `desc:"passive leak conductance, S/cm2"`
	PasE  float32                     `desc:"passive reversal potential, mV"`
	Mechs map[density.Mechanism]*Mech `desc:"installed mechanism instances"`
	Syns  []*Synapse                  `desc:"point-process synapses attached to this segment"`
}

// Mech returns the mechanism instance installed in this segment, or
// nil if the mechanism is not present here.
func (sg *Segment) Mech(mc density.Mechanism) *Mech {
	return sg.Mechs[mc]
}

// Section is one compartment of the cell: an unbranched cable with a
// class, a length, and the passive properties shared by its segments.
type Section struct {
	Name    string                   `desc:"section name, e.g. dend[3]"`
	Class   density.CompartmentClass `desc:"compartment class: soma, dend or axon"`
	L       float32                  `desc:"section length, um"`
	Ra      float32                  `desc:"axial resistance, ohm cm"`
	Cm      float32                  `desc:"membrane capacitance, uF/cm2"`
	Ena     float32                  `desc:"sodium reversal potential, mV"`
	Ek      float32                  `desc:"potassium reversal potential, mV"`
	Parent  *Section                 `desc:"parent section, nil for the root (soma)"`
	ParentX float32                  `desc:"position on the parent where this section attaches"`
	Segs    []*Segment               `desc:"segments, allocated by Discretize"`
}

// NewSection returns a section of the given class and length.
func NewSection(name string, class density.CompartmentClass, length float32) *Section {
	return &Section{Name: name, Class: class, L: length}
}

// NSeg returns the number of segments in this section.
func (sc *Section) NSeg() int {
	return len(sc.Segs)
}

// Discretize allocates nseg segments at positions (i+0.5)/nseg along
// the section.  Existing segments (and anything attached to them) are
// discarded.
func (sc *Section) Discretize(nseg int) {
	sc.Segs = make([]*Segment, nseg)
	for i := range sc.Segs {
		sc.Segs[i] = &Segment{
			Sec:   sc,
			X:     (float32(i) + 0.5) / float32(nseg),
			Mechs: map[density.Mechanism]*Mech{},
		}
	}
}

// Seg returns the segment containing position x in [0,1].
func (sc *Section) Seg(x float32) *Segment {
	n := len(sc.Segs)
	i := int(x * float32(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return sc.Segs[i]
}

// Morphology is the compartment tree of one cell, as produced by an
// external reconstruction / geometry collaborator.  The core consumes
// section classes, lengths and the somatic distance query; it never
// reads the underlying 3D points.
type Morphology struct {
	Secs []*Section `desc:"all sections; parent links define the tree"`
}

// NewMorphology returns a morphology over the given sections.
func NewMorphology(secs ...*Section) *Morphology {
	return &Morphology{Secs: secs}
}

// Soma returns the single soma section.  There must be exactly one.
func (mo *Morphology) Soma() (*Section, error) {
	var soma *Section
	n := 0
	for _, sec := range mo.Secs {
		if sec.Class == density.Soma {
			soma = sec
			n++
		}
	}
	if n != 1 {
		return nil, fmt.Errorf("%w: found %d soma sections, need exactly 1", ErrMalformedMorphology, n)
	}
	return soma, nil
}

// Class returns all sections of the given compartment class.
func (mo *Morphology) Class(cc density.CompartmentClass) []*Section {
	var secs []*Section
	for _, sec := range mo.Secs {
		if sec.Class == cc {
			secs = append(secs, sec)
		}
	}
	return secs
}

// DistanceFromSoma is the geometric distance query: the path length in
// um from the point (sec, x) to the soma 0-end, along the tree.
// It is monotonic and non-negative along any path away from the soma.
func (mo *Morphology) DistanceFromSoma(sec *Section, x float32) float32 {
	d := x * sec.L
	for s := sec; s.Parent != nil; s = s.Parent {
		d += s.ParentX * s.Parent.L
	}
	return d
}

// checkTree validates that every parent chain terminates (no cycles).
func (mo *Morphology) checkTree() error {
	max := len(mo.Secs)
	for _, sec := range mo.Secs {
		n := 0
		for s := sec; s.Parent != nil; s = s.Parent {
			n++
			if n > max {
				return fmt.Errorf("%w: parent cycle at section %s", ErrMalformedMorphology, sec.Name)
			}
		}
	}
	return nil
}

// StylizedMorph returns a stylized MSN morphology, standing in for a
// reconstructed (SWC) tree when one is not available: a soma, a
// two-section axon, and nDend primary dendrites each continuing into a
// secondary and a tertiary branch.  All sections attach to their
// parent's 1-end except at the soma midpoint.
func StylizedMorph(nDend int) *Morphology {
	soma := NewSection("soma[0]", density.Soma, 15)

	ais := NewSection("axon[0]", density.Axon, 30)
	ais.Parent, ais.ParentX = soma, 0.5
	ax := NewSection("axon[1]", density.Axon, 200)
	ax.Parent, ax.ParentX = ais, 1

	secs := []*Section{soma, ais, ax}
	k := 0
	for i := 0; i < nDend; i++ {
		prim := NewSection(fmt.Sprintf("dend[%d]", k), density.Dend, 25)
		prim.Parent, prim.ParentX = soma, 0.5
		sec := NewSection(fmt.Sprintf("dend[%d]", k+1), density.Dend, 60)
		sec.Parent, sec.ParentX = prim, 1
		ter := NewSection(fmt.Sprintf("dend[%d]", k+2), density.Dend, 120)
		ter.Parent, ter.ParentX = sec, 1
		secs = append(secs, prim, sec, ter)
		k += 3
	}
	return NewMorphology(secs...)
}
