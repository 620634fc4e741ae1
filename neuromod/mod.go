// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuromod

import (
	"github.com/striatal/msn/cell"
	"github.com/striatal/msn/density"
	"github.com/striatal/msn/params"
)

// Trajectory is a sampled modulation time course: Values[i] is the
// level at time i*Dt.  Driving a target with a trajectory simulates
// non-static modulation.
type Trajectory struct {
	Values []float32 `desc:"sampled levels"`
	Dt     float32   `desc:"sampling interval, ms"`
}

// Value returns the trajectory level at time t, clamping to the last
// sample after the trajectory ends.
func (tr *Trajectory) Value(t float32) float32 {
	if len(tr.Values) == 0 {
		return 0
	}
	i := int(t / tr.Dt)
	if i < 0 {
		i = 0
	}
	if i >= len(tr.Values) {
		i = len(tr.Values) - 1
	}
	return tr.Values[i]
}

// Plays selects which targets are driven by trajectories instead of
// being held at the full level of 1.  A nil trajectory leaves the
// target static.  For cholinergic kaf modulation in dmsn the Kaf entry
// drives the voltage shift rather than a level.
type Plays struct {
	Mechs map[density.Mechanism]*Trajectory `desc:"per-mechanism level trajectories"`
	Glut  *Trajectory                       `desc:"trajectory for AMPA and NMDA synapses"`
	GABA  *Trajectory                       `desc:"trajectory for GABA synapses"`
}

// driven is one trajectory-driven scalar target.
type driven struct {
	val  *float32
	traj *Trajectory
}

// Modulator is one applied neuromodulation: Apply writes the factors
// into the cell, Step refreshes trajectory-driven levels (the solver
// calls it each timestep), and Reset undoes the selected subset.
type Modulator interface {
	Apply()
	Step(t float32)
	Reset(rs ResetScope)
}

// slot1Neutral reports whether the dopaminergic slot of a mechanism
// has no effect.
func slot1Neutral(level float32) bool {
	return level == 0
}

// slot2Neutral reports whether the cholinergic slot of a mechanism has
// no effect.
func slot2Neutral(lev2, modShift float32) bool {
	return lev2 == 0 && modShift == 0
}

// targets returns the sections covered by a modulation scope.
func targets(ms *cell.MSN, sc Scope) []*cell.Section {
	if sc == All {
		return ms.Morph.Secs
	}
	var secs []*cell.Section
	for _, s := range ms.Morph.Secs {
		if s.Class != density.Axon {
			secs = append(secs, s)
		}
	}
	return secs
}

// Dopamine is dopaminergic modulation of one cell, writing modulation
// slot 1 (MaxMod / Level).  Construct with NewDopamine, adjust the
// exported fields, then Apply.
type Dopamine struct {
	Cell      *cell.MSN `desc:"the modulated cell"`
	Facs      Factors   `desc:"sampled modulation factors"`
	Scope     Scope     `def:"NoAxon" desc:"sections to modulate"`
	Intrinsic bool      `def:"true" desc:"modulate channel mechanisms"`
	Glut      bool      `def:"true" desc:"modulate AMPA and NMDA synapses"`
	GABA      bool      `def:"true" desc:"modulate GABA synapses"`
	Plays     Plays     `desc:"optional trajectory-driven levels"`

	driven []driven
}

// NewDopamine returns a dopaminergic modulation of the cell with the
// given factors and the standard defaults (no axon, all targets).
func NewDopamine(ms *cell.MSN, facs Factors) *Dopamine {
	return &Dopamine{Cell: ms, Facs: facs, Scope: NoAxon, Intrinsic: true, Glut: true, GABA: true}
}

// Apply writes the dopaminergic factors into every matching mechanism
// and synapse in scope.  Targets with a trajectory in Plays start at
// the trajectory's t=0 level and are registered for Step; all others
// are held at level 1.  Targets the cell does not have are skipped.
func (da *Dopamine) Apply() {
	da.driven = da.driven[:0]
	for _, sec := range targets(da.Cell, da.Scope) {
		for _, sg := range sec.Segs {
			if da.Intrinsic {
				for mc, f := range da.Facs.Intrinsic {
					mech := sg.Mech(mc)
					if mech == nil {
						continue
					}
					mech.Damod = 1
					mech.MaxMod = f
					da.setLevel(&mech.Level, da.Plays.Mechs[mc])
				}
			}
			for _, syn := range sg.Syns {
				switch syn.Kind {
				case cell.AMPA:
					if da.Glut {
						syn.Damod, syn.MaxMod = 1, da.Facs.AMPA
						da.setLevel(&syn.Level, da.Plays.Glut)
					}
				case cell.NMDA:
					if da.Glut {
						syn.Damod, syn.MaxMod = 1, da.Facs.NMDA
						da.setLevel(&syn.Level, da.Plays.Glut)
					}
				case cell.GABA:
					if da.GABA {
						syn.Damod, syn.MaxMod = 1, da.Facs.GABA
						da.setLevel(&syn.Level, da.Plays.GABA)
					}
				}
			}
		}
	}
}

func (da *Dopamine) setLevel(val *float32, traj *Trajectory) {
	if traj == nil {
		*val = 1
		return
	}
	*val = traj.Value(0)
	da.driven = append(da.driven, driven{val, traj})
}

// Step refreshes all trajectory-driven levels to time t.
func (da *Dopamine) Step(t float32) {
	for _, d := range da.driven {
		*d.val = d.traj.Value(t)
	}
}

// Reset zeroes the dopaminergic level of the selected targets and
// cancels their trajectories.  The shared enable switch clears only
// when the cholinergic slot is also neutral, so resetting one
// transmitter never silences the other.
func (da *Dopamine) Reset(rs ResetScope) {
	da.driven = da.driven[:0]
	for _, sec := range targets(da.Cell, da.Scope) {
		for _, sg := range sec.Segs {
			if rs == ResetAll || rs == ResetIntrinsic {
				for mc := range da.Facs.Intrinsic {
					mech := sg.Mech(mc)
					if mech == nil {
						continue
					}
					mech.Level = 0
					if slot2Neutral(mech.Lev2, mech.ModShift) {
						mech.Damod = 0
					}
				}
			}
			for _, syn := range sg.Syns {
				glut := syn.Kind == cell.AMPA || syn.Kind == cell.NMDA
				if (glut && (rs == ResetAll || rs == ResetGlut)) ||
					(syn.Kind == cell.GABA && (rs == ResetAll || rs == ResetGABA)) {
					syn.Level = 0
					if slot2Neutral(syn.Lev2, 0) {
						syn.Damod = 0
					}
				}
			}
		}
	}
}

// Acetylcholine is cholinergic modulation of one cell, writing
// modulation slot 2 (Max2 / Lev2) plus the dmsn-only kaf voltage
// shift.  Construct with NewAcetylcholine, adjust the exported fields,
// then Apply.
type Acetylcholine struct {
	Cell      *cell.MSN `desc:"the modulated cell"`
	Facs      Factors   `desc:"sampled modulation factors"`
	Scope     Scope     `def:"All" desc:"sections to modulate"`
	Intrinsic bool      `def:"true" desc:"modulate channel mechanisms"`
	Glut      bool      `def:"true" desc:"modulate AMPA and NMDA synapses"`
	GABA      bool      `def:"true" desc:"modulate GABA synapses"`
	Shift     float32   `def:"-10" desc:"kaf voltage-dependence shift, mV; dmsn only, 0 disables"`
	Plays     Plays     `desc:"optional trajectory-driven levels; the Kaf entry drives the shift"`

	driven []driven
}

// NewAcetylcholine returns a cholinergic modulation of the cell with
// the given factors and the standard defaults (all sections, all
// targets, -10 mV kaf shift).
func NewAcetylcholine(ms *cell.MSN, facs Factors) *Acetylcholine {
	return &Acetylcholine{Cell: ms, Facs: facs, Scope: All, Intrinsic: true, Glut: true, GABA: true, Shift: KafShift}
}

// Apply writes the cholinergic factors into every matching mechanism
// and synapse in scope, and shifts the kaf voltage dependence in dmsn.
// In dmsn the synaptic factors are neutral (1), so synapses are
// touched but unchanged in effect.
func (ac *Acetylcholine) Apply() {
	ac.driven = ac.driven[:0]
	dmsn := ac.Cell.Typ == params.DMSN
	for _, sec := range targets(ac.Cell, ac.Scope) {
		for _, sg := range sec.Segs {
			if ac.Intrinsic {
				for mc, f := range ac.Facs.Intrinsic {
					mech := sg.Mech(mc)
					if mech == nil {
						continue
					}
					mech.Damod = 1
					mech.Max2 = f
					ac.setLevel(&mech.Lev2, ac.Plays.Mechs[mc])
				}
			}
			if ac.Shift != 0 && dmsn {
				if kaf := sg.Mech(density.Kaf); kaf != nil {
					kaf.Damod = 1
					if traj := ac.Plays.Mechs[density.Kaf]; traj != nil {
						kaf.ModShift = traj.Value(0)
						ac.driven = append(ac.driven, driven{&kaf.ModShift, traj})
					} else {
						kaf.ModShift = ac.Shift
					}
				}
			}
			for _, syn := range sg.Syns {
				switch syn.Kind {
				case cell.AMPA:
					if ac.Glut {
						syn.Damod, syn.Max2 = 1, ac.Facs.AMPA
						ac.setLevel(&syn.Lev2, ac.Plays.Glut)
					}
				case cell.NMDA:
					if ac.Glut {
						syn.Damod, syn.Max2 = 1, ac.Facs.NMDA
						ac.setLevel(&syn.Lev2, ac.Plays.Glut)
					}
				case cell.GABA:
					if ac.GABA {
						syn.Damod, syn.Max2 = 1, ac.Facs.GABA
						ac.setLevel(&syn.Lev2, ac.Plays.GABA)
					}
				}
			}
		}
	}
}

func (ac *Acetylcholine) setLevel(val *float32, traj *Trajectory) {
	if traj == nil {
		*val = 1
		return
	}
	*val = traj.Value(0)
	ac.driven = append(ac.driven, driven{val, traj})
}

// Step refreshes all trajectory-driven levels (and a driven kaf shift)
// to time t.
func (ac *Acetylcholine) Step(t float32) {
	for _, d := range ac.driven {
		*d.val = d.traj.Value(t)
	}
}

// Reset zeroes the cholinergic level and shift of the selected targets
// and cancels their trajectories.  The shared enable switch clears
// only when the dopaminergic slot is also neutral.
func (ac *Acetylcholine) Reset(rs ResetScope) {
	ac.driven = ac.driven[:0]
	dmsn := ac.Cell.Typ == params.DMSN
	for _, sec := range targets(ac.Cell, ac.Scope) {
		for _, sg := range sec.Segs {
			if rs == ResetAll || rs == ResetIntrinsic {
				for mc := range ac.Facs.Intrinsic {
					mech := sg.Mech(mc)
					if mech == nil {
						continue
					}
					mech.Lev2 = 0
					if slot1Neutral(mech.Level) {
						mech.Damod = 0
					}
				}
				if dmsn {
					if kaf := sg.Mech(density.Kaf); kaf != nil {
						kaf.ModShift = 0
						if slot1Neutral(kaf.Level) && kaf.Lev2 == 0 {
							kaf.Damod = 0
						}
					}
				}
			}
			for _, syn := range sg.Syns {
				glut := syn.Kind == cell.AMPA || syn.Kind == cell.NMDA
				if (glut && (rs == ResetAll || rs == ResetGlut)) ||
					(syn.Kind == cell.GABA && (rs == ResetAll || rs == ResetGABA)) {
					syn.Lev2 = 0
					if slot1Neutral(syn.Level) {
						syn.Damod = 0
					}
				}
			}
		}
	}
}
