// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instr

import (
	"errors"
	"math"

	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etable"
	"github.com/striatal/msn/cell"
	"github.com/striatal/msn/neuromod"
)

// ErrNotInitialized is returned by Run before Init has bound a cell.
var ErrNotInitialized = errors.New("solver not initialized")

// PointSolver is the reference single-point integrate-and-fire solver.
// It collapses the cell to one leaky compartment whose leak is
// calibrated so that the fitted rheobase current is exactly threshold:
// a step just above rheobase spikes, a step just below does not.
// Synaptic inputs arrive as instantaneous voltage kicks scaled by the
// synapse's modulation state; channel mechanisms are not integrated
// (that is the external cable solver's job).
type PointSolver struct {
	Dt      float32 `def:"0.025" desc:"integration timestep, ms"`
	Thr     float32 `def:"-40" desc:"spike threshold, mV"`
	VPeak   float32 `def:"30" desc:"spike artifact peak, mV"`
	VReset  float32 `def:"-55" desc:"post-spike reset potential, mV"`
	TauM    float32 `def:"10" desc:"membrane time constant, ms"`
	SynGain float32 `def:"10000" desc:"voltage kick per uS of synaptic weight, mV/uS"`

	Rnd    erand.Rand           `view:"-" desc:"random source for Poisson spike trains; seeded SysRand when nil"`
	Stims  []Stim               `desc:"current-clamp stimuli"`
	Inputs []*cell.SynInput     `desc:"driven synaptic inputs to integrate"`
	Mods   []neuromod.Modulator `desc:"modulators stepped each timestep"`

	ms    *cell.MSN
	gl    float32
	el    float32
	vm    float32
	time  float32
	trace *etable.Table
	ins   []inputState
}

// inputState is the spike-train generator state for one input.
type inputState struct {
	in   *cell.SynInput
	next float32
	left int
}

// NewPointSolver returns a point solver with default parameters.
func NewPointSolver() *PointSolver {
	ps := &PointSolver{}
	ps.Defaults()
	return ps
}

// Defaults sets the standard solver parameters.
func (ps *PointSolver) Defaults() {
	ps.Dt = 0.025
	ps.Thr = -40
	ps.VPeak = 30
	ps.VReset = -55
	ps.TauM = 10
	ps.SynGain = 10000
}

// Init binds the solver to a cell, calibrates the leak from the cell's
// rheobase, and resets time, voltage, trace and generator state.
// Attach stimuli, inputs and modulators before or after Init; the
// generator state of inputs attached after Init is picked up on the
// next Init.
func (ps *PointSolver) Init(ms *cell.MSN) error {
	if ms == nil || ms.State != cell.Ready {
		return ErrNotInitialized
	}
	if ps.Rnd == nil {
		ps.Rnd = erand.NewSysRand(1)
	}
	ps.ms = ms
	ps.el = ms.VInit
	ps.vm = ms.VInit
	// rheobase is in pA, currents in nA
	ps.gl = ms.Rheobase * 1e-3 / (ps.Thr - ps.el)
	ps.time = 0
	ps.trace = NewTrace()
	ps.ins = make([]inputState, len(ps.Inputs))
	for i, in := range ps.Inputs {
		ps.ins[i] = inputState{
			in:   in,
			next: in.Stim.Start + in.Con.Delay,
			left: in.Stim.Number,
		}
	}
	return nil
}

// Run advances the simulation by dur ms, recording Time and Vm each
// step.  Run may be called repeatedly; time accumulates.
func (ps *PointSolver) Run(dur float32) error {
	if ps.ms == nil {
		return ErrNotInitialized
	}
	nSteps := int(dur / ps.Dt)
	for s := 0; s < nSteps; s++ {
		t := ps.time
		for _, m := range ps.Mods {
			m.Step(t)
		}
		var amp float32
		for i := range ps.Stims {
			amp += ps.Stims[i].Current(t)
		}
		for i := range ps.ins {
			ps.deliver(&ps.ins[i], t)
		}
		ps.vm += (ps.Dt / ps.TauM) * (ps.el - ps.vm + amp/ps.gl)

		row := ps.trace.Rows
		ps.trace.AddRows(1)
		ps.trace.SetCellFloat("Time", row, float64(t))
		if ps.vm >= ps.Thr {
			ps.trace.SetCellFloat("Vm", row, float64(ps.VPeak))
			ps.vm = ps.VReset
		} else {
			ps.trace.SetCellFloat("Vm", row, float64(ps.vm))
		}
		ps.time += ps.Dt
	}
	return nil
}

// Trace returns the recorded voltage trace so far.
func (ps *PointSolver) Trace() *etable.Table {
	return ps.trace
}

// deliver applies all pending events of one input up to time t and
// schedules the next.
func (ps *PointSolver) deliver(st *inputState, t float32) {
	for st.left > 0 && st.next <= t {
		ps.vm += ps.kick(st.in)
		st.left--
		iv := st.in.Stim.Interval
		if st.in.Stim.Noise > 0 {
			iv = ps.expInterval(iv, st.in.Stim.Noise)
		}
		st.next += iv
	}
}

// kick is the voltage deflection of one synaptic event: the connection
// weight, the synapse scale factor, and the modulation factor
// 1 + damod*((maxMod-1)*level + (max2-1)*lev2), inverted for GABA.
func (ps *PointSolver) kick(in *cell.SynInput) float32 {
	syn := in.Syn
	mod := 1 + syn.Damod*((syn.MaxMod-1)*syn.Level+(syn.Max2-1)*syn.Lev2)
	dv := in.Con.Weight * syn.ScaleFactor * mod * ps.SynGain
	if syn.Kind == cell.GABA {
		return -dv
	}
	return dv
}

// expInterval draws the next interspike interval: a mix of the fixed
// interval and an exponentially distributed one, per the noise
// fraction.
func (ps *PointSolver) expInterval(mean, noise float32) float32 {
	u := erand.ZeroOne(-1, ps.Rnd)
	exp := float32(-math.Log(1-u)) * mean
	return (1-noise)*mean + noise*exp
}
