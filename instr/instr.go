// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package instr instruments a simulated cell: current-clamp stimuli,
voltage-trace recording into etable tables, and action-potential
detection.  The full multicompartment cable integrator is an external
collaborator behind the Solver interface; the bundled PointSolver is a
minimal single-point integrator used by the tests and examples.
*/
package instr

import (
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
	"github.com/striatal/msn/cell"
)

// Solver integrates an assembled cell over time and exposes the
// recorded trace.
type Solver interface {
	// Init binds the solver to a cell and resets time and state.
	Init(ms *cell.MSN) error

	// Run advances the simulation by dur ms, recording the trace.
	Run(dur float32) error

	// Trace returns the recorded voltage trace so far.
	Trace() *etable.Table
}

// Stim is one somatic current-clamp stimulus.
type Stim struct {
	Delay float32 `desc:"onset time, ms"`
	Dur   float32 `desc:"duration, ms"`
	Amp   float32 `desc:"amplitude, nA"`
}

// Current returns the injected current at time t, nA.
func (st *Stim) Current(t float32) float32 {
	if t < st.Delay || t >= st.Delay+st.Dur {
		return 0
	}
	return st.Amp
}

// RheoStim returns a somatic step stimulus scaled to the given
// fraction of the cell's fitted rheobase.  Rheobase is stored in pA;
// stimulus amplitudes are in nA.
func RheoStim(ms *cell.MSN, frac float32) Stim {
	return Stim{Delay: 100, Dur: 300, Amp: ms.Rheobase * 1e-3 * frac}
}

// NewTrace returns an empty voltage-trace table.
func NewTrace() *etable.Table {
	dt := &etable.Table{}
	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64},
		{Name: "Vm", Type: etensor.FLOAT64},
	}
	dt.SetFromSchema(sch, 0)
	return dt
}

// CountSpikes returns the number of upward crossings of thr in the
// trace's Vm column.  The standard spike criterion is a 0 mV crossing.
func CountSpikes(dt *etable.Table, thr float64) int {
	n := 0
	prev := thr
	for i := 0; i < dt.Rows; i++ {
		v := dt.CellFloat("Vm", i)
		if prev < thr && v >= thr {
			n++
		}
		prev = v
	}
	return n
}

// SpikeTimes returns the times of upward crossings of thr, ms.
func SpikeTimes(dt *etable.Table, thr float64) []float64 {
	var ts []float64
	prev := thr
	for i := 0; i < dt.Rows; i++ {
		v := dt.CellFloat("Vm", i)
		if prev < thr && v >= thr {
			ts = append(ts, dt.CellFloat("Time", i))
		}
		prev = v
	}
	return ts
}

// MeanVm returns the mean membrane potential over the [from, to) time
// window of the trace, mV.
func MeanVm(dt *etable.Table, from, to float64) float64 {
	sum, n := 0.0, 0
	for i := 0; i < dt.Rows; i++ {
		t := dt.CellFloat("Time", i)
		if t < from || t >= to {
			continue
		}
		sum += dt.CellFloat("Vm", i)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
