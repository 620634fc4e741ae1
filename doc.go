// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package msn is the overall repository for a compartmental model of the
striatal medium spiny neuron (MSN), covering both the direct-pathway
(dMSN) and indirect-pathway (iMSN) subtypes.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* density: distance-dependent ion-channel density profiles (sigmoidal,
step, uniform) and the dispatch table selecting the profile for each
(compartment, mechanism) pair.

* params: the read-only parameter store holding per-cell channel
distribution parameters, rheobase, and the peak-conductance table.

* cell: the compartment tree, the cell assembler that installs
mechanisms and writes per-segment conductances, and randomized
background synaptic bombardment.

* neuromod: dopaminergic and cholinergic modulation of intrinsic and
synaptic mechanisms, with randomized factor sampling and time-varying
trajectory playback.

* instr: current-clamp instrumentation, voltage-trace recording, and
action-potential detection, along with the solver boundary used by an
external cable integrator (a minimal point solver is included for
testing -- the full cable-equation solver is an external collaborator).

* examples: these compile into runnable programs; examples/buildcell is
the place to start for the basic build-and-inspect workflow.
*/
package msn
