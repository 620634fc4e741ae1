// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"fmt"

	"github.com/goki/ki/kit"
	"github.com/striatal/msn/density"
	"github.com/striatal/msn/params"
)

// SynKind is the receptor type of a point-process synapse.
type SynKind int

//go:generate stringer -type=SynKind

const (
	// AMPA is the fast glutamatergic receptor.
	AMPA SynKind = iota

	// NMDA is the slow, voltage-dependent glutamatergic receptor.
	NMDA

	// GABA is the inhibitory receptor.
	GABA

	SynKindN
)

var KiT_SynKind = kit.Enums.AddEnum(SynKindN, kit.NotBitFlag, nil)

func (ev SynKind) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SynKind) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// Synapse is one point-process synapse attached to a segment.  Like
// the channel mechanisms it carries the two-slot modulation state the
// external solver folds into its conductance.
type Synapse struct {
	Kind        SynKind  `desc:"receptor type"`
	Seg         *Segment `desc:"segment this synapse is attached to"`
	ScaleFactor float32  `def:"1" desc:"multiplicative conductance scale"`
	Damod       float32  `desc:"modulation switch: 1 when any neuromodulation is enabled, 0 otherwise"`
	MaxMod      float32  `desc:"maximum dopaminergic modulation factor"`
	Level       float32  `desc:"dopaminergic modulation level in [0,1]"`
	Max2        float32  `desc:"maximum cholinergic modulation factor"`
	Lev2        float32  `desc:"cholinergic modulation level in [0,1]"`
}

// NetStim is a Poisson-capable spike-train generator driving a synapse.
type NetStim struct {
	Interval float32 `desc:"mean interspike interval, ms"`
	Number   int     `desc:"maximum number of spikes to emit"`
	Start    float32 `desc:"time of the first spike, ms"`
	Noise    float32 `min:"0" max:"1" desc:"fraction of the interval that is exponentially distributed: 0 = regular, 1 = fully Poisson"`
}

// NetCon connects a spike source to a synapse.
type NetCon struct {
	Threshold float32 `desc:"source crossing threshold, mV"`
	Delay     float32 `desc:"conduction delay, ms"`
	Weight    float32 `desc:"synaptic weight (peak conductance), uS; 0 disables the connection"`
}

// SynInput is the handle for one driven synapse: the synapse itself,
// its generator, and the connection.  Callers keep it to retune or
// disable the input later.
type SynInput struct {
	Syn  *Synapse `desc:"the synapse"`
	Stim *NetStim `desc:"spike-train generator"`
	Con  *NetCon  `desc:"connection from generator to synapse"`
}

// StimParams configures one synaptic input.  Zero value is not valid:
// call Defaults first, then override.
type StimParams struct {
	Interval  float32 `def:"10" desc:"mean interspike interval, ms"`
	Number    int     `def:"10" desc:"number of spikes"`
	Start     float32 `def:"50" desc:"onset time, ms"`
	Noise     float32 `def:"0" min:"0" max:"1" desc:"interval randomness"`
	Threshold float32 `def:"10" desc:"connection threshold, mV"`
	Delay     float32 `def:"1" desc:"connection delay, ms"`
	Weight    float32 `def:"0" desc:"synaptic weight, uS"`
}

// Defaults sets the standard single-input parameters.
func (sp *StimParams) Defaults() {
	sp.Interval = 10
	sp.Number = 10
	sp.Start = 50
	sp.Noise = 0
	sp.Threshold = 10
	sp.Delay = 1
	sp.Weight = 0
}

// SynapticInput attaches a driven synapse of the given kind at
// position x on the section and returns its handle.  The synapse is
// registered on its segment so that synaptic neuromodulation finds it.
func (ms *MSN) SynapticInput(sec *Section, kind SynKind, x float32, sp StimParams) *SynInput {
	sg := sec.Seg(x)
	syn := &Synapse{Kind: kind, Seg: sg, ScaleFactor: 1}
	sg.Syns = append(sg.Syns, syn)
	return &SynInput{
		Syn: syn,
		Stim: &NetStim{
			Interval: sp.Interval,
			Number:   sp.Number,
			Start:    sp.Start,
			Noise:    sp.Noise,
		},
		Con: &NetCon{
			Threshold: sp.Threshold,
			Delay:     sp.Delay,
			Weight:    sp.Weight,
		},
	}
}

// Background bombardment constants.
const (
	// GBaseDMSN and GBaseIMSN are the per-type base synaptic
	// conductances, uS.
	GBaseDMSN = 3e-4
	GBaseIMSN = 2e-4

	// GabaWeightX is the default GABA weight multiple of gbase.
	GabaWeightX = 5

	// GabaScaleX is the GABA weight multiple of gbase when an explicit
	// GABA scale is given: weight = gbase * GabaScaleX * scale.
	GabaScaleX = 3

	// Glutamatergic inputs attach mid-section, GABAergic ones
	// proximally.
	glutX = 0.5
	gabaX = 0.1

	// bgNumber caps the spikes emitted per background generator,
	// ample for any simulation this model runs.
	bgNumber = 1000

	// bgThreshold is the connection threshold for background inputs.
	bgThreshold = 0.1
)

// BGNoiseParams configures background synaptic bombardment: one AMPA,
// one NMDA and one GABA input per targeted section.
type BGNoiseParams struct {
	GabaHz    float32   `def:"4" desc:"GABAergic input rate per section, Hz"`
	GlutHz    float32   `def:"12" desc:"glutamatergic input rate per section, Hz"`
	DendOnly  bool      `desc:"target only dendritic sections instead of the whole cell"`
	AMPAScale float32   `desc:"if > 0, per-synapse AMPA conductance scale"`
	NMDAScale float32   `desc:"if > 0, per-synapse NMDA conductance scale"`
	GABAScale float32   `desc:"if > 0, GABA weight becomes gbase*3*scale instead of gbase*5"`
	Delays    []float32 `desc:"optional per-section onset delays, ms; must match the targeted section count"`
}

// Defaults sets the standard in-vivo-like bombardment rates.
func (bp *BGNoiseParams) Defaults() {
	bp.GabaHz = 4
	bp.GlutHz = 12
}

// AddBGNoise attaches background bombardment per the config, replacing
// any bombardment already tracked on the cell.  Returns the number of
// inputs attached.
func (ms *MSN) AddBGNoise(cfg BGNoiseParams) (int, error) {
	secs := ms.Morph.Secs
	if cfg.DendOnly {
		secs = ms.Morph.Class(density.Dend)
	}
	if len(cfg.Delays) > 0 && len(cfg.Delays) != len(secs) {
		return 0, fmt.Errorf("AddBGNoise: %d delays for %d sections", len(cfg.Delays), len(secs))
	}
	ms.RemoveBGNoise()

	gbase := float32(GBaseDMSN)
	if ms.Typ == params.IMSN {
		gbase = GBaseIMSN
	}
	gabaW := gbase * GabaWeightX
	if cfg.GABAScale > 0 {
		gabaW = gbase * GabaScaleX * cfg.GABAScale
	}

	glut := StimParams{
		Interval:  1000 / cfg.GlutHz,
		Number:    bgNumber,
		Noise:     1,
		Threshold: bgThreshold,
		Weight:    gbase,
	}
	gaba := glut
	gaba.Interval = 1000 / cfg.GabaHz
	gaba.Weight = gabaW

	for i, sec := range secs {
		if len(cfg.Delays) > 0 {
			glut.Start = cfg.Delays[i]
			gaba.Start = cfg.Delays[i]
		}
		ampa := ms.SynapticInput(sec, AMPA, glutX, glut)
		if cfg.AMPAScale > 0 {
			ampa.Syn.ScaleFactor = cfg.AMPAScale
		}
		nmda := ms.SynapticInput(sec, NMDA, glutX, glut)
		if cfg.NMDAScale > 0 {
			nmda.Syn.ScaleFactor = cfg.NMDAScale
		}
		gb := ms.SynapticInput(sec, GABA, gabaX, gaba)
		ms.bgNoise = append(ms.bgNoise, ampa, nmda, gb)
	}
	return len(ms.bgNoise), nil
}

// RemoveBGNoise silences all tracked background inputs by zeroing
// their connection weights, then clears the tracking list.  The
// synapse objects stay attached to their segments; a subsequent
// AddBGNoise creates fresh ones.
func (ms *MSN) RemoveBGNoise() {
	for _, si := range ms.bgNoise {
		si.Con.Weight = 0
	}
	ms.bgNoise = nil
}

// BGNoise returns the currently tracked background inputs.
func (ms *MSN) BGNoise() []*SynInput {
	return ms.bgNoise
}
