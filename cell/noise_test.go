// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"testing"

	"github.com/goki/mat32"
	"github.com/striatal/msn/density"
	"github.com/striatal/msn/params"
)

func testCell(t *testing.T, ct params.CellType) *MSN {
	t.Helper()
	ms, err := New(params.DemoStore(), StylizedMorph(2), ct, 0)
	if err != nil {
		t.Fatal(err)
	}
	return ms
}

func TestSynapticInput(t *testing.T) {
	ms := testCell(t, params.DMSN)
	dend := ms.Morph.Class(density.Dend)[2] // L=120, 7 segs

	var sp StimParams
	sp.Defaults()
	sp.Weight = 2e-4
	si := ms.SynapticInput(dend, AMPA, 0.5, sp)

	if si.Syn.Kind != AMPA || si.Syn.ScaleFactor != 1 {
		t.Errorf("synapse: kind %v scale %g", si.Syn.Kind, si.Syn.ScaleFactor)
	}
	if si.Stim.Interval != 10 || si.Stim.Number != 10 || si.Stim.Start != 50 || si.Stim.Noise != 0 {
		t.Errorf("stim: %+v", si.Stim)
	}
	if si.Con.Threshold != 10 || si.Con.Delay != 1 || si.Con.Weight != 2e-4 {
		t.Errorf("con: %+v", si.Con)
	}
	// attached to the segment containing x=0.5
	sg := dend.Seg(0.5)
	if len(sg.Syns) != 1 || sg.Syns[0] != si.Syn {
		t.Errorf("synapse not registered on segment")
	}
	if si.Syn.Seg != sg {
		t.Errorf("synapse segment backlink wrong")
	}
}

func TestSegLookup(t *testing.T) {
	ms := testCell(t, params.DMSN)
	dend := ms.Morph.Class(density.Dend)[2] // 7 segs
	if sg := dend.Seg(0); sg != dend.Segs[0] {
		t.Errorf("x=0: seg %g", sg.X)
	}
	if sg := dend.Seg(1); sg != dend.Segs[6] {
		t.Errorf("x=1: seg %g", sg.X)
	}
	if sg := dend.Seg(0.5); sg != dend.Segs[3] {
		t.Errorf("x=0.5: seg %g", sg.X)
	}
}

func TestAddBGNoise(t *testing.T) {
	ms := testCell(t, params.DMSN)
	var cfg BGNoiseParams
	cfg.Defaults()
	n, err := ms.AddBGNoise(cfg)
	if err != nil {
		t.Fatal(err)
	}
	nSecs := len(ms.Morph.Secs)
	if n != 3*nSecs {
		t.Fatalf("input count: %d != %d", n, 3*nSecs)
	}
	for _, si := range ms.BGNoise() {
		switch si.Syn.Kind {
		case AMPA, NMDA:
			if mat32.Abs(si.Con.Weight-GBaseDMSN) > difTol {
				t.Errorf("%v weight %g != %g", si.Syn.Kind, si.Con.Weight, float32(GBaseDMSN))
			}
			if mat32.Abs(si.Stim.Interval-1000.0/12) > 1e-3 {
				t.Errorf("glut interval %g", si.Stim.Interval)
			}
			if mat32.Abs(si.Syn.Seg.X-si.Syn.Seg.Sec.Seg(0.5).X) > difTol {
				t.Errorf("glut synapse not mid-section: x %g", si.Syn.Seg.X)
			}
		case GABA:
			if mat32.Abs(si.Con.Weight-5*GBaseDMSN) > difTol {
				t.Errorf("gaba weight %g != %g", si.Con.Weight, 5*float32(GBaseDMSN))
			}
			if si.Stim.Interval != 250 {
				t.Errorf("gaba interval %g != 250", si.Stim.Interval)
			}
		}
		if si.Stim.Noise != 1 || si.Stim.Number != 1000 {
			t.Errorf("stim noise %g number %d", si.Stim.Noise, si.Stim.Number)
		}
		if si.Con.Threshold != 0.1 || si.Con.Delay != 0 {
			t.Errorf("con threshold %g delay %g", si.Con.Threshold, si.Con.Delay)
		}
	}
}

func TestBGNoiseIMSNAndScales(t *testing.T) {
	ms := testCell(t, params.IMSN)
	cfg := BGNoiseParams{GabaHz: 4, GlutHz: 12, DendOnly: true, AMPAScale: 2, GABAScale: 0.5}
	n, err := ms.AddBGNoise(cfg)
	if err != nil {
		t.Fatal(err)
	}
	nDend := len(ms.Morph.Class(density.Dend))
	if n != 3*nDend {
		t.Fatalf("dend-only count: %d != %d", n, 3*nDend)
	}
	for _, si := range ms.BGNoise() {
		if si.Syn.Seg.Sec.Class != density.Dend {
			t.Errorf("input on %s", si.Syn.Seg.Sec.Name)
		}
		switch si.Syn.Kind {
		case AMPA:
			if si.Syn.ScaleFactor != 2 {
				t.Errorf("ampa scale %g", si.Syn.ScaleFactor)
			}
			if mat32.Abs(si.Con.Weight-GBaseIMSN) > difTol {
				t.Errorf("ampa weight %g", si.Con.Weight)
			}
		case NMDA:
			if si.Syn.ScaleFactor != 1 {
				t.Errorf("nmda scale %g", si.Syn.ScaleFactor)
			}
		case GABA:
			want := float32(GBaseIMSN) * 3 * 0.5
			if mat32.Abs(si.Con.Weight-want) > difTol {
				t.Errorf("scaled gaba weight %g != %g", si.Con.Weight, want)
			}
		}
	}
}

func TestBGNoiseDelays(t *testing.T) {
	ms := testCell(t, params.DMSN)
	cfg := BGNoiseParams{GabaHz: 4, GlutHz: 12}
	cfg.Delays = []float32{1, 2} // 9 sections
	if _, err := ms.AddBGNoise(cfg); err == nil {
		t.Error("delay count mismatch not rejected")
	}
	cfg.Delays = make([]float32, len(ms.Morph.Secs))
	for i := range cfg.Delays {
		cfg.Delays[i] = float32(i) * 10
	}
	if _, err := ms.AddBGNoise(cfg); err != nil {
		t.Fatal(err)
	}
	for i, si := range ms.BGNoise() {
		want := float32(i/3) * 10
		if si.Stim.Start != want {
			t.Errorf("input %d start %g != %g", i, si.Stim.Start, want)
		}
	}
}

func TestRemoveBGNoise(t *testing.T) {
	ms := testCell(t, params.DMSN)
	var cfg BGNoiseParams
	cfg.Defaults()
	if _, err := ms.AddBGNoise(cfg); err != nil {
		t.Fatal(err)
	}
	handles := ms.BGNoise()
	nSyn := 0
	ms.AllSegs(func(sg *Segment) { nSyn += len(sg.Syns) })

	ms.RemoveBGNoise()
	for _, si := range handles {
		if si.Con.Weight != 0 {
			t.Errorf("%v weight %g after remove", si.Syn.Kind, si.Con.Weight)
		}
	}
	if len(ms.BGNoise()) != 0 {
		t.Errorf("tracking list not cleared: %d", len(ms.BGNoise()))
	}
	// synapses stay attached, silenced
	after := 0
	ms.AllSegs(func(sg *Segment) { after += len(sg.Syns) })
	if after != nSyn {
		t.Errorf("synapse count changed on remove: %d != %d", after, nSyn)
	}

	// re-adding replaces the tracked set
	n, err := ms.AddBGNoise(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3*len(ms.Morph.Secs) {
		t.Errorf("re-add count: %d", n)
	}
}
