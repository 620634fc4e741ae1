// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"errors"
	"strings"
	"testing"

	"github.com/goki/mat32"
	"github.com/striatal/msn/density"
	"github.com/striatal/msn/params"
)

// difTol is the numerical difference tolerance
const difTol = float32(1.0e-6)

func TestStylizedMorph(t *testing.T) {
	mo := StylizedMorph(4)
	if len(mo.Secs) != 3+3*4 {
		t.Errorf("section count: %d != %d", len(mo.Secs), 3+3*4)
	}
	soma, err := mo.Soma()
	if err != nil {
		t.Fatal(err)
	}
	if soma.Name != "soma[0]" || soma.L != 15 {
		t.Errorf("soma: %s L %g", soma.Name, soma.L)
	}
	if n := len(mo.Class(density.Dend)); n != 12 {
		t.Errorf("dend count: %d != 12", n)
	}
	if n := len(mo.Class(density.Axon)); n != 2 {
		t.Errorf("axon count: %d != 2", n)
	}

	// distance along the first dendritic path: 0.5*soma + prim + sec + ter
	ter := mo.Secs[5] // dend[2]
	want := float32(0.5*15 + 25 + 60 + 120)
	if d := mo.DistanceFromSoma(ter, 1); mat32.Abs(d-want) > difTol {
		t.Errorf("tertiary end distance: %g != %g", d, want)
	}
	// monotonic along the path
	prev := float32(-1)
	for _, sec := range []*Section{mo.Secs[3], mo.Secs[4], mo.Secs[5]} {
		for _, x := range []float32{0.1, 0.5, 0.9} {
			d := mo.DistanceFromSoma(sec, x)
			if d <= prev {
				t.Errorf("distance not increasing at %s x %g: %g <= %g", sec.Name, x, d, prev)
			}
			prev = d
		}
	}
}

func TestSomaValidation(t *testing.T) {
	mo := NewMorphology(
		NewSection("soma[0]", density.Soma, 15),
		NewSection("soma[1]", density.Soma, 15),
	)
	if _, err := mo.Soma(); !errors.Is(err, ErrMalformedMorphology) {
		t.Errorf("two somas: got %v, want ErrMalformedMorphology", err)
	}
	mo = NewMorphology(NewSection("dend[0]", density.Dend, 25))
	if _, err := mo.Soma(); !errors.Is(err, ErrMalformedMorphology) {
		t.Errorf("no soma: got %v, want ErrMalformedMorphology", err)
	}
}

func TestDiscretization(t *testing.T) {
	st := params.DemoStore()
	ms, err := New(st, StylizedMorph(2), params.DMSN, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ms.State != Ready {
		t.Fatalf("state: %v != Ready", ms.State)
	}
	for _, sec := range ms.Morph.Secs {
		want := AxonNSeg
		if sec.Class != density.Axon {
			want = 2*int(sec.L/SegRule) + 1
		}
		if sec.NSeg() != want {
			t.Errorf("%s (L %g): nseg %d != %d", sec.Name, sec.L, sec.NSeg(), want)
		}
		if sec.NSeg()%2 != 1 && sec.Class != density.Axon {
			t.Errorf("%s: even nseg %d", sec.Name, sec.NSeg())
		}
		for i, sg := range sec.Segs {
			want := (float32(i) + 0.5) / float32(sec.NSeg())
			if mat32.Abs(sg.X-want) > difTol {
				t.Errorf("%s seg %d: x %g != %g", sec.Name, i, sg.X, want)
			}
		}
	}
	// soma L=15 -> 1 seg, tertiary L=120 -> 7 segs
	if ms.Soma.NSeg() != 1 {
		t.Errorf("soma nseg: %d != 1", ms.Soma.NSeg())
	}
	if n := ms.Morph.Secs[5].NSeg(); n != 7 {
		t.Errorf("tertiary nseg: %d != 7", n)
	}
}

func TestMechanismSets(t *testing.T) {
	st := params.DemoStore()
	ms, err := New(st, StylizedMorph(2), params.IMSN, 3)
	if err != nil {
		t.Fatal(err)
	}
	counts := map[density.CompartmentClass]int{
		density.Dend: len(dendMechs),
		density.Soma: len(somaMechs),
		density.Axon: len(axonMechs),
	}
	ms.AllSegs(func(sg *Segment) {
		if len(sg.Mechs) != counts[sg.Sec.Class] {
			t.Errorf("%s seg x %g: %d mechs != %d", sg.Sec.Name, sg.X, len(sg.Mechs), counts[sg.Sec.Class])
		}
	})
	// T-type calcium is dendrite-only, KM axon-only
	if ms.Soma.Segs[0].Mech(density.Cav32) != nil {
		t.Error("cav32 installed in soma")
	}
	if ms.Soma.Segs[0].Mech(density.KM) != nil {
		t.Error("km installed in soma")
	}
	ax := ms.Morph.Class(density.Axon)[0]
	if ax.Segs[0].Mech(density.KM) == nil {
		t.Error("km missing in axon")
	}
	if ax.Segs[0].Mech(density.Kir) != nil {
		t.Error("kir installed in axon")
	}
}

func TestBiophysics(t *testing.T) {
	st := params.DemoStore()
	ms, err := New(st, StylizedMorph(2), params.DMSN, 0)
	if err != nil {
		t.Fatal(err)
	}
	gpas, err := st.PeakConductance(params.DMSN, density.Pas, density.Soma)
	if err != nil {
		t.Fatal(err)
	}
	if ms.VInit != -80 || ms.Celsius != 35 {
		t.Errorf("vinit %g celsius %g", ms.VInit, ms.Celsius)
	}
	for _, sec := range ms.Morph.Secs {
		if sec.Ra != 150 || sec.Cm != 1 || sec.Ena != 50 || sec.Ek != -85 {
			t.Errorf("%s: Ra %g Cm %g Ena %g Ek %g", sec.Name, sec.Ra, sec.Cm, sec.Ena, sec.Ek)
		}
	}
	ms.AllSegs(func(sg *Segment) {
		if mat32.Abs(sg.PasG-gpas) > difTol {
			t.Errorf("%s: pas g %g != %g", sg.Sec.Name, sg.PasG, gpas)
		}
		if sg.PasE != -70 {
			t.Errorf("%s: pas e %g", sg.Sec.Name, sg.PasE)
		}
	})
}

func TestDensityApplication(t *testing.T) {
	st := params.DemoStore()
	ms, err := New(st, StylizedMorph(2), params.DMSN, 5)
	if err != nil {
		t.Fatal(err)
	}
	// non-negative everywhere, for every conductance/permeability mech
	ms.AllSegs(func(sg *Segment) {
		for mc, mech := range sg.Mechs {
			if mc.Kind() == density.Dynamics {
				continue
			}
			if mech.Gbar < 0 || mat32.IsNaN(mech.Gbar) {
				t.Errorf("%s x %g %s: gbar %g", sg.Sec.Name, sg.X, mc.MechName(), mech.Gbar)
			}
		}
	})

	// somatic defaults are uniform with exponent 0: gbar == table peak
	kdrPeak, err := st.PeakConductance(params.DMSN, density.Kdr, density.Soma)
	if err != nil {
		t.Fatal(err)
	}
	if g := ms.Soma.Segs[0].Mech(density.Kdr).Gbar; mat32.Abs(g-kdrPeak) > difTol {
		t.Errorf("soma kdr gbar %g != peak %g", g, kdrPeak)
	}

	// axonal naf is the fixed step: outside the (30, 500) window the
	// density is 1.1x the table peak, inside it is 1x
	nafPeak, err := st.PeakConductance(params.DMSN, density.Naf, density.Axon)
	if err != nil {
		t.Fatal(err)
	}
	ais := ms.Morph.Class(density.Axon)[0] // L=30, attached at soma midpoint
	dProx := ms.Morph.DistanceFromSoma(ais, ais.Segs[0].X)
	if dProx >= 30 {
		t.Fatalf("expected proximal axon segment inside 30 um, got %g", dProx)
	}
	if g := ais.Segs[0].Mech(density.Naf).Gbar; mat32.Abs(g-1.1*nafPeak) > difTol {
		t.Errorf("proximal axon naf %g != %g", g, 1.1*nafPeak)
	}
	ax := ms.Morph.Class(density.Axon)[1] // L=200, well inside the window
	if g := ax.Segs[1].Mech(density.Naf).Gbar; mat32.Abs(g-nafPeak) > difTol {
		t.Errorf("distal axon naf %g != %g", g, nafPeak)
	}

	// dendritic kaf decreases with distance (sigmoid, proximal boost)
	prim := ms.Morph.Class(density.Dend)[0]
	ter := ms.Morph.Class(density.Dend)[2]
	gProx := prim.Segs[0].Mech(density.Kaf).Gbar
	gDist := ter.Segs[len(ter.Segs)-1].Mech(density.Kaf).Gbar
	if gProx <= gDist {
		t.Errorf("kaf not decreasing: proximal %g <= distal %g", gProx, gDist)
	}
}

func TestCellIdentity(t *testing.T) {
	st := params.DemoStore()
	a, err := New(st, StylizedMorph(2), params.DMSN, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(st, StylizedMorph(2), params.DMSN, 7)
	if err != nil {
		t.Fatal(err)
	}
	// same cell index on identical morphologies yields identical densities
	for i, sec := range a.Morph.Secs {
		for j, sg := range sec.Segs {
			for mc, mech := range sg.Mechs {
				og := b.Morph.Secs[i].Segs[j].Mech(mc).Gbar
				if mat32.Abs(mech.Gbar-og) > difTol {
					t.Errorf("%s seg %d %s: %g != %g", sec.Name, j, mc.MechName(), mech.Gbar, og)
				}
			}
		}
	}
	if a.Name() != "dmsn[7]" {
		t.Errorf("name: %s", a.Name())
	}
	if a.Rheobase != b.Rheobase {
		t.Errorf("rheobase: %g != %g", a.Rheobase, b.Rheobase)
	}
}

func TestNewErrors(t *testing.T) {
	st := params.DemoStore()
	if _, err := New(st, StylizedMorph(2), params.DMSN, 71); !errors.Is(err, params.ErrUnknownCellIndex) {
		t.Errorf("index 71: got %v", err)
	}
	mo := NewMorphology(
		NewSection("soma[0]", density.Soma, 15),
		NewSection("soma[1]", density.Soma, 15),
	)
	ms, err := New(st, mo, params.IMSN, 0)
	if !errors.Is(err, ErrMalformedMorphology) {
		t.Errorf("two somas: got %v", err)
	}
	if ms.State != Uninitialized {
		t.Errorf("failed build state: %v != Uninitialized", ms.State)
	}
}

func TestSizeReport(t *testing.T) {
	st := params.DemoStore()
	ms, err := New(st, StylizedMorph(2), params.IMSN, 0)
	if err != nil {
		t.Fatal(err)
	}
	rep := ms.SizeReport()
	if !strings.Contains(rep, "imsn[0]") || !strings.Contains(rep, "Segs:") {
		t.Errorf("report: %q", rep)
	}
}
