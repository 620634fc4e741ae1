// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"errors"
	"strings"
	"testing"

	"github.com/striatal/msn/density"
)

func TestDemoStoreRanges(t *testing.T) {
	st := DemoStore()
	if n := len(st.Cells[DMSN]); n != 71 {
		t.Errorf("dmsn cell count: got %d, want 71", n)
	}
	if n := len(st.Cells[IMSN]); n != 34 {
		t.Errorf("imsn cell count: got %d, want 34", n)
	}
	if _, err := st.Rheobase(DMSN, 70); err != nil {
		t.Errorf("dmsn 70 is in range: %v", err)
	}
	_, err := st.Rheobase(DMSN, 71)
	if !errors.Is(err, ErrUnknownCellIndex) {
		t.Errorf("dmsn 71 must fail with ErrUnknownCellIndex, got %v", err)
	}
	_, err = st.Rheobase(IMSN, 34)
	if !errors.Is(err, ErrUnknownCellIndex) {
		t.Errorf("imsn 34 must fail with ErrUnknownCellIndex, got %v", err)
	}
	_, err = st.DensityParams(IMSN, -1)
	if !errors.Is(err, ErrUnknownCellIndex) {
		t.Errorf("negative index must fail with ErrUnknownCellIndex, got %v", err)
	}
}

func TestDemoStoreDeterminism(t *testing.T) {
	a := DemoStore()
	b := DemoStore()
	ra, _ := a.Rheobase(DMSN, 0)
	rb, _ := b.Rheobase(DMSN, 0)
	if ra != rb {
		t.Errorf("demo store is not deterministic: rheobase %v != %v", ra, rb)
	}
	pa, err := a.DensityParams(IMSN, 21)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := b.DensityParams(IMSN, 21)
	if err != nil {
		t.Fatal(err)
	}
	for i := range pa {
		if pa[i].Peak != pb[i].Peak {
			t.Errorf("entry %d peak differs: %v != %v", i, pa[i].Peak, pb[i].Peak)
		}
		for j := range pa[i].Args {
			if pa[i].Args[j] != pb[i].Args[j] {
				t.Errorf("entry %d arg %d differs", i, j)
			}
		}
	}
}

func TestDensityParamsAssembly(t *testing.T) {
	st := DemoStore()
	ps, err := st.DensityParams(DMSN, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 27 {
		t.Fatalf("entry count: got %d, want 27", len(ps))
	}
	// first entry is dendritic naf with 4 fitted args
	if ps[0].Compartment != density.Dend || ps[0].Mechanism != density.Naf {
		t.Errorf("first entry must be dend naf, got %s %s", ps[0].Compartment, ps[0].Mechanism)
	}
	if len(ps[0].Args) != 4 {
		t.Errorf("dend naf must carry 4 fitted args, got %d", len(ps[0].Args))
	}
	if ps[0].Peak != 0.015 {
		t.Errorf("dend naf peak: got %v, want 0.015", ps[0].Peak)
	}
	// somatic defaults take args [0]
	for _, p := range ps {
		if p.Compartment != density.Soma || p.Mechanism == density.SK || p.Mechanism == density.Kir {
			continue
		}
		if len(p.Args) != 1 || p.Args[0] != 0 {
			t.Errorf("soma %s must default to args [0], got %v", p.Mechanism.MechName(), p.Args)
		}
	}
	// axonal naf carries the fixed step defaults
	found := false
	for _, p := range ps {
		if p.Compartment == density.Axon && p.Mechanism == density.Naf {
			found = true
			want := []float32{1, 1.1, 30, 500}
			for i := range want {
				if p.Args[i] != want[i] {
					t.Errorf("axon naf arg %d: got %v, want %v", i, p.Args[i], want[i])
				}
			}
		}
	}
	if !found {
		t.Error("axon naf entry missing")
	}
	// every assembled entry resolves without error at a few distances
	for _, p := range ps {
		for _, d := range []float32{0, 25, 90, 250} {
			if _, err := density.Resolve(d, p.Compartment, p.Mechanism, p.Args, p.Peak); err != nil {
				t.Errorf("%s %s at %v: %v", p.Compartment.ClassName(), p.Mechanism.MechName(), d, err)
			}
		}
	}
}

func TestPeakConductanceAllRows(t *testing.T) {
	st := DemoStore()
	// pas is defined with Compartment "all" and per-cell-type values
	gd, err := st.PeakConductance(DMSN, density.Pas, density.Soma)
	if err != nil {
		t.Fatal(err)
	}
	if gd != 1.25e-5 {
		t.Errorf("dmsn pas: got %v, want 1.25e-5", gd)
	}
	gi, err := st.PeakConductance(IMSN, density.Pas, density.Dend)
	if err != nil {
		t.Fatal(err)
	}
	if gi != 1.15e-5 {
		t.Errorf("imsn pas: got %v, want 1.15e-5", gi)
	}
}

func TestMissingConductance(t *testing.T) {
	st := DemoStore()
	// bk has no axonal row and no "all" compartment row
	_, err := st.PeakConductance(DMSN, density.BK, density.Axon)
	if !errors.Is(err, ErrMissingConductance) {
		t.Errorf("axon bk must fail with ErrMissingConductance, got %v", err)
	}
}

func TestReadCells(t *testing.T) {
	src := `{
  "imsn": [
    {"rheobase": 88.5,
     "variables": {"naf": [0, 0.7, 30, 10], "c32": [-7, 70, -30], "c33": [-8, 70, -30],
                   "kaf": [0, 1, 110, 30], "kas": [0, 50, 10],
                   "kir": [0.1], "sk": [-0.1], "can": [-4, 0.9, 30, 10]}}
  ]
}`
	cells, err := ReadCells(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	cs := cells[IMSN]
	if len(cs) != 1 {
		t.Fatalf("imsn count: got %d, want 1", len(cs))
	}
	if cs[0].Rheobase != 88.5 {
		t.Errorf("rheobase: got %v, want 88.5", cs[0].Rheobase)
	}
	if args, ok := cs[0].Variables[density.Cav32]; !ok || len(args) != 3 {
		t.Errorf("c32 must map onto cav32 with 3 args, got %v", args)
	}
	if _, ok := cs[0].Variables[density.Cav33]; !ok {
		t.Errorf("c33 must map onto cav33")
	}
}

func TestConductancesRoundTrip(t *testing.T) {
	st := DemoStore()
	var b strings.Builder
	if err := WriteConductances(&b, st.Conductances); err != nil {
		t.Fatal(err)
	}
	dt, err := ReadConductances(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	if dt.Rows != st.Conductances.Rows {
		t.Errorf("row count: got %d, want %d", dt.Rows, st.Conductances.Rows)
	}
	st2 := NewStore(st.Cells, dt)
	g, err := st2.PeakConductance(DMSN, density.Naf, density.Dend)
	if err != nil {
		t.Fatal(err)
	}
	if g != 0.015 {
		t.Errorf("dend naf after round trip: got %v, want 0.015", g)
	}
}
