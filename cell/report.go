// Copyright (c) 2025, The MSN Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cell

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
)

// SizeReport returns a string report of the size of the assembled
// cell: sections, segments, mechanism instances, synapses, and
// estimated memory.
func (ms *MSN) SizeReport() string {
	var b strings.Builder
	nSec := len(ms.Morph.Secs)
	nSeg, nMech, nSyn := 0, 0, 0
	ms.AllSegs(func(sg *Segment) {
		nSeg++
		nMech += len(sg.Mechs)
		nSyn += len(sg.Syns)
	})
	memSeg := nSeg * int(unsafe.Sizeof(Segment{}))
	memMech := nMech * int(unsafe.Sizeof(Mech{}))
	memSyn := nSyn * int(unsafe.Sizeof(Synapse{}))
	mem := memSeg + memMech + memSyn
	fmt.Fprintf(&b, "%14s:\t Secs: %d\t Segs: %d\t Mechs: %d\t Syns: %d\t Mem: %v\n",
		ms.Name(), nSec, nSeg, nMech, nSyn, (datasize.ByteSize)(mem).HumanReadable())
	return b.String()
}
