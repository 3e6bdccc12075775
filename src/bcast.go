// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/par"
	"github.com/cpmech/gosl/chk"
)

// BcastCatalog reads the catalog on the root process and sends it to all other processes.
// All processes receive an error if the root cannot read the file.
func BcastCatalog(comm par.Comm, in *Input) (cat *Catalog, err error) {
	if in.Nsrc < 1 {
		return &Catalog{ReadStep: in.ReadStep}, nil
	}
	if err = in.Check(); err != nil {
		return nil, err
	}

	// read and tell whether it worked
	status := []float64{0}
	if comm.Rank() == 0 {
		cat, err = in.ReadCatalog()
		if err == nil {
			status[0] = 1
		}
	}
	comm.BcastFromRoot(status)
	if status[0] == 0 {
		if err == nil {
			err = chk.Err("root process failed to read source file %q", in.Fn)
		}
		return nil, err
	}

	// send data
	buf := make([]float64, in.Nsrc*packSize(in.ReadStep))
	if comm.Rank() == 0 {
		cat.pack(buf)
	}
	comm.BcastFromRoot(buf)
	if comm.Rank() != 0 {
		cat = unpack(buf, in.Nsrc, in.ReadStep)
	}
	return
}

// packSize returns the number of values of one node in a packed buffer
func packSize(readStep int) int {
	return 3 + readStep*grid.NSIG
}

// pack copies coordinates and samples into buf. float32 and int values are exact in float64
func (o *Catalog) pack(buf []float64) {
	p := 0
	for _, nod := range o.Nodes {
		for a := 0; a < 3; a++ {
			buf[p] = float64(nod.X[a])
			p++
		}
		for j := 0; j < o.ReadStep; j++ {
			for c := 0; c < grid.NSIG; c++ {
				buf[p] = float64(nod.Sig[j][c])
				p++
			}
		}
	}
}

// unpack builds a catalog from a packed buffer
func unpack(buf []float64, nsrc, readStep int) (o *Catalog) {
	o = &Catalog{ReadStep: readStep, Nodes: make([]Node, nsrc)}
	p := 0
	for i := range o.Nodes {
		for a := 0; a < 3; a++ {
			o.Nodes[i].X[a] = int(buf[p])
			p++
		}
		o.Nodes[i].Sig = make([]grid.Stress, readStep)
		for j := 0; j < readStep; j++ {
			for c := 0; c < grid.NSIG; c++ {
				o.Nodes[i].Sig[j][c] = float32(buf[p])
				p++
			}
		}
	}
	return
}
