// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements handling of the summaries saved by runs with kinematic fault sources
package out

import (
	"bytes"
	"sort"

	"github.com/cpmech/goawp/awp"
	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Global variables
var (

	// data set by Start
	Sim   *inp.Simulation          // simulation data
	Sums  []*awp.Summary           // [nproc] summaries of all processes
	Nodes map[int]*awp.NodeSummary // maps index of fault node in source file to its results
	Owner map[int]int              // maps index of fault node to the process holding it
)

// Start loads the summaries of all processes of a simulation
func Start(simfnpath, alias string) {

	// simulation data
	Sim = inp.ReadSim(simfnpath, alias, false)
	if !Sim.Data.Summary {
		chk.Panic("simulation %q does not save summaries", simfnpath)
	}

	// summaries
	nproc := Sim.Grid.Px * Sim.Grid.Py
	Sums = make([]*awp.Summary, nproc)
	Nodes = make(map[int]*awp.NodeSummary)
	Owner = make(map[int]int)
	for rank := 0; rank < nproc; rank++ {
		sum, err := awp.ReadSummary(Sim.DirOut, Sim.Key, rank)
		if err != nil {
			chk.Panic("cannot read summary of process %d:\n%v", rank, err)
		}
		Sums[rank] = sum
		for i := range sum.Nodes {
			n := &sum.Nodes[i]
			if prev, ok := Owner[n.Idx]; ok {
				chk.Panic("fault node %d is held by processes %d and %d", n.Idx, prev, rank)
			}
			Nodes[n.Idx] = n
			Owner[n.Idx] = rank
		}
	}
}

// Stress returns the final stress at fault node idx
func Stress(idx int) (s grid.Stress, ok bool) {
	n, ok := Nodes[idx]
	if !ok {
		return
	}
	return n.Stress, true
}

// Missing returns the indices of the fault nodes held by no process
func Missing() (ids []int) {
	for i := 0; i < Sim.Src.Nsrc; i++ {
		if _, ok := Nodes[i]; !ok {
			ids = append(ids, i)
		}
	}
	return
}

// MaxDsig returns the maximum stress change at fault nodes over all processes
func MaxDsig() (res float64) {
	for _, sum := range Sums {
		if sum.MaxDsig > res {
			res = sum.MaxDsig
		}
	}
	return
}

// Table returns a table with the final stress at all fault nodes held by some process
func Table() string {
	ids := make([]int, 0, len(Nodes))
	for idx := range Nodes {
		ids = append(ids, idx)
	}
	sort.Ints(ids)
	var buf bytes.Buffer
	io.Ff(&buf, "%6s%6s%14s", "node", "proc", "x")
	for _, key := range grid.SigKeys {
		io.Ff(&buf, "%14s", "s"+key)
	}
	io.Ff(&buf, "\n")
	for _, idx := range ids {
		n := Nodes[idx]
		io.Ff(&buf, "%6d%6d%14s", idx, Owner[idx], io.Sf("%d,%d,%d", n.X[0], n.X[1], n.X[2]))
		for _, v := range n.Stress {
			io.Ff(&buf, "%14g", v)
		}
		io.Ff(&buf, "\n")
	}
	return buf.String()
}
