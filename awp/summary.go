// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package awp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/par"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NodeSummary holds the final stress at one owned fault node
type NodeSummary struct {
	Idx    int         `json:"idx"`    // index of node in source file
	X      [3]int      `json:"x"`      // global node indices
	Stress grid.Stress `json:"stress"` // stress after the last injection
}

// Summary records the outcome of a run on one process
type Summary struct {
	Rank    int           `json:"rank"`    // process
	Nproc   int           `json:"nproc"`   // number of processes
	Bounds  par.Bounds    `json:"bounds"`  // bounds of process
	Nsrc    int           `json:"nsrc"`    // number of fault nodes in file
	Npsrc   int           `json:"npsrc"`   // number of fault nodes owned by this process
	Nowned  int           `json:"nowned"`  // number of fault nodes owned by all processes
	Nsteps  int           `json:"nsteps"`  // number of time steps
	Nrefill int           `json:"nrefill"` // number of read-windows loaded after the first one
	Level   int           `json:"level"`   // time index of the last injection
	MaxDsig float64       `json:"maxdsig"` // max absolute stress change at owned nodes
	CPUtime string        `json:"cputime"` // elapsed time
	Nodes   []NodeSummary `json:"nodes"`   // [Npsrc] owned nodes
}

// Set collects the results of a run
func (o *Summary) Set(m *Main, cputime time.Duration) {
	b := m.Src.Bounds
	o.Rank = m.Proc
	o.Nproc = m.Nproc
	o.Bounds = b
	o.Nsrc = m.Src.In.Nsrc
	o.Npsrc = m.Src.Npsrc()
	o.Nowned = m.Nowned
	o.Nsteps = m.Nsteps
	o.Nrefill = m.Nrefill
	o.Level = m.level
	o.CPUtime = cputime.String()
	o.MaxDsig = 0
	o.Nodes = make([]NodeSummary, o.Npsrc)
	for k, own := range m.Src.Tab {
		n := &o.Nodes[k]
		n.Idx = own.Idx
		n.X = m.Src.Tab.Global(k, b)
		m.Decomp.Get(o.Level, own.X[0]-1, own.X[1]-1, own.X[2]-1, &n.Stress)
		for c := 0; c < grid.NSIG; c++ {
			o.MaxDsig = math.Max(o.MaxDsig, math.Abs(float64(n.Stress[c]-m.Sim.Stress0[c])))
		}
	}
}

// Save saves summary of process into dirout/key_p<rank>.json
func (o *Summary) Save(dirout, key string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot encode summary:\n%v", err)
	}
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory:\n%v", err)
	}
	fn := filepath.Join(dirout, SummaryFn(key, o.Rank))
	err = os.WriteFile(fn, b, 0644)
	if err != nil {
		return chk.Err("cannot save summary:\n%v", err)
	}
	return
}

// ReadSummary reads the summary of process rank
func ReadSummary(dirout, key string, rank int) (o *Summary, err error) {
	b, err := os.ReadFile(filepath.Join(dirout, SummaryFn(key, rank)))
	if err != nil {
		return
	}
	o = new(Summary)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode summary:\n%v", err)
	}
	return
}

// SummaryFn returns the name of the summary file of process rank
func SummaryFn(key string, rank int) string {
	return io.Sf("%s_p%d.json", key, rank)
}
