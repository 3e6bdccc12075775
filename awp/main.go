// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package awp implements the driver of simulations with kinematic fault sources
package awp

import (
	"time"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/inp"
	"github.com/cpmech/goawp/par"
	"github.com/cpmech/goawp/src"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gosuri/uiprogress"
)

// Main holds all data for a simulation with kinematic fault sources
type Main struct {
	Sim     *inp.Simulation // simulation data
	Comm    par.Comm        // communicator
	Topo    *par.Topo       // sub-domain of this process
	Decomp  *grid.Decomp    // patches and stress fields of this process
	Src     *src.Sources    // fault nodes owned by this process
	Summary *Summary        // summary of run; saved if Sim.Data.Summary
	Nproc   int             // number of processors
	Proc    int             // processor id
	ShowMsg bool            // show messages

	// counters
	Nowned  int // number of fault nodes owned by all processes
	Nsteps  int // number of time steps run
	Nrefill int // number of read-windows loaded after the first one
	level   int // time index of the last injection

	// coverage; computed by processor 0 if some fault nodes are not owned by exactly one process
	Unreached []int // fault nodes owned by no process
	Shared    []int // fault nodes owned by more than one process
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   alias       -- word to be appended to simulation key
//   erasePrev   -- erase previous results files
//   verbose     -- show messages
//   comm        -- communicator; nil means par.World()
func NewMain(simfilepath, alias string, erasePrev, verbose bool, comm par.Comm) (o *Main, err error) {

	// new Main object
	o = new(Main)
	if comm == nil {
		comm = par.World()
	}
	o.Comm = comm
	o.Proc = comm.Rank()
	o.Nproc = comm.Size()

	// fix erasePrev flag
	if o.Proc != 0 {
		erasePrev = false
	}

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev)
	o.ShowMsg = verbose && (o.Proc == 0)
	if o.ShowMsg {
		io.Pf("> Simulation (.sim) file read\n")
	}

	// partition
	g := &o.Sim.Grid
	if g.Px*g.Py != o.Nproc {
		return nil, chk.Err("number of processes (%d) must be equal to px*py = %d*%d", o.Nproc, g.Px, g.Py)
	}
	o.Topo, err = par.NewTopo(o.Proc, g.Px, g.Py, g.Nx, g.Ny, g.Nz)
	if err != nil {
		return nil, err
	}

	// stress field
	o.Decomp, err = grid.NewDecomp(o.Topo.RangeX, o.Topo.RangeY, o.Topo.RangeZ, g.PatchX, g.Backend)
	if err != nil {
		return nil, err
	}
	o.Decomp.Fill(&o.Sim.Stress0)
	if o.ShowMsg {
		io.Pf("> Grid: %v\n", o.Decomp)
	}

	// sources
	err = o.SetSources()
	if err != nil {
		return nil, err
	}
	o.Summary = new(Summary)
	return
}

// SetSources reads the source file and keeps the fault nodes owned by this process.
// All processes fail if any of them fails.
func (o *Main) SetSources() (err error) {

	// input data
	in := o.Sim.SrcInput()
	if o.ShowMsg && in.Nsrc > 0 {
		uiprogress.Start()
		bar := uiprogress.AddBar(in.Nsrc).AppendCompleted().PrependElapsed()
		in.Progress = func(done, total int) { bar.Set(done) }
		defer uiprogress.Stop()
	}

	// read catalog
	var cat *src.Catalog
	if o.Sim.Src.Bcast {
		cat, err = src.BcastCatalog(o.Comm, in)
	} else {
		cat, err = in.ReadCatalog()
	}

	// all processes must succeed
	nfail := []float64{0}
	if err != nil {
		nfail[0] = 1
	}
	res := []float64{0}
	o.Comm.AllReduceSum(res, nfail)
	if res[0] > 0 {
		if err == nil {
			err = chk.Err("cannot read source file on %d processes", int(res[0]))
		}
		return
	}

	// owned nodes
	o.Src = src.NewFromCatalog(in, cat, o.Proc, o.Topo.Bounds())
	o.Src.In.Progress = nil
	err = o.checkCoverage(cat)
	if err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Sources: %d fault nodes (%s); %d owned by all processes\n", in.Nsrc, in.Mode, o.Nowned)
	}
	return
}

// Run runs the time loop injecting fault sources
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// message
	if o.ShowMsg {
		io.Pf("> Running %d time steps\n", o.Sim.Time.Nt)
	}

	// time loop
	nsrc, nst, rs := o.Sim.Src.Nsrc, o.Sim.Src.Nst, o.Sim.Src.ReadStep
	for it := 0; it < o.Sim.Time.Nt; it++ {
		if nsrc > 0 && it < nst {
			if it%rs == 0 && it > 0 {
				err = o.Src.Refill(it / rs)
				if err != nil {
					return
				}
				o.Nrefill++
			}
			if it > 0 {
				o.Decomp.Advance(o.level, it%rs)
			}
			o.level = it % rs
			o.Src.AddSrc(o.level, o.Sim.Dh, o.Sim.Dt, o.Decomp)
		}
		o.Nsteps++
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// checkCoverage counts the fault nodes owned by all processes and reports the unreached ones
func (o *Main) checkCoverage(cat *src.Catalog) (err error) {
	res := []float64{0}
	o.Comm.AllReduceSum(res, []float64{float64(o.Src.Npsrc())})
	o.Nowned = int(res[0])
	nsrc := o.Src.In.Nsrc
	if nsrc < 1 || o.Nowned == nsrc {
		return
	}
	g := &o.Sim.Grid
	if o.Proc == 0 {
		all, e := par.AllBounds(g.Px, g.Py, g.Nx, g.Ny, g.Nz)
		if e != nil {
			io.PfRed("> Warning: cannot compute bounds of processes:\n%v\n", e)
		} else {
			owners, e := src.Coverage(cat, all)
			if e != nil {
				io.PfRed("> Warning: cannot compute owners of fault nodes:\n%v\n", e)
			} else {
				o.Unreached, o.Shared = src.Unreached(owners), src.Shared(owners)
				io.PfRed("> Warning: fault nodes %v are not owned by any process\n", o.Unreached)
				if len(o.Shared) > 0 {
					io.PfRed("> Warning: fault nodes %v are owned by more than one process\n", o.Shared)
				}
			}
		}
	}
	if o.Sim.Src.Strict {
		return chk.Err("%d of %d fault nodes are owned by the processes", o.Nowned, nsrc)
	}
	return
}

// onexit prints final message with cpu times and save summary
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// summary
	if o.Summary != nil && prevErr == nil {
		o.Summary.Set(o, time.Now().Sub(cputime))
		if o.ShowMsg {
			io.Pf("> Fault nodes owned = %d of %d. Max stress change on rank 0 = %g\n", o.Summary.Nowned, o.Summary.Nsrc, o.Summary.MaxDsig)
		}
		if o.Sim.Data.Summary {
			err = o.Summary.Save(o.Sim.DirOut, o.Sim.Key)
			if err != nil {
				return
			}
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		err = prevErr
	}
	return
}
