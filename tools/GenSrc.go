// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/inp"
	"github.com/cpmech/goawp/src"
	"github.com/cpmech/goawp/tests"
	"github.com/cpmech/gosl/io"
)

// Input holds the geometry and rupture function of a planar fault
type Input struct {
	Dir   string    // directory with .sim file
	SimFn string    // simulation filename
	X     int       // x index of fault plane
	Y0    int       // first y index
	Y1    int       // last y index
	Z0    int       // first z index (as in source file; 1 is the bottom)
	Z1    int       // last z index
	Fp    float64   // peak frequency of Ricker wavelet
	Amp   []float64 // [6] amplitudes: xx, yy, zz, xz, yz, xy

	// derived
	inpfn string
}

func (o *Input) PostProcess() {
	if o.Fp <= 0 {
		o.Fp = 1
	}
	if len(o.Amp) != grid.NSIG {
		o.Amp = []float64{0, 0, 0, 1, 0, 0}
	}
	if o.Y1 < o.Y0 {
		o.Y1 = o.Y0
	}
	if o.Z1 < o.Z0 {
		o.Z1 = o.Z0
	}
}

func (o Input) String() (l string) {
	l = io.ArgsTable("INPUT ARGUMENTS",
		"input filename", "inpfn", o.inpfn,
		"directory with .sim file", "Dir", o.Dir,
		"simulation filename", "SimFn", o.SimFn,
		"x index of fault plane", "X", o.X,
		"y range", "Y0:Y1", io.Sf("%d:%d", o.Y0, o.Y1),
		"z range", "Z0:Z1", io.Sf("%d:%d", o.Z0, o.Z1),
		"peak frequency", "Fp", o.Fp,
		"amplitudes", "Amp", io.Sf("%v", o.Amp),
	)
	return
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// input data file
	var in Input
	in.inpfn, _ = io.ArgToFilename(0, "data/gensrc1", ".inp", true)

	// read and parse input data
	b, err := os.ReadFile(in.inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", in.inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", in.inpfn)
		return
	}
	in.PostProcess()

	// print input table
	io.Pf("%v\n", in)

	// load simulation
	sim := inp.ReadSim(filepath.Join(in.Dir, in.SimFn), "", false)
	if sim.SrcFn == "" {
		io.PfRed("simulation has no source file\n")
		return
	}

	// fault nodes
	var xs [][3]int
	for z := in.Z0; z <= in.Z1; z++ {
		for y := in.Y0; y <= in.Y1; y++ {
			xs = append(xs, [3]int{in.X, y, z})
		}
	}
	if len(xs) != sim.Src.Nsrc {
		io.PfYel("warning: %d fault nodes generated but nsrc = %d in %q\n", len(xs), sim.Src.Nsrc, in.SimFn)
	}

	// rupture functions
	var amp grid.Stress
	for c, v := range in.Amp {
		amp[c] = float32(v)
	}
	nodes := tests.Ricker(xs, sim.Src.Nst, sim.Time.Dt, in.Fp, amp)

	// write
	mode := src.Mode(sim.Src.Ifault)
	fn, err := tests.WriteSrc(filepath.Dir(sim.SrcFn), filepath.Base(sim.SrcFn), mode, nodes, sim.Src.ReadStep, sim.Src.Nst)
	if err != nil {
		io.PfRed("cannot write source file: %v\n", err)
		return
	}
	io.PfGreen("%d fault nodes (%s) written to %s\n", len(xs), mode, fn)
}
