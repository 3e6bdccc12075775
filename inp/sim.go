// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/src"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/goawp
	Summary bool   `json:"summary"` // save summary of sources at the end of the run
}

// GridData holds the definition of the global grid and its partition
type GridData struct {
	Nx      int       `json:"nx"`      // number of nodes along x
	Ny      int       `json:"ny"`      // number of nodes along y
	Nz      int       `json:"nz"`      // number of nodes along z
	Dh      float64   `json:"dh"`      // grid spacing
	Px      int       `json:"px"`      // number of processes along x
	Py      int       `json:"py"`      // number of processes along y
	PatchX  int       `json:"patchx"`  // width of patches along x; 0 means one patch per process
	Backend string    `json:"backend"` // stress field storage: "soa" or "tiled"
	Stress0 []float64 `json:"stress0"` // [6] initial stress: xx, yy, zz, xz, yz, xy
}

// TimeData holds the time stepping
type TimeData struct {
	Dt float64 `json:"dt"` // time step length
	Nt int     `json:"nt"` // number of time steps; 0 means NST
}

// SrcData holds data for kinematic fault sources
type SrcData struct {
	Ifault   int    `json:"ifault"`   // 0: text file, 1: binary file, 2: split files (not implemented)
	Nsrc     int    `json:"nsrc"`     // number of fault nodes
	ReadStep int    `json:"readstep"` // number of time steps in a read-window; 0 means NST
	Nst      int    `json:"nst"`      // number of time steps of rupture functions
	File     string `json:"file"`     // source file
	FileI2   string `json:"filei2"`   // prefix of split source files
	AbsPath  bool   `json:"abspath"`  // file names are given with absolute path
	Bcast    bool   `json:"bcast"`    // read on root process only and broadcast
	Strict   bool   `json:"strict"`   // fail if some fault node is not owned by any process
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data Data     `json:"data"` // global data
	Grid GridData `json:"grid"` // grid and partition
	Time TimeData `json:"time"` // time stepping
	Src  SrcData  `json:"src"`  // fault sources

	// derived
	DirOut  string      // directory to save results
	Key     string      // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
	SrcFn   string      // source file with path
	SrcFnI2 string      // prefix of split source files with path
	Dh      float32     // grid spacing in working precision
	Dt      float32     // time step in working precision
	Stress0 grid.Stress // initial stress
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b := io.ReadFile(simfilepath)

	// set default values
	o.Grid.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/goawp/" + fnkey
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// check and derive
	err = o.Grid.PostProcess()
	if err != nil {
		chk.Panic("ReadSim: %v", err)
	}
	err = o.Src.PostProcess()
	if err != nil {
		chk.Panic("ReadSim: %v", err)
	}
	if o.Time.Dt <= 0 {
		chk.Panic("ReadSim: time step must be positive. dt = %g is invalid", o.Time.Dt)
	}
	if o.Time.Nt < 1 {
		o.Time.Nt = o.Src.Nst
	}
	o.Dh = float32(o.Grid.Dh)
	o.Dt = float32(o.Time.Dt)
	for i, v := range o.Grid.Stress0 {
		o.Stress0[i] = float32(v)
	}

	// source files
	ddir := dir
	if o.Src.AbsPath {
		ddir = ""
	}
	if o.Src.File != "" {
		o.SrcFn = filepath.Join(ddir, os.ExpandEnv(o.Src.File))
	}
	if o.Src.FileI2 != "" {
		o.SrcFnI2 = filepath.Join(ddir, os.ExpandEnv(o.Src.FileI2))
	}

	// results
	return &o
}

// SrcInput returns the input data for reading the source file
func (o *Simulation) SrcInput() *src.Input {
	return &src.Input{
		Mode:     src.Mode(o.Src.Ifault),
		Nsrc:     o.Src.Nsrc,
		ReadStep: o.Src.ReadStep,
		Nst:      o.Src.Nst,
		Nz:       o.Grid.Nz,
		Fn:       o.SrcFn,
		FnI2:     o.SrcFnI2,
	}
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// extra settings //////////////////////////////////////////////////////////////////////////////////

// SetDefault sets defaults values
func (o *GridData) SetDefault() {
	o.Px = 1
	o.Py = 1
	o.Backend = "soa"
}

// PostProcess checks the grid data
func (o *GridData) PostProcess() (err error) {
	if o.Nx < 1 || o.Ny < 1 || o.Nz < 1 {
		return chk.Err("grid dimensions must be positive: %dx%dx%d", o.Nx, o.Ny, o.Nz)
	}
	if o.Dh <= 0 {
		return chk.Err("grid spacing must be positive. dh = %g is invalid", o.Dh)
	}
	if o.Px < 1 || o.Py < 1 {
		return chk.Err("number of processes along x and y must be positive. px=%d py=%d", o.Px, o.Py)
	}
	if len(o.Stress0) != 0 && len(o.Stress0) != grid.NSIG {
		return chk.Err("initial stress must have %d components. %d is invalid", grid.NSIG, len(o.Stress0))
	}
	return
}

// PostProcess sets derived values of source data
func (o *SrcData) PostProcess() (err error) {
	if o.Nsrc < 1 {
		return
	}
	if o.Nst < 1 {
		return chk.Err("number of time steps of rupture functions must be positive. nst = %d is invalid", o.Nst)
	}
	if o.ReadStep < 1 {
		o.ReadStep = o.Nst
	}
	return
}
