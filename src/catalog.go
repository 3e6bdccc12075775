// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package src implements kinematic fault sources: reading of rupture files, assignment of
// fault nodes to processes and injection of stress rates into the stress field
package src

import (
	"fmt"
	"os"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/gosl/chk"
)

// Mode selects the format of the source file (IFAULT)
type Mode int

// source file formats
const (
	Text   Mode = 0 // one file; text; READ_STEP samples per node and window
	Binary Mode = 1 // one file; binary; NST samples per node
	Split  Mode = 2 // one file per node; not implemented
)

// String returns the name of the format
func (o Mode) String() string {
	switch o {
	case Text:
		return "text"
	case Binary:
		return "binary"
	case Split:
		return "split"
	}
	return fmt.Sprintf("unknown(%d)", int(o))
}

// errors
var (
	ErrNotImplemented = chk.Err("source format not implemented")
	ErrBadMode        = chk.Err("invalid source format selector")
	ErrTruncated      = chk.Err("source file is truncated or malformed")
	ErrWindow         = chk.Err("read-window out of range")
)

// Node holds the data of one fault node as read from the source file
type Node struct {
	X   [3]int        // global node indices (1-based). z is already flipped
	Sig []grid.Stress // [ReadStep] stress rates: xx, yy, zz, xz, yz, xy
}

// Catalog holds all fault nodes in file order
type Catalog struct {
	ReadStep int    // number of samples per node
	Nodes    []Node // [Nsrc] all nodes
}

// Input holds the data needed to read the source file
type Input struct {
	Mode     Mode   // file format (IFAULT)
	Nsrc     int    // number of fault nodes in file (NSRC)
	ReadStep int    // number of time steps in a read-window (READ_STEP)
	Nst      int    // number of time steps of rupture functions (NST)
	Nz       int    // number of grid nodes along z; used to flip z
	Fn       string // source file (INSRC)
	FnI2     string // prefix of split source files (INSRC_I2); Split mode only

	// Progress is called after each node is read [optional]
	Progress func(done, total int)
}

// Check checks the format selector and sizes. Nothing is checked if Nsrc < 1
func (o *Input) Check() (err error) {
	if o.Nsrc < 1 {
		return
	}
	switch o.Mode {
	case Text, Binary:
	case Split:
		return fmt.Errorf("IFAULT == 2 (split files with prefix %q) is not implemented. Please use IFAULT = 1 instead: %w", o.FnI2, ErrNotImplemented)
	default:
		return fmt.Errorf("IFAULT == %d: %w", int(o.Mode), ErrBadMode)
	}
	if o.ReadStep < 1 {
		return chk.Err("READ_STEP must be positive. %d is invalid", o.ReadStep)
	}
	if o.Nst < o.ReadStep {
		return chk.Err("NST must not be smaller than READ_STEP. %d < %d", o.Nst, o.ReadStep)
	}
	if o.Nz < 1 {
		return chk.Err("NZ must be positive. %d is invalid", o.Nz)
	}
	return
}

// ReadCatalog reads the first read-window of all nodes in the source file.
//  Note: in Binary mode, the whole block of NST samples of each node is consumed
//        and only the first READ_STEP samples are kept
func (o *Input) ReadCatalog() (cat *Catalog, err error) {
	cat = &Catalog{ReadStep: o.ReadStep}
	if o.Nsrc < 1 {
		return
	}
	err = o.Check()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(o.Fn)
	if err != nil {
		return nil, fmt.Errorf("cannot open source file %q: %w", o.Fn, err)
	}
	defer f.Close()
	cat.Nodes = make([]Node, o.Nsrc)
	switch o.Mode {
	case Binary:
		err = readBinary(f, o, cat.Nodes)
	case Text:
		err = readText(f, o, cat.Nodes)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read source file %q: %w", o.Fn, err)
	}
	return
}

// ReadCatalog reads the first read-window of all nodes in file fn
func ReadCatalog(mode Mode, nsrc, readStep, nst, nz int, fn string) (*Catalog, error) {
	in := Input{Mode: mode, Nsrc: nsrc, ReadStep: readStep, Nst: nst, Nz: nz, Fn: fn}
	return in.ReadCatalog()
}

// flip converts the z index of the source file to the z index of the grid
func flip(z, nz int) int {
	return nz + 1 - z
}
