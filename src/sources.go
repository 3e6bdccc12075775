// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"fmt"

	"github.com/cpmech/goawp/par"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Sources holds the fault nodes owned by one process
type Sources struct {
	In      Input      // input data
	Rank    int        // this process
	Bounds  par.Bounds // bounds of this process
	SrcProc int        // Rank if this process owns fault nodes; -1 otherwise
	Tab     Table      // [Npsrc] owned nodes
	Win     int        // current read-window
}

// New reads the source file and keeps the nodes inside bounds b.
// Nothing is read if in.Nsrc < 1.
func New(in *Input, rank int, b par.Bounds) (o *Sources, err error) {
	o = &Sources{In: *in, Rank: rank, Bounds: b, SrcProc: -1}
	if in.Nsrc < 1 {
		return
	}
	cat, err := in.ReadCatalog()
	if err != nil {
		return nil, err
	}
	o.Assign(cat)
	return
}

// NewFromCatalog keeps the nodes of an already read catalog inside bounds b
func NewFromCatalog(in *Input, cat *Catalog, rank int, b par.Bounds) (o *Sources) {
	o = &Sources{In: *in, Rank: rank, Bounds: b, SrcProc: -1}
	if in.Nsrc < 1 {
		return
	}
	o.Assign(cat)
	return
}

// Assign sets the table of owned nodes from cat
func (o *Sources) Assign(cat *Catalog) {
	o.Tab = Resolve(cat, o.Bounds)
	o.SrcProc = -1
	if len(o.Tab) > 0 {
		o.SrcProc = o.Rank
	}
	o.Win = 0
}

// Npsrc returns the number of owned nodes
func (o *Sources) Npsrc() int { return len(o.Tab) }

// Owns tells whether this process owns at least one node
func (o *Sources) Owns() bool { return o.SrcProc >= 0 }

// Nwin returns the number of read-windows needed to cover NST steps
func (o *Sources) Nwin() int {
	if o.In.ReadStep < 1 {
		return 0
	}
	return (o.In.Nst + o.In.ReadStep - 1) / o.In.ReadStep
}

// Refill replaces the samples of all owned nodes by the ones of read-window win.
// The set and order of owned nodes do not change.
//  Binary: the records of owned nodes are read directly at the window offset
//  Text:   the file is scanned up to block win; coordinates must match the owned nodes
func (o *Sources) Refill(win int) (err error) {
	if win < 0 || win >= o.Nwin() {
		return fmt.Errorf("window %d is not in [0, %d): %w", win, o.Nwin(), ErrWindow)
	}
	if len(o.Tab) == 0 {
		o.Win = win
		return
	}
	idx := make([]int, len(o.Tab))
	for k := range o.Tab {
		idx[k] = o.Tab[k].Idx
	}
	switch o.In.Mode {
	case Binary:
		sig, err := readBinaryWindow(o.In.Fn, &o.In, win, idx)
		if err != nil {
			return err
		}
		for k := range o.Tab {
			copy(o.Tab[k].Sig, sig[k])
		}
	case Text:
		xs, sig, err := readTextWindow(o.In.Fn, &o.In, win, idx)
		if err != nil {
			return err
		}
		for k := range o.Tab {
			if xs[k] != o.Tab.Global(k, o.Bounds) {
				return chk.Err("node %d in window %d of %q is at %v but it was at %v in window 0", o.Tab[k].Idx, win, o.In.Fn, xs[k], o.Tab.Global(k, o.Bounds))
			}
		}
		for k := range o.Tab {
			copy(o.Tab[k].Sig, sig[k])
		}
	default:
		return o.In.Check()
	}
	o.Win = win
	return
}

// String returns a summary
func (o *Sources) String() string {
	return io.Sf("rank %d: %d of %d fault nodes (%s, READ_STEP=%d, NST=%d) in %v", o.Rank, o.Npsrc(), o.In.Nsrc, o.In.Mode, o.In.ReadStep, o.In.Nst, o.Bounds)
}
