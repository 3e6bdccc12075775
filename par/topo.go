// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package par implements the process topology of the 2D horizontal partition
package par

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Ghost is the number of ghost cells on each side of the horizontal axes
const Ghost = 2

// Bounds holds the inclusive range of global node indices (1-based) covered by one process.
//  Note: the x and y ranges are already shifted by the ghost margin
type Bounds struct {
	Lo [3]int // lower bound for each axis
	Hi [3]int // upper bound for each axis
}

// Contains tells whether the global node x is inside the bounds
func (o Bounds) Contains(x [3]int) bool {
	return x[0] >= o.Lo[0] && x[0] <= o.Hi[0] &&
		x[1] >= o.Lo[1] && x[1] <= o.Hi[1] &&
		x[2] >= o.Lo[2] && x[2] <= o.Hi[2]
}

// Check returns an error if some lower bound is greater than the corresponding upper bound
func (o Bounds) Check() (err error) {
	for a := 0; a < 3; a++ {
		if o.Lo[a] > o.Hi[a] {
			return chk.Err("bounds are inconsistent along axis %d: %d > %d", a, o.Lo[a], o.Hi[a])
		}
	}
	return
}

// String returns a short representation
func (o Bounds) String() string {
	return io.Sf("[%d:%d, %d:%d, %d:%d]", o.Lo[0], o.Hi[0], o.Lo[1], o.Hi[1], o.Lo[2], o.Hi[2])
}

// Topo holds the position of one process in the 2D Cartesian partition.
// The partition is horizontal only; each process holds every z node.
type Topo struct {
	Rank   int // this process
	Nproc  int // number of processes == Px * Py
	Px, Py int // number of processes along x and y
	Cx, Cy int // coordinates of this process in the Cartesian grid

	// global grid
	Nx, Ny, Nz int // number of nodes along each axis

	// sub-domain
	StartX, StartY, StartZ int // 1-based start index, including the ghost margin along x and y
	RangeX, RangeY, RangeZ int // number of real nodes owned along each axis
}

// NewTopo computes the sub-domain of process rank
func NewTopo(rank, px, py, nx, ny, nz int) (o *Topo, err error) {
	if px < 1 || py < 1 {
		return nil, chk.Err("number of processes along x and y must be positive. px=%d py=%d", px, py)
	}
	if rank < 0 || rank >= px*py {
		return nil, chk.Err("rank %d is out of range [0, %d)", rank, px*py)
	}
	if nx < px || ny < py || nz < 1 {
		return nil, chk.Err("grid %dx%dx%d is too small for %dx%d processes", nx, ny, nz, px, py)
	}
	o = new(Topo)
	o.Rank = rank
	o.Nproc = px * py
	o.Px, o.Py = px, py
	o.Cx, o.Cy = rank%px, rank/px
	o.Nx, o.Ny, o.Nz = nx, ny, nz
	var first int
	first, o.RangeX = split(nx, px, o.Cx)
	o.StartX = first + 1 - Ghost
	first, o.RangeY = split(ny, py, o.Cy)
	o.StartY = first + 1 - Ghost
	o.StartZ, o.RangeZ = 1, nz
	return
}

// Bounds returns the inclusive bounds used to decide whether a fault node belongs to this process
func (o *Topo) Bounds() (b Bounds) {
	b.Lo[0] = o.StartX + Ghost
	b.Hi[0] = b.Lo[0] + o.RangeX - 1
	b.Lo[1] = o.StartY + Ghost
	b.Hi[1] = b.Lo[1] + o.RangeY - 1
	b.Lo[2] = o.StartZ
	b.Hi[2] = b.Lo[2] + o.RangeZ - 1
	return
}

// String returns a summary of the topology
func (o *Topo) String() string {
	return io.Sf("rank %d of %d @ (%d,%d): start=(%d,%d,%d) range=(%d,%d,%d)",
		o.Rank, o.Nproc, o.Cx, o.Cy, o.StartX, o.StartY, o.StartZ, o.RangeX, o.RangeY, o.RangeZ)
}

// AllBounds returns the bounds of every process in a px by py partition
func AllBounds(px, py, nx, ny, nz int) (all []Bounds, err error) {
	all = make([]Bounds, px*py)
	for rank := range all {
		t, err := NewTopo(rank, px, py, nx, ny, nz)
		if err != nil {
			return nil, err
		}
		all[rank] = t.Bounds()
	}
	return
}

// split returns the 0-based first index and the number of nodes of the c-th piece of n
// nodes divided into np pieces. The remainder goes to the first pieces.
func split(n, np, c int) (first, count int) {
	count = n / np
	rem := n % np
	first = c * count
	if c < rem {
		count++
		first += c
	} else {
		first += rem
	}
	return
}
