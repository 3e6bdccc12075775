// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Halo is the number of halo points on each side of a patch
const Halo = 2

// Patch holds one block of the local grid and its stress field
type Patch struct {
	Id         int   // index in Decomp.Patches
	X0         int   // first (0-based) x index of this patch in the process grid
	Nx, Ny, Nz int   // number of interior points
	Field      Field // stress field, including halo
}

// Decomp splits the grid of one process into patches along x.
// Coordinates given to Decomp are 0-based and relative to the process grid.
type Decomp struct {
	Nx, Ny, Nz int      // number of points of the process grid
	PatchX     int      // width of patches along x
	Backend    string   // field storage
	Patches    []*Patch // all patches
}

// NewDecomp allocates patches and fields
//  Input:
//   nx, ny, nz -- size of the process grid
//   patchX     -- width of patches along x; use 0 for a single patch
//   backend    -- field storage; e.g. "soa" or "tiled"
func NewDecomp(nx, ny, nz, patchX int, backend string) (o *Decomp, err error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, chk.Err("grid dimensions must be positive: %dx%dx%d", nx, ny, nz)
	}
	if patchX < 1 || patchX > nx {
		patchX = nx
	}
	o = &Decomp{Nx: nx, Ny: ny, Nz: nz, PatchX: patchX, Backend: backend}
	npatch := (nx + patchX - 1) / patchX
	o.Patches = make([]*Patch, npatch)
	for p := 0; p < npatch; p++ {
		x0 := p * patchX
		w := utl.Imin(patchX, nx-x0)
		fld, err := NewField(backend, w+2*Halo, ny+2*Halo, nz+2*Halo)
		if err != nil {
			return nil, err
		}
		o.Patches[p] = &Patch{Id: p, X0: x0, Nx: w, Ny: ny, Nz: nz, Field: fld}
	}
	return
}

// Contains tells whether (x,y,z) is inside the process grid
func (o *Decomp) Contains(x, y, z int) bool {
	return x >= 0 && x < o.Nx && y >= 0 && y < o.Ny && z >= 0 && z < o.Nz
}

// GlobalToPatch returns the id of the patch holding (x,y,z)
func (o *Decomp) GlobalToPatch(x, y, z int) int {
	return x / o.PatchX
}

// GlobalToLocal returns the patch-local indices of (x,y,z), including the halo
func (o *Decomp) GlobalToLocal(x, y, z int) (i, j, k int) {
	p := o.Patches[o.GlobalToPatch(x, y, z)]
	return x - p.X0 + Halo, y + Halo, z + Halo
}

// Get reads the stress at process grid point (x,y,z)
func (o *Decomp) Get(it, x, y, z int, s *Stress) {
	i, j, k := o.GlobalToLocal(x, y, z)
	o.Patches[o.GlobalToPatch(x, y, z)].Field.Get(it, i, j, k, s)
}

// Set writes the stress at process grid point (x,y,z)
func (o *Decomp) Set(it, x, y, z int, s *Stress) {
	i, j, k := o.GlobalToLocal(x, y, z)
	o.Patches[o.GlobalToPatch(x, y, z)].Field.Set(it, i, j, k, s)
}

// Fill sets the stress of all patches
func (o *Decomp) Fill(s *Stress) {
	for _, p := range o.Patches {
		p.Field.Fill(s)
	}
}

// Advance copies the stress at time index from into time index to in all patches.
// It must be called before loading time index to from the values at time index from.
func (o *Decomp) Advance(from, to int) {
	for _, p := range o.Patches {
		p.Field.Copy(from, to)
	}
}

// String returns a summary
func (o *Decomp) String() string {
	return io.Sf("%dx%dx%d points in %d patches (%s)", o.Nx, o.Ny, o.Nz, len(o.Patches), o.Backend)
}
