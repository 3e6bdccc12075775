// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import "github.com/cpmech/goawp/grid"

// AddSrc subtracts dt/dh³ times the stress rates of sample it from the stress at every owned node
//  Input:
//   it -- position within the current read-window; also the time index of the field
//   dh -- grid spacing
//   dt -- time step
//   pd -- patch decomposition of this process
func (o *Sources) AddSrc(it int, dh, dt float32, pd *grid.Decomp) {
	vtst := dt / (dh * dh * dh)
	var s grid.Stress
	for j := range o.Tab {
		src := &o.Tab[j]
		idx := src.X[0] - 1
		idy := src.X[1] - 1
		idz := src.X[2] - 1
		fld := pd.Patches[pd.GlobalToPatch(idx, idy, idz)].Field
		x, y, z := pd.GlobalToLocal(idx, idy, idz)
		a := &src.Sig[it]
		fld.Get(it, x, y, z, &s)
		for c := 0; c < grid.NSIG; c++ {
			s[c] -= float32(vtst * a[c])
		}
		fld.Set(it, x, y, z, &s)
	}
}
