// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/par"
)

// Owned holds one fault node owned by this process
type Owned struct {
	X   [3]int        // local node indices (1-based) == global - lower bound + 1
	Idx int           // index of node in catalog (file order)
	Sig []grid.Stress // [ReadStep] stress rates of current read-window
}

// Table holds all nodes owned by this process in catalog order
type Table []Owned

// Resolve selects the nodes of cat inside bounds b and converts their coordinates to
// local indices. The result is nil if no node is inside b.
//  Note: nodes outside the bounds of all processes are silently dropped
func Resolve(cat *Catalog, b par.Bounds) (tab Table) {

	// count
	npsrc := 0
	for i := range cat.Nodes {
		if b.Contains(cat.Nodes[i].X) {
			npsrc++
		}
	}
	if npsrc == 0 {
		return
	}

	// copy
	tab = make(Table, npsrc)
	k := 0
	for i, nod := range cat.Nodes {
		if !b.Contains(nod.X) {
			continue
		}
		for a := 0; a < 3; a++ {
			tab[k].X[a] = nod.X[a] - b.Lo[a] + 1
		}
		tab[k].Idx = i
		tab[k].Sig = make([]grid.Stress, len(nod.Sig))
		copy(tab[k].Sig, nod.Sig)
		k++
	}
	return
}

// Global returns the global node indices of owned node k given the bounds used in Resolve
func (o Table) Global(k int, b par.Bounds) (x [3]int) {
	for a := 0; a < 3; a++ {
		x[a] = o[k].X[a] + b.Lo[a] - 1
	}
	return
}
