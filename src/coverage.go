// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"github.com/cpmech/goawp/par"
	"golang.org/x/sync/errgroup"
)

// Coverage returns the ranks owning each node of cat when the processes have the given bounds.
// One goroutine is used for each rank; cat and all are only read.
//  Output:
//   owners -- [Nsrc][nowners] ranks owning each node, in increasing order
func Coverage(cat *Catalog, all []par.Bounds) (owners [][]int, err error) {
	inside := make([][]bool, len(all))
	var g errgroup.Group
	for rank, b := range all {
		rank, b := rank, b
		g.Go(func() error {
			if err := b.Check(); err != nil {
				return err
			}
			in := make([]bool, len(cat.Nodes))
			for i := range cat.Nodes {
				in[i] = b.Contains(cat.Nodes[i].X)
			}
			inside[rank] = in
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return
	}
	owners = make([][]int, len(cat.Nodes))
	for i := range cat.Nodes {
		for rank := range all {
			if inside[rank][i] {
				owners[i] = append(owners[i], rank)
			}
		}
	}
	return
}

// Unreached returns the indices of nodes without owner
func Unreached(owners [][]int) (ids []int) {
	for i, o := range owners {
		if len(o) == 0 {
			ids = append(ids, i)
		}
	}
	return
}

// Shared returns the indices of nodes with more than one owner
func Shared(owners [][]int) (ids []int) {
	for i, o := range owners {
		if len(o) > 1 {
			ids = append(ids, i)
		}
	}
	return
}
