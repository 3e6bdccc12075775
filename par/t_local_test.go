// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func Test_local01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("local01. in-process communicator")
	defer goleak.VerifyNone(tst)

	n := 4
	comms := NewLocal(n)
	bcast := make([][]float64, n)
	sums := make([][]float64, n)
	var g errgroup.Group
	for _, c := range comms {
		c := c
		g.Go(func() error {
			r := float64(c.Rank())
			for rep := 0; rep < 3; rep++ {
				x := []float64{r + 10, r + 20}
				c.BcastFromRoot(x)
				bcast[c.Rank()] = x
				c.Barrier()
				dest := make([]float64, 2)
				c.AllReduceSum(dest, []float64{r, 1})
				sums[c.Rank()] = dest
			}
			return nil
		})
	}
	g.Wait()
	for rank := 0; rank < n; rank++ {
		chk.Array(tst, "bcast", 1e-17, bcast[rank], []float64{10, 20})
		chk.Array(tst, "sum", 1e-17, sums[rank], []float64{6, 4})
		chk.Int(tst, "size", comms[rank].Size(), n)
	}
}
