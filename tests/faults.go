// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tests implements helpers to generate fault sources for tests and tools
package tests

import (
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/src"
	"github.com/cpmech/gosl/chk"
)

// Ricker returns nodes at coordinates xs with nst samples of a Ricker wavelet of peak
// frequency fp and time step dt. The amplitude of node i is scaled by amp[c]*(i+1)
func Ricker(xs [][3]int, nst int, dt, fp float64, amp grid.Stress) (nodes []src.Node) {
	t0 := 1.0 / fp
	return Generate(xs, nst, func(i, j, c int) float32 {
		a := math.Pi * fp * (float64(j)*dt - t0)
		a *= a
		return float32(float64(amp[c]) * float64(i+1) * (1 - 2*a) * math.Exp(-a))
	})
}

// Generate returns nodes at coordinates xs whose samples are given by f(node, sample, component)
func Generate(xs [][3]int, nst int, f func(i, j, c int) float32) (nodes []src.Node) {
	nodes = make([]src.Node, len(xs))
	for i, x := range xs {
		nodes[i].X = x
		nodes[i].Sig = make([]grid.Stress, nst)
		for j := 0; j < nst; j++ {
			for c := 0; c < grid.NSIG; c++ {
				nodes[i].Sig[j][c] = f(i, j, c)
			}
		}
	}
	return
}

// WriteSrc writes a source file with all nst samples of nodes
//  Input:
//   dirout   -- directory; created if needed
//   fn       -- file name
//   mode     -- src.Text or src.Binary
//   readStep -- number of samples per read-window (text only); must divide nst
//  Output:
//   path -- dirout/fn
func WriteSrc(dirout, fn string, mode src.Mode, nodes []src.Node, readStep, nst int) (path string, err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return
	}
	path = filepath.Join(dirout, fn)
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	switch mode {
	case src.Binary:
		err = src.WriteBinary(f, nodes, nst)
	case src.Text:
		if readStep < 1 || nst%readStep != 0 {
			return path, chk.Err("READ_STEP = %d must divide NST = %d", readStep, nst)
		}
		err = src.WriteText(f, nodes, readStep, nst/readStep)
	default:
		err = chk.Err("cannot write source file with format %v", mode)
	}
	return
}
