// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// dirout is the directory for temporary files
const dirout = "/tmp/goawp/src"

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// synthetic returns nodes at coordinates xs (as in the file) with nst samples each.
// sample j of node i has components i*1000 + j*10 + c
func synthetic(xs [][3]int, nst int) (nodes []Node) {
	nodes = make([]Node, len(xs))
	for i, x := range xs {
		nodes[i].X = x
		nodes[i].Sig = make([]grid.Stress, nst)
		for j := 0; j < nst; j++ {
			for c := 0; c < grid.NSIG; c++ {
				nodes[i].Sig[j][c] = float32(i*1000 + j*10 + c)
			}
		}
	}
	return
}

// writeFile writes a source file with the given format and returns its path
func writeFile(tst *testing.T, fn string, mode Mode, nodes []Node, readStep, nst int) string {
	err := os.MkdirAll(dirout, 0777)
	if err != nil {
		tst.Fatalf("cannot create directory: %v", err)
	}
	path := filepath.Join(dirout, fn)
	f, err := os.Create(path)
	if err != nil {
		tst.Fatalf("cannot create file: %v", err)
	}
	defer f.Close()
	switch mode {
	case Binary:
		err = WriteBinary(f, nodes, nst)
	case Text:
		err = WriteText(f, nodes, readStep, nst/readStep)
	}
	if err != nil {
		tst.Fatalf("cannot write file: %v", err)
	}
	return path
}

// f64 converts samples of one channel to float64
func f64(sig []grid.Stress, c int) (v []float64) {
	v = make([]float64, len(sig))
	for j, s := range sig {
		v[j] = float64(s[c])
	}
	return
}
