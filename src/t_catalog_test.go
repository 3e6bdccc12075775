// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_catalog01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog01. text file")

	os.MkdirAll(dirout, 0777)
	fn := filepath.Join(dirout, "catalog01.txt")
	err := os.WriteFile(fn, []byte(`3 4 1
1 2 3 4 5 6
6 5 4 3 2 1
  7 8 5
 0.5 -1.5 2.5e3 0 0 1e-3
	1 1 1 1 1 1
`), 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v", err)
		return
	}

	cat, err := ReadCatalog(Text, 2, 2, 10, 5, fn)
	if err != nil {
		tst.Errorf("ReadCatalog failed:\n%v", err)
		return
	}
	io.Pforan("cat = %v\n", cat)
	chk.Int(tst, "nnodes", len(cat.Nodes), 2)
	chk.Ints(tst, "X0 (z flipped)", cat.Nodes[0].X[:], []int{3, 4, 5})
	chk.Ints(tst, "X1 (z flipped)", cat.Nodes[1].X[:], []int{7, 8, 1})
	chk.Array(tst, "xx0", 1e-17, f64(cat.Nodes[0].Sig, grid.XX), []float64{1, 6})
	chk.Array(tst, "xy0", 1e-17, f64(cat.Nodes[0].Sig, grid.XY), []float64{6, 1})
	chk.Array(tst, "zz1", 1e-17, f64(cat.Nodes[1].Sig, grid.ZZ), []float64{2500, 1})
	chk.Array(tst, "xy1", 1e-17, f64(cat.Nodes[1].Sig, grid.XY), []float64{float64(float32(1e-3)), 1})
}

func Test_catalog02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog02. binary file")

	nst, readStep, nz := 5, 3, 20
	xs := [][3]int{{1, 2, 1}, {10, 20, 20}, {5, 5, 7}}
	fn := writeFile(tst, "catalog02.bin", Binary, synthetic(xs, nst), readStep, nst)

	var count []int
	in := Input{Mode: Binary, Nsrc: len(xs), ReadStep: readStep, Nst: nst, Nz: nz, Fn: fn,
		Progress: func(done, total int) {
			chk.Int(tst, "total", total, len(xs))
			count = append(count, done)
		},
	}
	cat, err := in.ReadCatalog()
	if err != nil {
		tst.Errorf("ReadCatalog failed:\n%v", err)
		return
	}
	chk.Ints(tst, "progress", count, []int{1, 2, 3})
	chk.Int(tst, "ReadStep", cat.ReadStep, readStep)
	for i, x := range xs {
		nod := cat.Nodes[i]
		chk.Ints(tst, io.Sf("X%d", i), nod.X[:], []int{x[0], x[1], nz + 1 - x[2]})
		chk.Int(tst, "nsamples", len(nod.Sig), readStep)
		for c := 0; c < grid.NSIG; c++ {
			b := float64(i*1000 + c)
			chk.Array(tst, io.Sf("%d:%s", i, grid.SigKeys[c]), 1e-17, f64(nod.Sig, c), []float64{b, b + 10, b + 20})
		}
	}
}

func Test_catalog03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog03. errors")

	// split files
	_, err := ReadCatalog(Split, 1, 1, 1, 1, "/tmp/goawp/src/does-not-matter")
	io.Pforan("%v\n", err)
	if !errors.Is(err, ErrNotImplemented) {
		tst.Errorf("Split mode should fail with ErrNotImplemented. err = %v\n", err)
	}

	// unknown mode
	_, err = ReadCatalog(Mode(-1), 1, 1, 1, 1, "/tmp/goawp/src/does-not-matter")
	if !errors.Is(err, ErrBadMode) {
		tst.Errorf("Mode -1 should fail with ErrBadMode. err = %v\n", err)
	}

	// missing file
	_, err = ReadCatalog(Text, 1, 1, 1, 1, "/tmp/goawp/src/does-not-exist.txt")
	io.Pforan("%v\n", err)
	if !errors.Is(err, fs.ErrNotExist) {
		tst.Errorf("missing file should fail with ErrNotExist. err = %v\n", err)
	}

	// bad sizes
	_, err = ReadCatalog(Binary, 1, 4, 3, 1, "/tmp/goawp/src/does-not-matter")
	if err == nil {
		tst.Errorf("NST < READ_STEP should fail\n")
	}

	// no nodes: no file access
	cat, err := ReadCatalog(Split, 0, 1, 1, 1, "/tmp/goawp/src/does-not-exist.txt")
	if err != nil {
		tst.Errorf("Nsrc=0 should not fail. err = %v\n", err)
		return
	}
	chk.Int(tst, "nnodes", len(cat.Nodes), 0)
}

func Test_catalog04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog04. truncated files")

	// binary: second node is incomplete
	nst := 4
	fn := writeFile(tst, "catalog04.bin", Binary, synthetic([][3]int{{1, 1, 1}, {2, 2, 2}}, nst), 2, nst)
	b, err := os.ReadFile(fn)
	if err != nil {
		tst.Errorf("cannot read file: %v", err)
		return
	}
	err = os.WriteFile(fn, b[:len(b)-5], 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v", err)
		return
	}
	_, err = ReadCatalog(Binary, 2, 2, nst, 10, fn)
	io.Pforan("%v\n", err)
	if !errors.Is(err, ErrTruncated) {
		tst.Errorf("truncated binary file should fail with ErrTruncated. err = %v\n", err)
	}

	// binary: more nodes than in file
	fn = writeFile(tst, "catalog04b.bin", Binary, synthetic([][3]int{{1, 1, 1}}, nst), 2, nst)
	_, err = ReadCatalog(Binary, 2, 2, nst, 10, fn)
	if !errors.Is(err, ErrTruncated) {
		tst.Errorf("binary file with fewer nodes should fail with ErrTruncated. err = %v\n", err)
	}

	// text: missing sample line
	fn = filepath.Join(dirout, "catalog04.txt")
	os.WriteFile(fn, []byte("1 1 1\n1 2 3 4 5 6\n"), 0644)
	_, err = ReadCatalog(Text, 1, 2, 2, 10, fn)
	io.Pforan("%v\n", err)
	if !errors.Is(err, ErrTruncated) {
		tst.Errorf("truncated text file should fail with ErrTruncated. err = %v\n", err)
	}

	// text: malformed value
	os.WriteFile(fn, []byte("1 1 1\n1 2 3 4 five 6\n"), 0644)
	_, err = ReadCatalog(Text, 1, 1, 2, 10, fn)
	io.Pforan("%v\n", err)
	if !errors.Is(err, ErrTruncated) {
		tst.Errorf("malformed text file should fail with ErrTruncated. err = %v\n", err)
	}
}

func Test_catalog05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catalog05. text values beyond float32")

	os.MkdirAll(dirout, 0777)
	fn := filepath.Join(dirout, "catalog05.txt")
	err := os.WriteFile(fn, []byte("1 1 1\n1e39 -1e39 1e-50 3.4e38 2 3\n"), 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v", err)
		return
	}
	cat, err := ReadCatalog(Text, 1, 1, 1, 10, fn)
	if err != nil {
		tst.Errorf("ReadCatalog failed:\n%v", err)
		return
	}
	s := cat.Nodes[0].Sig[0]
	io.Pforan("s = %v\n", s)
	if !math.IsInf(float64(s[grid.XX]), 1) || !math.IsInf(float64(s[grid.YY]), -1) {
		tst.Errorf("overflow should give ±Inf. s = %v\n", s)
	}
	chk.Float64(tst, "underflow", 1e-17, float64(s[grid.ZZ]), 0)
	chk.Float64(tst, "largest", 1e31, float64(s[grid.XZ]), 3.4e38)
	chk.Float64(tst, "xy", 1e-17, float64(s[grid.XY]), 3)
}
