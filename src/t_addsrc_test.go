// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/goawp/par"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_addsrc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("addsrc01. single node; all channels")

	s0 := grid.Stress{10, -20, 30.5, 1e-3, 7, -0.25}
	v := grid.Stress{1.5, -2, 3.25, 4e-2, 5, 6e3}
	dh, dt := float32(12.5), float32(0.0025)
	vtst := dt / (dh * dh * dh)

	for _, backend := range grid.Backends() {
		io.Pforan("backend = %s\n", backend)
		pd, err := grid.NewDecomp(6, 5, 4, 2, backend)
		if err != nil {
			tst.Errorf("NewDecomp failed:\n%v", err)
			return
		}
		pd.Fill(&s0)
		o := &Sources{Tab: Table{{X: [3]int{4, 2, 3}, Sig: []grid.Stress{{}, v}}}}
		o.AddSrc(1, dh, dt, pd)

		var s grid.Stress
		pd.Get(1, 3, 1, 2, &s)
		for c := 0; c < grid.NSIG; c++ {
			expected := s0[c] - float32(vtst*v[c])
			chk.Float64(tst, grid.SigKeys[c], 0, float64(s[c]), float64(expected))
		}

		// neighbours are untouched
		pd.Get(1, 2, 1, 2, &s)
		chk.Array(tst, "neighbour", 0, tof64(s), tof64(s0))
		pd.Get(1, 3, 1, 3, &s)
		chk.Array(tst, "neighbour", 0, tof64(s), tof64(s0))
	}
}

func Test_addsrc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("addsrc02. text file; READ_STEP=2; dt/dh³=0.5")

	os.MkdirAll(dirout, 0777)
	fn := filepath.Join(dirout, "addsrc02.txt")
	err := os.WriteFile(fn, []byte("3 2 4\n1 2 3 4 5 6\n6 5 4 3 2 1\n"), 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v", err)
		return
	}

	// process grid: 4x4x5 nodes starting at global (3,1,1)
	nz := 5
	b := par.Bounds{Lo: [3]int{3, 1, 1}, Hi: [3]int{6, 4, nz}}
	in := Input{Mode: Text, Nsrc: 1, ReadStep: 2, Nst: 2, Nz: nz, Fn: fn}
	o, err := New(&in, 3, b)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	io.Pforan("%v\n", o)
	chk.Int(tst, "SrcProc", o.SrcProc, 3)
	chk.Int(tst, "npsrc", o.Npsrc(), 1)
	chk.Ints(tst, "X", o.Tab[0].X[:], []int{1, 2, 2}) // z: 5+1-4 = 2

	pd, err := grid.NewDecomp(4, 4, nz, 0, "soa")
	if err != nil {
		tst.Errorf("NewDecomp failed:\n%v", err)
		return
	}
	s0 := grid.Stress{100, 100, 100, 100, 100, 100}
	pd.Fill(&s0)

	dh, dt := float32(2), float32(4)
	var s grid.Stress
	o.AddSrc(0, dh, dt, pd)
	pd.Get(0, 0, 1, 1, &s)
	chk.Float64(tst, "xx after step 0", 0, float64(s[grid.XX]), 99.5)
	chk.Float64(tst, "xy after step 0", 0, float64(s[grid.XY]), 97)

	o.AddSrc(1, dh, dt, pd)
	pd.Get(1, 0, 1, 1, &s)
	chk.Float64(tst, "xx after step 1", 0, float64(s[grid.XX]), 96.5)
	chk.Array(tst, "all after step 1", 0, tof64(s), []float64{96.5, 96.5, 96.5, 96.5, 96.5, 96.5})
}

func Test_addsrc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("addsrc03. no nodes: no-op")

	o, err := New(&Input{Mode: Binary, Nsrc: 0, Fn: "/tmp/goawp/src/does-not-exist.bin"}, 0, par.Bounds{})
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	if o.Owns() || o.Npsrc() != 0 || o.Tab != nil {
		tst.Errorf("sources must be empty\n")
		return
	}
	pd, _ := grid.NewDecomp(2, 2, 2, 0, "tiled")
	s0 := grid.Stress{1, 2, 3, 4, 5, 6}
	pd.Fill(&s0)
	o.AddSrc(0, 1, 1, pd)
	var s grid.Stress
	pd.Get(0, 1, 1, 1, &s)
	chk.Array(tst, "stress", 0, tof64(s), tof64(s0))
}

func Test_addsrc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("addsrc04. many nodes over patches; compare backends")

	nx, ny, nz := 9, 7, 5
	cat := randomCatalog(60, nx, ny, nz, 3)
	b := par.Bounds{Lo: [3]int{1, 1, 1}, Hi: [3]int{nx, ny, nz}}
	o := NewFromCatalog(&Input{Mode: Text, Nsrc: 60, ReadStep: 3, Nst: 3, Nz: nz}, cat, 0, b)

	s0 := grid.Stress{1, 1, 1, 1, 1, 1}
	var res [][]float64
	for _, backend := range grid.Backends() {
		pd, _ := grid.NewDecomp(nx, ny, nz, 4, backend)
		pd.Fill(&s0)
		o.AddSrc(2, 1, 1e-6, pd)
		var vals []float64
		var s grid.Stress
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					pd.Get(2, i, j, k, &s)
					vals = append(vals, tof64(s)...)
				}
			}
		}
		res = append(res, vals)
	}
	chk.Array(tst, "soa vs tiled", 0, res[0], res[1])

	// number of modified points
	changed := 0
	for p := 0; p < len(res[0]); p += grid.NSIG {
		if res[0][p] != 1 {
			changed++
		}
	}
	io.Pforan("changed = %d, npsrc = %d\n", changed, o.Npsrc())
	if changed == 0 || changed > o.Npsrc() {
		tst.Errorf("number of changed points %d is inconsistent with %d owned nodes\n", changed, o.Npsrc())
	}
}

func tof64(s grid.Stress) (v []float64) {
	v = make([]float64, grid.NSIG)
	for i, x := range s {
		v[i] = float64(x)
	}
	return
}
