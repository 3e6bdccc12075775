// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// SoA stores each stress component in its own 3D array. Only one time level is kept.
type SoA struct {
	XX, YY, ZZ [][][]float32
	XZ, YZ, XY [][][]float32
}

// add backend to factory
func init() {
	backends["soa"] = func(n1, n2, n3 int) Field {
		return &SoA{
			XX: alloc3(n1, n2, n3), YY: alloc3(n1, n2, n3), ZZ: alloc3(n1, n2, n3),
			XZ: alloc3(n1, n2, n3), YZ: alloc3(n1, n2, n3), XY: alloc3(n1, n2, n3),
		}
	}
}

// Get reads all components. it is ignored
func (o *SoA) Get(it, i, j, k int, s *Stress) {
	s[XX] = o.XX[i][j][k]
	s[YY] = o.YY[i][j][k]
	s[ZZ] = o.ZZ[i][j][k]
	s[XZ] = o.XZ[i][j][k]
	s[YZ] = o.YZ[i][j][k]
	s[XY] = o.XY[i][j][k]
}

// Set writes all components. it is ignored
func (o *SoA) Set(it, i, j, k int, s *Stress) {
	o.XX[i][j][k] = s[XX]
	o.YY[i][j][k] = s[YY]
	o.ZZ[i][j][k] = s[ZZ]
	o.XZ[i][j][k] = s[XZ]
	o.YZ[i][j][k] = s[YZ]
	o.XY[i][j][k] = s[XY]
}

// Fill sets all points to s
func (o *SoA) Fill(s *Stress) {
	for c, a := range [][][][]float32{o.XX, o.YY, o.ZZ, o.XZ, o.YZ, o.XY} {
		for i := range a {
			for j := range a[i] {
				for k := range a[i][j] {
					a[i][j][k] = s[c]
				}
			}
		}
	}
}

// Copy does nothing since there is only one time level
func (o *SoA) Copy(from, to int) {}

// alloc3 allocates a contiguous n1 x n2 x n3 array
func alloc3(n1, n2, n3 int) (a [][][]float32) {
	buf := make([]float32, n1*n2*n3)
	a = make([][][]float32, n1)
	for i := 0; i < n1; i++ {
		a[i] = make([][]float32, n2)
		for j := 0; j < n2; j++ {
			a[i][j] = buf[(i*n2+j)*n3 : (i*n2+j+1)*n3]
		}
	}
	return
}
