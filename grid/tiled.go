// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// constants for the tiled storage
const (
	TILE = 4 // tile edge length
	NTL  = 2 // number of time levels
)

// Tiled stores each stress component in a flat array of TILE³ blocks with NTL time levels.
// Elements are read and written through float64 values.
type Tiled struct {
	N1, N2, N3 int         // number of points
	T1, T2, T3 int         // number of tiles
	Data       [][]float32 // [NSIG][NTL*T1*T2*T3*TILE³]
}

// add backend to factory
func init() {
	backends["tiled"] = func(n1, n2, n3 int) Field {
		o := &Tiled{N1: n1, N2: n2, N3: n3}
		o.T1 = (n1 + TILE - 1) / TILE
		o.T2 = (n2 + TILE - 1) / TILE
		o.T3 = (n3 + TILE - 1) / TILE
		sz := NTL * o.T1 * o.T2 * o.T3 * TILE * TILE * TILE
		o.Data = make([][]float32, NSIG)
		for c := 0; c < NSIG; c++ {
			o.Data[c] = make([]float32, sz)
		}
		return o
	}
}

// ReadElem returns component c at time index it
func (o *Tiled) ReadElem(c, it, i, j, k int) float64 {
	return float64(o.Data[c][o.index(it, i, j, k)])
}

// WriteElem sets component c at time index it
func (o *Tiled) WriteElem(v float64, c, it, i, j, k int) {
	o.Data[c][o.index(it, i, j, k)] = float32(v)
}

// Get reads all components at time index it
func (o *Tiled) Get(it, i, j, k int, s *Stress) {
	p := o.index(it, i, j, k)
	for c := 0; c < NSIG; c++ {
		s[c] = o.Data[c][p]
	}
}

// Set writes all components at time index it
func (o *Tiled) Set(it, i, j, k int, s *Stress) {
	p := o.index(it, i, j, k)
	for c := 0; c < NSIG; c++ {
		o.Data[c][p] = s[c]
	}
}

// Fill sets all points and time levels to s
func (o *Tiled) Fill(s *Stress) {
	for c := 0; c < NSIG; c++ {
		for p := range o.Data[c] {
			o.Data[c][p] = s[c]
		}
	}
}

// Copy copies the time level of index from into the time level of index to
func (o *Tiled) Copy(from, to int) {
	tf, tt := level(from), level(to)
	if tf == tt {
		return
	}
	sz := o.T1 * o.T2 * o.T3 * TILE * TILE * TILE
	for c := 0; c < NSIG; c++ {
		copy(o.Data[c][tt*sz:(tt+1)*sz], o.Data[c][tf*sz:(tf+1)*sz])
	}
}

// index returns the position of (it,i,j,k) in the flat arrays
func (o *Tiled) index(it, i, j, k int) int {
	tile := ((level(it)*o.T1+i/TILE)*o.T2+j/TILE)*o.T3 + k/TILE
	return tile*TILE*TILE*TILE + ((i%TILE)*TILE+j%TILE)*TILE + k%TILE
}

// level returns the time level of time index it
func level(it int) int {
	t := it % NTL
	if t < 0 {
		t += NTL
	}
	return t
}
