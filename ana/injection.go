// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "github.com/cpmech/goawp/grid"

// Injection computes the stress at one fault node loaded by a sequence of stress rates.
// Each time step starts from the stress of the previous one:
//
//    σ_n = σ0 - Δt/Δh³ ・ Σ_{j ≤ n} Ṁ_j
//
type Injection struct {
	Dh      float32     // grid spacing
	Dt      float32     // time step
	Stress0 grid.Stress // initial stress
}

// Init initialises this structure
func (o *Injection) Init(dh, dt float32, stress0 grid.Stress) {
	o.Dh = dh
	o.Dt = dt
	o.Stress0 = stress0
}

// Calc computes the stress after each sample, one sample at a time in working precision
func (o Injection) Calc(samples []grid.Stress) (res []grid.Stress) {
	res = make([]grid.Stress, len(samples))
	s := o.Stress0
	vtst := o.Dt / (o.Dh * o.Dh * o.Dh)
	for j, a := range samples {
		for c := 0; c < grid.NSIG; c++ {
			s[c] -= float32(vtst * a[c])
		}
		res[j] = s
	}
	return
}

// Exact computes the stress after each sample with the closed form in double precision
func (o Injection) Exact(samples []grid.Stress) (res [][]float64) {
	res = make([][]float64, len(samples))
	sum := make([]float64, grid.NSIG)
	vtst := float64(o.Dt) / (float64(o.Dh) * float64(o.Dh) * float64(o.Dh))
	for j, a := range samples {
		res[j] = make([]float64, grid.NSIG)
		for c := 0; c < grid.NSIG; c++ {
			sum[c] += float64(a[c])
			res[j][c] = float64(o.Stress0[c]) - vtst*sum[c]
		}
	}
	return
}
