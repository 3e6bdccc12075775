// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import "sync"

// group holds the state shared by the members of a Local communicator
type group struct {
	n       int
	mu      sync.Mutex
	cond    *sync.Cond
	arrived int
	gen     int
	contrib [][]float64
	out     []float64
}

// Local implements Comm for n processes running as goroutines of the same program.
// Each member must be used by one goroutine only.
type Local struct {
	g    *group
	rank int
}

// NewLocal returns the n members of a new in-process communicator
func NewLocal(n int) (comms []Comm) {
	g := &group{n: n, contrib: make([][]float64, n)}
	g.cond = sync.NewCond(&g.mu)
	comms = make([]Comm, n)
	for i := 0; i < n; i++ {
		comms[i] = &Local{g: g, rank: i}
	}
	return
}

func (o *Local) Rank() int { return o.rank }
func (o *Local) Size() int { return o.g.n }

// Barrier waits for all members
func (o *Local) Barrier() {
	o.exchange(nil, func([][]float64) []float64 { return nil })
}

// BcastFromRoot copies x from rank 0 to all members
func (o *Local) BcastFromRoot(x []float64) {
	res := o.exchange(x, func(c [][]float64) []float64 { return c[0] })
	copy(x, res)
}

// AllReduceSum sets dest with the sum of orig over all members
func (o *Local) AllReduceSum(dest, orig []float64) {
	res := o.exchange(orig, func(c [][]float64) []float64 {
		sum := make([]float64, len(c[0]))
		for _, x := range c {
			for i, v := range x {
				sum[i] += v
			}
		}
		return sum
	})
	copy(dest, res)
}

// exchange waits for all members to contribute x and returns op applied to all contributions
func (o *Local) exchange(x []float64, op func(contrib [][]float64) []float64) (res []float64) {
	g := o.g
	g.mu.Lock()
	defer g.mu.Unlock()
	gen := g.gen
	g.contrib[o.rank] = append([]float64(nil), x...)
	g.arrived++
	if g.arrived == g.n {
		g.out = op(g.contrib)
		g.arrived = 0
		g.gen++
		g.cond.Broadcast()
	} else {
		for gen == g.gen {
			g.cond.Wait()
		}
	}
	return append([]float64(nil), g.out...)
}
