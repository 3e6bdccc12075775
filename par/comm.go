// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package par

import "github.com/cpmech/gosl/mpi"

// Comm defines the collective operations needed during setup
type Comm interface {
	Rank() int                         // this process
	Size() int                         // number of processes
	Barrier()                          // wait for all processes
	BcastFromRoot(x []float64)         // copy x from rank 0 to all processes
	AllReduceSum(dest, orig []float64) // dest := Σ orig over all processes
}

// World returns the communicator with all processes if MPI is on; otherwise a serial one
func World() Comm {
	if mpi.IsOn() {
		return &MpiComm{c: mpi.NewCommunicator(nil)}
	}
	return Serial{}
}

// MpiComm implements Comm with gosl/mpi
type MpiComm struct {
	c *mpi.Communicator
}

func (o *MpiComm) Rank() int                         { return o.c.Rank() }
func (o *MpiComm) Size() int                         { return o.c.Size() }
func (o *MpiComm) Barrier()                          { o.c.Barrier() }
func (o *MpiComm) BcastFromRoot(x []float64)         { o.c.BcastFromRoot(x) }
func (o *MpiComm) AllReduceSum(dest, orig []float64) { o.c.AllReduceSum(dest, orig) }

// Serial implements Comm for a single process
type Serial struct{}

func (o Serial) Rank() int                 { return 0 }
func (o Serial) Size() int                 { return 1 }
func (o Serial) Barrier()                  {}
func (o Serial) BcastFromRoot(x []float64) {}
func (o Serial) AllReduceSum(dest, orig []float64) {
	copy(dest, orig)
}
