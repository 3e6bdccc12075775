// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the patch decomposition of the local grid and the storage of the stress field
package grid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// NSIG is the number of stress components
const NSIG = 6

// indices of stress components
const (
	XX = iota // σxx
	YY        // σyy
	ZZ        // σzz
	XZ        // σxz
	YZ        // σyz
	XY        // σxy
)

// SigKeys holds the names of stress components in storage order
var SigKeys = []string{"xx", "yy", "zz", "xz", "yz", "xy"}

// Stress holds the six components of the stress tensor in working precision
type Stress [NSIG]float32

// Field defines the storage of the stress tensor within one patch.
// Indices are patch-local and include the halo.
type Field interface {
	Get(it, i, j, k int, s *Stress) // reads all components at time index it
	Set(it, i, j, k int, s *Stress) // writes all components at time index it
	Fill(s *Stress)                 // sets all points and time levels to s
	Copy(from, to int)              // copies time index from into time index to
}

// backends holds all available field storages
var backends = make(map[string]func(n1, n2, n3 int) Field)

// Backends returns the names of the available field storages
func Backends() (names []string) {
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// NewField allocates a field of the given backend with n1 x n2 x n3 points
func NewField(backend string, n1, n2, n3 int) (Field, error) {
	alloc, ok := backends[backend]
	if !ok {
		return nil, chk.Err("cannot find field backend named %q. options are %v", backend, Backends())
	}
	return alloc(n1, n2, n3), nil
}
