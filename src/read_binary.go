// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	goio "io"
	"os"

	"github.com/cpmech/goawp/grid"
	"github.com/cpmech/gosl/utl"
)

// sizes of binary records in bytes
const (
	coordBytes  = 3 * 4         // x, y, z as int32
	sampleBytes = grid.NSIG * 4 // six float32
)

// recordBytes returns the size of one binary record
func recordBytes(nst int) int64 {
	return coordBytes + int64(nst)*sampleBytes
}

// readBinary reads nodes from a binary file: for each node, 3 int32 followed by NST*6 float32
func readBinary(r goio.Reader, in *Input, nodes []Node) (err error) {
	br := bufio.NewReader(r)
	var tmpsrc [3]int32
	tmpta := make([]float32, in.Nst*grid.NSIG)
	for i := range nodes {
		err = binary.Read(br, binary.NativeEndian, &tmpsrc)
		if err != nil {
			return truncated(i, err)
		}
		err = binary.Read(br, binary.NativeEndian, tmpta)
		if err != nil {
			return truncated(i, err)
		}
		nodes[i].X = [3]int{int(tmpsrc[0]), int(tmpsrc[1]), flip(int(tmpsrc[2]), in.Nz)}
		nodes[i].Sig = make([]grid.Stress, in.ReadStep)
		for j := 0; j < in.ReadStep; j++ {
			copy(nodes[i].Sig[j][:], tmpta[j*grid.NSIG:(j+1)*grid.NSIG])
		}
		if in.Progress != nil {
			in.Progress(i+1, len(nodes))
		}
	}
	return
}

// readBinaryWindow reads read-window win of the nodes with catalog indices idx.
// The last window may be shorter than READ_STEP; missing samples are zero.
func readBinaryWindow(fn string, in *Input, win int, idx []int) (sig [][]grid.Stress, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, fmt.Errorf("cannot open source file %q: %w", fn, err)
	}
	defer f.Close()
	first := win * in.ReadStep
	n := utl.Imin(in.ReadStep, in.Nst-first)
	tmpta := make([]float32, n*grid.NSIG)
	sig = make([][]grid.Stress, len(idx))
	for k, i := range idx {
		off := int64(i)*recordBytes(in.Nst) + coordBytes + int64(first)*sampleBytes
		err = binary.Read(goio.NewSectionReader(f, off, int64(n)*sampleBytes), binary.NativeEndian, tmpta)
		if err != nil {
			return nil, truncated(i, err)
		}
		sig[k] = make([]grid.Stress, in.ReadStep)
		for j := 0; j < n; j++ {
			copy(sig[k][j][:], tmpta[j*grid.NSIG:(j+1)*grid.NSIG])
		}
	}
	return
}

// WriteBinary writes nodes in the binary format. Coordinates are written as given; i.e. with
// z not flipped. Each node must have at least nst samples
func WriteBinary(w goio.Writer, nodes []Node, nst int) (err error) {
	bw := bufio.NewWriter(w)
	tmpta := make([]float32, nst*grid.NSIG)
	for i, nod := range nodes {
		if len(nod.Sig) < nst {
			return fmt.Errorf("node %d has %d samples but NST = %d", i, len(nod.Sig), nst)
		}
		tmpsrc := [3]int32{int32(nod.X[0]), int32(nod.X[1]), int32(nod.X[2])}
		err = binary.Write(bw, binary.NativeEndian, tmpsrc)
		if err != nil {
			return
		}
		for j := 0; j < nst; j++ {
			copy(tmpta[j*grid.NSIG:(j+1)*grid.NSIG], nod.Sig[j][:])
		}
		err = binary.Write(bw, binary.NativeEndian, tmpta)
		if err != nil {
			return
		}
	}
	return bw.Flush()
}

// truncated wraps end-of-file errors found while reading node i
func truncated(i int, err error) error {
	if errors.Is(err, goio.EOF) || errors.Is(err, goio.ErrUnexpectedEOF) {
		return fmt.Errorf("record of node %d is incomplete: %w", i, ErrTruncated)
	}
	return fmt.Errorf("cannot read record of node %d: %w", i, err)
}
