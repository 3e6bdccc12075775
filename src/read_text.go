// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package src

import (
	"bufio"
	"errors"
	"fmt"
	goio "io"
	"os"
	"strconv"

	"github.com/cpmech/goawp/grid"
)

// tokens reads whitespace-separated numbers
type tokens struct {
	s *bufio.Scanner
}

func newTokens(r goio.Reader) *tokens {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &tokens{s}
}

func (o *tokens) next() (string, error) {
	if !o.s.Scan() {
		if err := o.s.Err(); err != nil {
			return "", err
		}
		return "", goio.EOF
	}
	return o.s.Text(), nil
}

func (o *tokens) atoi() (int, error) {
	t, err := o.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(t)
}

func (o *tokens) atof() (float32, error) {
	t, err := o.next()
	if err != nil {
		return 0, err
	}
	// values beyond float32 are stored as ±Inf
	v, err := strconv.ParseFloat(t, 32)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}
	return float32(v), err
}

// group reads one node: the x y z line followed by READ_STEP lines of six values.
// z is returned as found in the file
func (o *tokens) group(readStep int) (x [3]int, sig []grid.Stress, err error) {
	for a := 0; a < 3; a++ {
		x[a], err = o.atoi()
		if err != nil {
			return
		}
	}
	sig = make([]grid.Stress, readStep)
	for j := 0; j < readStep; j++ {
		for c := 0; c < grid.NSIG; c++ {
			sig[j][c], err = o.atof()
			if err != nil {
				return
			}
		}
	}
	return
}

// skip discards n tokens
func (o *tokens) skip(n int) (err error) {
	for i := 0; i < n; i++ {
		if _, err = o.next(); err != nil {
			return
		}
	}
	return
}

// readText reads the first read-window of nodes from a text file
func readText(r goio.Reader, in *Input, nodes []Node) (err error) {
	tk := newTokens(r)
	for i := range nodes {
		x, sig, err := tk.group(in.ReadStep)
		if err != nil {
			return textError(i, err)
		}
		nodes[i].X = [3]int{x[0], x[1], flip(x[2], in.Nz)}
		nodes[i].Sig = sig
		if in.Progress != nil {
			in.Progress(i+1, len(nodes))
		}
	}
	return
}

// readTextWindow reads read-window win of the nodes with catalog indices idx (sorted).
// The file holds one block of Nsrc groups per window. The global coordinates found
// in the file (z flipped) are returned as well.
func readTextWindow(fn string, in *Input, win int, idx []int) (xs [][3]int, sig [][]grid.Stress, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open source file %q: %w", fn, err)
	}
	defer f.Close()
	tk := newTokens(f)
	ntok := 3 + in.ReadStep*grid.NSIG
	err = tk.skip(win * in.Nsrc * ntok)
	if err != nil {
		return nil, nil, textError(0, err)
	}
	xs = make([][3]int, len(idx))
	sig = make([][]grid.Stress, len(idx))
	k := 0
	for i := 0; i < in.Nsrc && k < len(idx); i++ {
		if i != idx[k] {
			if err = tk.skip(ntok); err != nil {
				return nil, nil, textError(i, err)
			}
			continue
		}
		x, s, err := tk.group(in.ReadStep)
		if err != nil {
			return nil, nil, textError(i, err)
		}
		xs[k] = [3]int{x[0], x[1], flip(x[2], in.Nz)}
		sig[k] = s
		k++
	}
	return
}

// WriteText writes nwin read-windows of nodes in the text format. Coordinates are written
// as given; i.e. with z not flipped. Each node must have at least nwin*readStep samples
func WriteText(w goio.Writer, nodes []Node, readStep, nwin int) (err error) {
	bw := bufio.NewWriter(w)
	for win := 0; win < nwin; win++ {
		for i, nod := range nodes {
			if len(nod.Sig) < (win+1)*readStep {
				return fmt.Errorf("node %d has %d samples but %d are needed", i, len(nod.Sig), nwin*readStep)
			}
			fmt.Fprintf(bw, "%d %d %d\n", nod.X[0], nod.X[1], nod.X[2])
			for j := win * readStep; j < (win+1)*readStep; j++ {
				s := nod.Sig[j]
				fmt.Fprintf(bw, "%s %s %s %s %s %s\n", ftoa(s[0]), ftoa(s[1]), ftoa(s[2]), ftoa(s[3]), ftoa(s[4]), ftoa(s[5]))
			}
		}
	}
	return bw.Flush()
}

// ftoa formats v such that parsing it back as float32 gives v
func ftoa(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// textError converts scanning errors found while reading node i
func textError(i int, err error) error {
	if err == goio.EOF {
		return fmt.Errorf("record of node %d is incomplete: %w", i, ErrTruncated)
	}
	return fmt.Errorf("cannot parse record of node %d: %v: %w", i, err, ErrTruncated)
}
