// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/hts/bgzf"
	"github.com/biogo/hts/fai"
	"github.com/ulikunitz/xz"
)

// output is a possibly compressed destination. Closing an output
// closes its layers from the outermost in.
type output struct {
	io.Writer
	closers []io.Closer
}

func (o *output) Close() error {
	var err error
	for _, c := range o.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// nopCloser prevents closing the standard output stream.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// create returns an output writing to the file at path, or to stdout if
// path is empty or "-", compressed according to compress.
func create(path, compress string, stdout io.Writer) (*output, error) {
	var (
		w io.Writer
		c io.Closer
	)
	if path == "" || path == "-" {
		w, c = stdout, nopCloser{}
	} else {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		w, c = f, f
	}

	switch compress {
	case "none":
		return &output{Writer: w, closers: []io.Closer{c}}, nil
	case "bgzf":
		bw := bgzf.NewWriter(w, 1)
		return &output{Writer: bw, closers: []io.Closer{bw, c}}, nil
	case "xz":
		xw, err := xz.NewWriter(w)
		if err != nil {
			c.Close()
			return nil, err
		}
		return &output{Writer: xw, closers: []io.Closer{xw, c}}, nil
	default:
		c.Close()
		return nil, fmt.Errorf("unknown compression %q", compress)
	}
}

// writeIndex writes a FASTA index of the file at path to path+".fai".
func writeIndex(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	idx, err := fai.NewIndex(f)
	if err != nil {
		return fmt.Errorf("failed to index %s: %w", path, err)
	}

	w, err := os.Create(path + ".fai")
	if err != nil {
		return err
	}
	err = fai.WriteTo(w, idx)
	if err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
