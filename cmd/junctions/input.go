// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/labstack/gommon/log"
	"golang.org/x/exp/mmap"

	"github.com/biogo/junction"
	"github.com/biogo/junction/bundle"
	"github.com/biogo/junction/config"
)

// gzipMagic is the leading bytes of a BGZF stream.
var gzipMagic = [2]byte{0x1f, 0x8b}

// readBundle reads and resolves the junctions of the SAM or BAM bundle
// at path. BAM input is detected by its BGZF magic bytes.
func readBundle(ctx context.Context, path string, cfg config.Config, threads int) ([]*junction.Junction, error) {
	f, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := io.NewSectionReader(f, 0, int64(f.Len()))

	var rr sam.RecordReader
	if isBGZF(f) {
		log.Debugf("reading %s as BAM", path)
		br, err := bam.NewReader(r, threads)
		if err != nil {
			return nil, err
		}
		defer br.Close()
		rr = br
	} else {
		log.Debugf("reading %s as SAM", path)
		sr, err := sam.NewReader(r)
		if err != nil {
			return nil, err
		}
		rr = sr
	}
	return bundle.NewReader(rr, cfg).ReadAll(ctx, threads)
}

func isBGZF(f *mmap.ReaderAt) bool {
	if f.Len() < len(gzipMagic) {
		return false
	}
	return f.At(0) == gzipMagic[0] && f.At(1) == gzipMagic[1]
}
