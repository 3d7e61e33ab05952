// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
)

// BinPair is the coarse genomic identity of a group of reads supporting
// a junction. Its text form is "chrA:binA_chrB:binB_strand".
type BinPair struct {
	ChromA string
	BinA   int
	ChromB string
	BinB   int
	Strand string
}

// ParseBinPair parses the text form of a bin pair. Chromosome names may
// contain underscores, but not colons.
func ParseBinPair(s string) (BinPair, error) {
	last := strings.LastIndexByte(s, '_')
	if last < 0 {
		return BinPair{}, fmt.Errorf("junction: invalid bin pair %q", s)
	}
	bp := BinPair{Strand: s[last+1:]}
	sides := s[:last]

	colon := strings.IndexByte(sides, ':')
	if colon < 0 {
		return BinPair{}, fmt.Errorf("junction: invalid bin pair %q", s)
	}
	bp.ChromA = sides[:colon]
	sides = sides[colon+1:]
	sep := strings.IndexByte(sides, '_')
	if sep < 0 {
		return BinPair{}, fmt.Errorf("junction: invalid bin pair %q", s)
	}
	var err error
	bp.BinA, err = strconv.Atoi(sides[:sep])
	if err != nil {
		return BinPair{}, fmt.Errorf("junction: invalid bin pair %q: %v", s, err)
	}
	sides = sides[sep+1:]

	colon = strings.LastIndexByte(sides, ':')
	if colon < 0 {
		return BinPair{}, fmt.Errorf("junction: invalid bin pair %q", s)
	}
	bp.ChromB = sides[:colon]
	bp.BinB, err = strconv.Atoi(sides[colon+1:])
	if err != nil {
		return BinPair{}, fmt.Errorf("junction: invalid bin pair %q: %v", s, err)
	}
	if bp.ChromA == "" || bp.ChromB == "" {
		return BinPair{}, fmt.Errorf("junction: invalid bin pair %q", s)
	}
	return bp, nil
}

// String returns the text form of the bin pair.
func (bp BinPair) String() string {
	return fmt.Sprintf("%s:%d_%s:%d_%s", bp.ChromA, bp.BinA, bp.ChromB, bp.BinB, bp.Strand)
}

// Compare returns -1, 0 or 1 when bp sorts before, with or after o.
// Fields are compared in the order five prime chromosome, five prime
// bin, three prime chromosome, three prime bin and strand.
func (bp BinPair) Compare(o BinPair) int {
	if c := compareChrom(bp.ChromA, o.ChromA); c != 0 {
		return c
	}
	if c := compareInt(bp.BinA, o.BinA); c != 0 {
		return c
	}
	if c := compareChrom(bp.ChromB, o.ChromB); c != 0 {
		return c
	}
	if c := compareInt(bp.BinB, o.BinB); c != 0 {
		return c
	}
	return strings.Compare(bp.Strand, o.Strand)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareChrom orders numbered chromosomes numerically and before
// named chromosomes, ignoring a leading "chr".
func compareChrom(a, b string) int {
	na, aok := chromNumber(a)
	nb, bok := chromNumber(b)
	switch {
	case aok && bok:
		if c := compareInt(na, nb); c != 0 {
			return c
		}
	case aok:
		return -1
	case bok:
		return 1
	default:
		if c := strings.Compare(trimChr(a), trimChr(b)); c != 0 {
			return c
		}
	}
	return strings.Compare(a, b)
}

func trimChr(s string) string {
	if len(s) > 3 && strings.EqualFold(s[:3], "chr") {
		return s[3:]
	}
	return s
}

func chromNumber(s string) (int, bool) {
	n, err := strconv.Atoi(trimChr(s))
	return n, err == nil && n >= 0
}

// Pair is a pair of read alignments supporting a junction.
type Pair struct {
	Key   BinPair
	Reads [2]*sam.Record
}

// NewPair returns a Pair for the five and three prime alignments of a
// supporting read, binning each alignment position by binSize.
func NewPair(five, three *sam.Record, binSize int) (Pair, error) {
	if binSize <= 0 {
		return Pair{}, errors.New("junction: non-positive bin size")
	}
	for _, r := range [2]*sam.Record{five, three} {
		if r.Ref == nil || r.Pos < 0 {
			return Pair{}, fmt.Errorf("junction: unplaced supporting read %q", r.Name)
		}
	}
	return Pair{
		Key: BinPair{
			ChromA: five.Ref.Name(),
			BinA:   five.Pos / binSize,
			ChromB: three.Ref.Name(),
			BinB:   three.Pos / binSize,
			Strand: Strand(five.Strand()).String(),
		},
		Reads: [2]*sam.Record{five, three},
	}, nil
}
