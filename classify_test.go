// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import (
	"gopkg.in/check.v1"
)

func (s *S) TestBoundaryDist(c *check.C) {
	j := fullJunction(c)

	dist, ok := j.BoundaryDist(Upstream)
	c.Check(ok, check.Equals, true)
	c.Check(dist, check.Equals, 2)
	dist, ok = j.BoundaryDist(Downstream)
	c.Check(ok, check.Equals, true)
	c.Check(dist, check.Equals, 1)

	c.Check(j.AtBoundary(Upstream, 3), check.Equals, true)
	c.Check(j.AtBoundary(Upstream, 2), check.Equals, true)
	c.Check(j.AtBoundary(Upstream, 1), check.Equals, false)
	c.Check(j.AtBoundary(Downstream, 0), check.Equals, false)
	c.Check(j.AtBoundary(Downstream, 1), check.Equals, true)
}

func (s *S) TestBoundaryDistMissing(c *check.C) {
	cand := testCandidate(c, "AAAACCCCGGGGTTTT", testKey, false)
	j, err := cand.Resolve(&Anchor{Chrom: "chr1", Start: 100, Stop: 108, Seq: "AAAACCCC"}, nil)
	c.Assert(err, check.Equals, nil)
	for _, s := range []Stream{Upstream, Downstream} {
		_, ok := j.BoundaryDist(s)
		c.Check(ok, check.Equals, false, check.Commentf("stream %v", s))
		c.Check(j.AtBoundary(s, 1000), check.Equals, false, check.Commentf("stream %v", s))
	}
}

func (s *S) TestFusion(c *check.C) {
	exonUp := &Boundary{Start: 50, Stop: 121}
	exonDown := &Boundary{Start: 498, Stop: 700}
	for _, test := range []struct {
		name     string
		up, down Anchor
		cutoff   float64
		want     bool
	}{
		{
			name:   "near linear splice",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 100, Stop: 120, Exon: exonUp},
			down:   Anchor{Chrom: "chr1", Strand: Forward, Start: 500, Stop: 520, Exon: exonDown},
			cutoff: 1e6,
			want:   false,
		},
		{
			name:   "span above small cutoff",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 100, Stop: 120, Exon: exonUp},
			down:   Anchor{Chrom: "chr1", Strand: Forward, Start: 500, Stop: 520, Exon: exonDown},
			cutoff: 419,
			want:   true,
		},
		{
			name:   "span at cutoff",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 100, Stop: 120, Exon: exonUp},
			down:   Anchor{Chrom: "chr1", Strand: Forward, Start: 500, Stop: 520, Exon: exonDown},
			cutoff: 420,
			want:   false,
		},
		{
			name:   "interchromosomal",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 100, Stop: 120, Exon: exonUp},
			down:   Anchor{Chrom: "chr5", Strand: Forward, Start: 500, Stop: 520, Exon: exonDown},
			cutoff: 1e6,
			want:   true,
		},
		{
			name:   "strand switch",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 100, Stop: 120, Exon: exonUp},
			down:   Anchor{Chrom: "chr1", Strand: Reverse, Start: 500, Stop: 520, Exon: exonDown},
			cutoff: 1e6,
			want:   true,
		},
		{
			name:   "long range",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 3000000, Stop: 3000020, Exon: &Boundary{Start: 3000018, Stop: 3000100}},
			down:   Anchor{Chrom: "chr1", Strand: Forward, Start: 500, Stop: 520, Exon: exonDown},
			cutoff: 1e6,
			want:   true,
		},
		{
			name:   "upstream off boundary",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 100, Stop: 130, Exon: exonUp},
			down:   Anchor{Chrom: "chr5", Strand: Reverse, Start: 500, Stop: 520, Exon: exonDown},
			cutoff: 1e6,
			want:   false,
		},
		{
			name:   "downstream unannotated",
			up:     Anchor{Chrom: "chr1", Strand: Forward, Start: 100, Stop: 120, Exon: exonUp},
			down:   Anchor{Chrom: "chr5", Strand: Reverse, Start: 500, Stop: 520},
			cutoff: 1e6,
			want:   false,
		},
	} {
		up, down := test.up, test.down
		up.Seq = "AAAACCCC"
		down.Seq = "GGGGTTTT"
		cand := testCandidate(c, "AAAACCCCGGGGTTTT", testKey, false)
		j, err := cand.Resolve(&up, &down)
		c.Assert(err, check.Equals, nil)
		c.Check(j.IsFusion(test.cutoff), check.Equals, test.want, check.Commentf("test %q", test.name))
	}
}

func (s *S) TestFusionDefaults(c *check.C) {
	j := fullJunction(c)
	c.Check(j.Fusion(), check.Equals, true)

	cand := testCandidate(c, "AAAACCCCGGGGTTTT", testKey, false)
	j, err := cand.Resolve(nil, &Anchor{Chrom: "chr2", Start: 500, Stop: 508, Seq: "GGGGTTTT", Exon: &Boundary{Start: 500, Stop: 600}})
	c.Assert(err, check.Equals, nil)
	c.Check(j.Fusion(), check.Equals, false)
}

func (s *S) TestLinear(c *check.C) {
	for _, test := range []struct {
		key      string
		reversed bool
		want     bool
	}{
		{key: "chr1:5_chr1:10_+", reversed: false, want: true},
		{key: "chr1:5_chr1:10_+", reversed: true, want: false},
		{key: "chr1:10_chr1:10_-", reversed: false, want: true},
		{key: "chr1:10_chr1:10_-", reversed: true, want: false},
		{key: "chr1:11_chr1:10_+", reversed: false, want: false},
		{key: "chr1:11_chr1:10_+", reversed: true, want: true},
		{key: "chr3:100_chr1:9_+", reversed: false, want: false},
	} {
		key, err := ParseBinPair(test.key)
		c.Assert(err, check.Equals, nil)
		cand := testCandidate(c, "ACGT", key, test.reversed)
		c.Check(cand.Linear(), check.Equals, test.want, check.Commentf("key %q reversed=%t", test.key, test.reversed))
	}
}

func (s *S) TestSpliceTypeString(c *check.C) {
	for typ, want := range map[SpliceType]string{
		None:           "None",
		FiveOnly:       "Five_Only",
		ThreeOnly:      "Three_Only",
		Gapped:         "Gapped",
		Full:           "Full",
		SpliceType(-1): "SpliceType(-1)",
		SpliceType(9):  "SpliceType(9)",
	} {
		c.Check(typ.String(), check.Equals, want)
	}
}
