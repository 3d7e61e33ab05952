// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import "fmt"

// Stream selects one side of a junction.
type Stream int

const (
	Upstream Stream = iota
	Downstream
)

func (s Stream) String() string {
	switch s {
	case Upstream:
		return "upstream"
	case Downstream:
		return "downstream"
	}
	return fmt.Sprintf("Stream(%d)", int(s))
}

// SpliceType describes which anchors of a junction are present and how
// they meet.
type SpliceType int

const (
	None      SpliceType = iota // Neither anchor is present.
	FiveOnly                    // Only the upstream anchor is present.
	ThreeOnly                   // Only the downstream anchor is present.
	Gapped                      // Both anchors are present with a non-zero gap.
	Full                        // Both anchors are present and abut.
)

var spliceTypeNames = [...]string{
	None:      "None",
	FiveOnly:  "Five_Only",
	ThreeOnly: "Three_Only",
	Gapped:    "Gapped",
	Full:      "Full",
}

func (t SpliceType) String() string {
	if t < 0 || int(t) >= len(spliceTypeNames) {
		return fmt.Sprintf("SpliceType(%d)", int(t))
	}
	return spliceTypeNames[t]
}

// Type returns the splice type of the junction.
func (j *Junction) Type() SpliceType {
	switch {
	case j.resolved():
		if gap, _ := j.Gap(); gap == 0 {
			return Full
		}
		return Gapped
	case j.up != nil:
		return FiveOnly
	case j.down != nil:
		return ThreeOnly
	}
	return None
}

// BoundaryDist returns the distance from the splice edge of the anchor
// for stream s to the nearest end of its annotated exon. The splice edge
// is the stop of the upstream anchor and the start of the downstream
// anchor. The ok return is false if the anchor is absent or has no exon
// annotation.
func (j *Junction) BoundaryDist(s Stream) (dist int, ok bool) {
	a := j.Anchor(s)
	if a == nil || a.Exon == nil {
		return 0, false
	}
	pos := a.Start
	if s == Upstream {
		pos = a.Stop
	}
	return min(abs(pos-a.Exon.Start), abs(pos-a.Exon.Stop)), true
}

// AtBoundary returns whether the anchor for stream s is within radius
// of an annotated exon boundary.
func (j *Junction) AtBoundary(s Stream, radius int) bool {
	dist, ok := j.BoundaryDist(s)
	return ok && dist <= radius
}

// IsFusion returns whether the junction joins anchors at exon boundaries
// with different chromosomes or strands, or separated by a genomic span
// greater than cutoff. Boundaries are tested with the configured radius.
func (j *Junction) IsFusion(cutoff float64) bool {
	r := j.cfg.BoundaryRadius
	if !j.AtBoundary(Upstream, r) || !j.AtBoundary(Downstream, r) {
		return false
	}
	if j.up.Chrom != j.down.Chrom || j.up.Strand != j.down.Strand {
		return true
	}
	span, _ := j.Span()
	return float64(abs(span)) > cutoff
}

// Fusion returns whether the junction is a fusion using the configured
// span cutoff.
func (j *Junction) Fusion() bool { return j.IsFusion(j.cfg.SpanCutoff) }

// Linear returns whether the bins of the junction's bin pair are in
// ascending order, accounting for reverse complementation of the
// consensus.
func (c *Candidate) Linear() bool {
	return (c.binPair.BinA <= c.binPair.BinB) != c.reversed
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
