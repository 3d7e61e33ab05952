// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import (
	"errors"
	"strings"

	"github.com/biogo/hts/sam"
)

// Strand is the genomic strand of an alignment. A positive value
// indicates the forward strand and a negative value the reverse strand.
type Strand int8

const (
	Forward Strand = 1
	Reverse Strand = -1
)

// String returns "+" for the forward strand and "-" otherwise.
func (s Strand) String() string {
	if s >= 0 {
		return "+"
	}
	return "-"
}

// Boundary is an annotated exon feature.
type Boundary struct {
	Start int
	Stop  int
}

// Anchor is a resolved alignment of one side of a consensus
// sequence to a genomic locus.
type Anchor struct {
	Chrom  string
	Strand Strand
	Start  int
	Stop   int

	// Seq is the portion of the consensus
	// sequence covered by the alignment.
	Seq string

	// Genes holds the names of the genes
	// overlapping the alignment.
	Genes []string

	// Exon is the nearest annotated exon
	// feature, or nil if none is known.
	Exon *Boundary
}

// GeneString returns the gene annotation of a as a comma
// separated list, or "None" if a has no gene annotation.
func (a *Anchor) GeneString() string {
	if len(a.Genes) == 0 {
		return none
	}
	return strings.Join(a.Genes, ",")
}

// FromRecord returns an Anchor for the mapped alignment r with the
// given gene and exon annotation. The anchor covers [r.Start(), r.End()).
func FromRecord(r *sam.Record, genes []string, exon *Boundary) (*Anchor, error) {
	if r.Ref == nil || r.Pos < 0 || r.Flags&sam.Unmapped != 0 {
		return nil, errors.New("junction: anchor record is not mapped")
	}
	if r.Seq.Length == 0 {
		return nil, errors.New("junction: anchor record has no sequence")
	}
	return &Anchor{
		Chrom:  r.Ref.Name(),
		Strand: Strand(r.Strand()),
		Start:  r.Start(),
		Stop:   r.End(),
		Seq:    string(r.Seq.Expand()),
		Genes:  genes,
		Exon:   exon,
	}, nil
}
