// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import (
	"strconv"
	"strings"
)

// none is written in place of the fields of an absent anchor.
const none = "None"

// field returns the string value of fn applied to a, or none if a is absent.
func field(a *Anchor, fn func(*Anchor) string) string {
	if a == nil {
		return none
	}
	return fn(a)
}

func chrom(a *Anchor) string  { return a.Chrom }
func genes(a *Anchor) string  { return a.GeneString() }
func start(a *Anchor) string  { return strconv.Itoa(a.Start) }
func stop(a *Anchor) string   { return strconv.Itoa(a.Stop) }
func strand(a *Anchor) string { return a.Strand.String() }
func span(a *Anchor) string   { return strconv.Itoa(a.Start) + "-" + strconv.Itoa(a.Stop) }

func seq(a *Anchor) string {
	if a == nil {
		return ""
	}
	return a.Seq
}

// measure formats an optional measurement using -1 for missing values.
func measure(v int, ok bool) string {
	if !ok {
		return "-1"
	}
	return strconv.Itoa(v)
}

// flag formats a boolean header field.
func flag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func (c *Candidate) formatScore() string {
	return strconv.FormatFloat(c.score, 'g', -1, 64)
}

func (j *Junction) boundaryFields(sb *strings.Builder, s Stream, n string) {
	sb.WriteString("boundary_dist" + n + ":" + measure(j.BoundaryDist(s)) + "|")
	sb.WriteString("at_boundary" + n + ":" + flag(j.AtBoundary(s, j.cfg.BoundaryRadius)) + "|_")
}

// FASTA returns the junction as a FASTA record with a compact header.
// If label is not empty it is appended to the header as the junction
// index.
func (j *Junction) FASTA(label string) string {
	var sb strings.Builder
	for i, s := range []Stream{Upstream, Downstream} {
		a := j.Anchor(s)
		n := strconv.Itoa(i + 1)
		if i == 0 {
			sb.WriteByte('>')
		}
		sb.WriteString("|" + field(a, chrom) + "|")
		sb.WriteString(field(a, genes) + "|")
		sb.WriteString(field(a, span) + "|")
		sb.WriteString("strand" + n + ":" + field(a, strand) + "|")
		j.boundaryFields(&sb, s, n)
	}
	idx, _ := j.SpliceIndex()
	sb.WriteString("|splice:" + strconv.Itoa(idx) + "|")
	sb.WriteString("score:" + j.formatScore() + "|")
	sb.WriteString("num:" + strconv.Itoa(len(j.group)) + "|")
	sb.WriteString("splice:" + j.Type().String() + "|")
	if label != "" {
		sb.WriteString("jct_ind:" + label + "|")
	}
	sb.WriteByte('\n')
	sb.WriteString(j.Padded())
	sb.WriteByte('\n')
	return sb.String()
}

// VerboseFASTA returns the junction as a FASTA record with a header
// holding every classification field, each labelled by name.
func (j *Junction) VerboseFASTA() string {
	var sb strings.Builder
	sb.WriteByte('>')
	for i, s := range []Stream{Upstream, Downstream} {
		a := j.Anchor(s)
		n := strconv.Itoa(i + 1)
		sb.WriteString("|chromosome" + n + ":" + field(a, chrom) + "|")
		sb.WriteString("genes" + n + ":" + field(a, genes) + "|")
		sb.WriteString("start" + n + ":" + field(a, start) + "|")
		sb.WriteString("stop" + n + ":" + field(a, stop) + "|")
		sb.WriteString("strand" + n + ":" + field(a, strand) + "|")
		j.boundaryFields(&sb, s, n)
	}
	idx, _ := j.SpliceIndex()
	sb.WriteString("|splice:" + strconv.Itoa(idx) + "|")
	sb.WriteString("span:" + measure(j.Span()) + "|")
	sb.WriteString("score:" + j.formatScore() + "|")
	sb.WriteString("fusion:" + flag(j.Fusion()) + "|")
	sb.WriteString("num:" + strconv.Itoa(len(j.group)) + "|")
	sb.WriteString("splice-gap:" + measure(j.Gap()) + "|")
	sb.WriteString("splice-type:" + j.Type().String() + "|")
	sb.WriteString("took-rev-comp:" + flag(j.reversed) + "|\n")
	sb.WriteString(j.Padded())
	sb.WriteByte('\n')
	return sb.String()
}

// FusionFASTA returns the junction as a FASTA record in the form used
// by fusion validation tools:
//
//  >chrom1:genes1:start1:strand1|chrom2:genes2:start2:strand2|fusion
//
// The final header field is "no_fusion" if the junction is not a fusion.
// FusionFASTA is intended for junctions already selected as fusion
// candidates.
func (j *Junction) FusionFASTA() string {
	var sb strings.Builder
	sb.WriteByte('>')
	for _, a := range []*Anchor{j.up, j.down} {
		sb.WriteString(field(a, chrom) + ":")
		sb.WriteString(field(a, genes) + ":")
		sb.WriteString(field(a, start) + ":")
		sb.WriteString(field(a, strand) + "|")
	}
	if j.Fusion() {
		sb.WriteString("fusion\n")
	} else {
		sb.WriteString("no_fusion\n")
	}
	sb.WriteString(j.Padded())
	sb.WriteByte('\n')
	return sb.String()
}

// String returns a multi-line human readable description of the
// junction with the anchor sequences aligned beneath the consensus.
func (j *Junction) String() string {
	var sb strings.Builder
	sb.WriteString("Junction with bin pair [" + j.binPair.String() + "] with [" + strconv.Itoa(len(j.group)) + "] reads mapped\n")
	if j.Linear() {
		sb.WriteString("Linear ")
	} else {
		sb.WriteString("Non-Linear ")
	}
	sb.WriteString("Upstream on the " + field(j.up, strand) + " strand and downstream on the " + field(j.down, strand) + "\n")
	sb.WriteString("5' map position [" + field(j.up, span) + "]\n")
	sb.WriteString("3' map position [" + field(j.down, span) + "]\n")
	sb.WriteString("Consensus with score [" + j.formatScore() + "] and upstream splice site [" + field(j.up, stop) + "]:\n")
	sb.WriteString(j.consensus + "\n")
	sb.WriteString(seq(j.up) + "\n")
	sb.WriteString(strings.Repeat(" ", len(seq(j.up))) + seq(j.down) + "\n")
	sb.WriteString("Upstream genes [" + field(j.up, genes) + "]\n")
	sb.WriteString("Downstream genes [" + field(j.down, genes) + "]\n")
	return sb.String()
}
