// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import "strings"

var complement = [256]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c', 'n': 'n',
}

// ReverseComplement returns the reverse complement of the nucleotide
// sequence s. Bytes other than ACGTN in either case complement to N.
func ReverseComplement(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := complement[s[i]]
		if c == 0 {
			c = 'N'
		}
		b[len(s)-1-i] = c
	}
	return string(b)
}

// locate returns the position of the first occurrence of seq in
// consensus, falling back to the reverse complement of seq.
func locate(consensus, seq string) (int, bool) {
	if i := strings.Index(consensus, seq); i >= 0 {
		return i, true
	}
	if i := strings.Index(consensus, ReverseComplement(seq)); i >= 0 {
		return i, true
	}
	return -1, false
}

// SpliceIndex returns the splice site in consensus coordinates. When
// both anchors are present the splice site is the length of the upstream
// anchor sequence and exact is true. Otherwise the middle of the
// consensus is returned as a guess and exact is false.
func (j *Junction) SpliceIndex() (idx int, exact bool) {
	if j.resolved() {
		return len(j.up.Seq), true
	}
	return len(j.consensus) / 2, false
}

// Gap returns the distance in consensus coordinates between the end of
// the upstream anchor and the start of the downstream anchor. A zero gap
// indicates the anchors abut. The ok return is false if either anchor is
// absent.
func (j *Junction) Gap() (gap int, ok bool) {
	if !j.resolved() {
		return 0, false
	}
	return j.upEnd - j.downStart, true
}

// Span returns the genomic distance between the upstream anchor start
// and the downstream anchor stop. The span may be negative. The ok return
// is false if either anchor is absent.
func (j *Junction) Span() (span int, ok bool) {
	if !j.resolved() {
		return 0, false
	}
	return j.up.Start - j.down.Stop, true
}

// Padded returns the consensus split at the splice index and padded
// with N so that each side is the configured splice flank length.
// Sides already longer than the flank length are not truncated.
func (j *Junction) Padded() string {
	idx, _ := j.SpliceIndex()
	return pad(j.consensus, idx, j.cfg.SpliceFlankLen)
}

func pad(seq string, at, flank int) string {
	left := max(flank-at, 0)
	right := max(flank-(len(seq)-at), 0)
	var sb strings.Builder
	sb.Grow(left + len(seq) + right)
	sb.WriteString(strings.Repeat("N", left))
	sb.WriteString(seq)
	sb.WriteString(strings.Repeat("N", right))
	return sb.String()
}

func max(a, b int) int {
	if a < b {
		return b
	}
	return a
}
