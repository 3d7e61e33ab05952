// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Format specifies the text representation written by a Writer.
type Format int

const (
	FASTA        Format = iota // Compact FASTA header.
	VerboseFASTA               // Labelled FASTA header with all fields.
	FusionFASTA                // Fusion validation tool FASTA.
	Summary                    // Human readable summary.
)

var formatNames = map[string]Format{
	"fasta":   FASTA,
	"verbose": VerboseFASTA,
	"fusion":  FusionFASTA,
	"summary": Summary,
}

// ParseFormat returns the Format named by s, one of "fasta", "verbose",
// "fusion" or "summary".
func ParseFormat(s string) (Format, error) {
	f, ok := formatNames[s]
	if !ok {
		return 0, fmt.Errorf("junction: unknown format %q", s)
	}
	return f, nil
}

func (f Format) String() string {
	for n, v := range formatNames {
		if v == f {
			return n
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Writer writes junctions in a text Format.
type Writer struct {
	w *bufio.Writer
	f Format
}

// NewWriter returns a Writer writing junctions to w in format f.
func NewWriter(w io.Writer, f Format) *Writer {
	return &Writer{w: bufio.NewWriter(w), f: f}
}

// Write writes j without a label.
func (w *Writer) Write(j *Junction) error {
	return w.WriteLabel(j, "")
}

// WriteLabel writes j, labelling it with label if the Writer's format
// is FASTA. The label is ignored by other formats.
func (w *Writer) WriteLabel(j *Junction, label string) error {
	var s string
	switch w.f {
	case FASTA:
		s = j.FASTA(label)
	case VerboseFASTA:
		s = j.VerboseFASTA()
	case FusionFASTA:
		s = j.FusionFASTA()
	case Summary:
		s = j.String() + "\n"
	default:
		return fmt.Errorf("junction: invalid format %d", w.f)
	}
	_, err := w.w.WriteString(s)
	return err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Sort sorts js by ascending bin pair, retaining the
// relative order of junctions with equal bin pairs.
func Sort(js []*Junction) {
	sort.Stable(byBinPair(js))
}

type byBinPair []*Junction

func (j byBinPair) Len() int           { return len(j) }
func (j byBinPair) Less(a, b int) bool { return j[a].binPair.Compare(j[b].binPair) < 0 }
func (j byBinPair) Swap(a, b int)      { j[a], j[b] = j[b], j[a] }
