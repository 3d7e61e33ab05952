// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package junction

import (
	"bytes"

	"gopkg.in/check.v1"
)

const (
	fullFASTA = ">|chr1|GENE1|100-108|strand1:+|boundary_dist1:2|at_boundary1:True|_" +
		"|chr2|GENE2,GENE3|500-508|strand2:-|boundary_dist2:1|at_boundary2:True|_" +
		"|splice:8|score:12.5|num:2|splice:Full|\n" +
		"NNAAAACCCCGGGGTTTTNN\n"

	fullLabelledFASTA = ">|chr1|GENE1|100-108|strand1:+|boundary_dist1:2|at_boundary1:True|_" +
		"|chr2|GENE2,GENE3|500-508|strand2:-|boundary_dist2:1|at_boundary2:True|_" +
		"|splice:8|score:12.5|num:2|splice:Full|jct_ind:7|\n" +
		"NNAAAACCCCGGGGTTTTNN\n"

	fullVerbose = ">|chromosome1:chr1|genes1:GENE1|start1:100|stop1:108|strand1:+|boundary_dist1:2|at_boundary1:True|_" +
		"|chromosome2:chr2|genes2:GENE2,GENE3|start2:500|stop2:508|strand2:-|boundary_dist2:1|at_boundary2:True|_" +
		"|splice:8|span:-408|score:12.5|fusion:True|num:2|splice-gap:0|splice-type:Full|took-rev-comp:False|\n" +
		"NNAAAACCCCGGGGTTTTNN\n"

	fullFusion = ">chr1:GENE1:100:+|chr2:GENE2,GENE3:500:-|fusion\n" +
		"NNAAAACCCCGGGGTTTTNN\n"

	fullSummary = "Junction with bin pair [chr1:5_chr2:10_+] with [2] reads mapped\n" +
		"Linear Upstream on the + strand and downstream on the -\n" +
		"5' map position [100-108]\n" +
		"3' map position [500-508]\n" +
		"Consensus with score [12.5] and upstream splice site [108]:\n" +
		"AAAACCCCGGGGTTTT\n" +
		"AAAACCCC\n" +
		"        GGGGTTTT\n" +
		"Upstream genes [GENE1]\n" +
		"Downstream genes [GENE2,GENE3]\n"

	absentFASTA = ">|None|None|None|strand1:None|boundary_dist1:-1|at_boundary1:False|_" +
		"|None|None|None|strand2:None|boundary_dist2:-1|at_boundary2:False|_" +
		"|splice:8|score:12.5|num:2|splice:None|\n" +
		"NNAAAACCCCGGGGTTTTNN\n"

	absentVerbose = ">|chromosome1:None|genes1:None|start1:None|stop1:None|strand1:None|boundary_dist1:-1|at_boundary1:False|_" +
		"|chromosome2:None|genes2:None|start2:None|stop2:None|strand2:None|boundary_dist2:-1|at_boundary2:False|_" +
		"|splice:8|span:-1|score:12.5|fusion:False|num:2|splice-gap:-1|splice-type:None|took-rev-comp:True|\n" +
		"NNAAAACCCCGGGGTTTTNN\n"

	absentFusion = ">None:None:None:None|None:None:None:None|no_fusion\n" +
		"NNAAAACCCCGGGGTTTTNN\n"

	absentSummary = "Junction with bin pair [chr1:5_chr2:10_+] with [2] reads mapped\n" +
		"Non-Linear Upstream on the None strand and downstream on the None\n" +
		"5' map position [None]\n" +
		"3' map position [None]\n" +
		"Consensus with score [12.5] and upstream splice site [None]:\n" +
		"AAAACCCCGGGGTTTT\n" +
		"\n" +
		"\n" +
		"Upstream genes [None]\n" +
		"Downstream genes [None]\n"
)

func absentJunction(c *check.C) *Junction {
	j, err := testCandidate(c, "AAAACCCCGGGGTTTT", testKey, true).Resolve(nil, nil)
	c.Assert(err, check.Equals, nil)
	return j
}

func (s *S) TestFormats(c *check.C) {
	full := fullJunction(c)
	c.Check(full.FASTA(""), check.Equals, fullFASTA)
	c.Check(full.FASTA("7"), check.Equals, fullLabelledFASTA)
	c.Check(full.VerboseFASTA(), check.Equals, fullVerbose)
	c.Check(full.FusionFASTA(), check.Equals, fullFusion)
	c.Check(full.String(), check.Equals, fullSummary)

	absent := absentJunction(c)
	c.Check(absent.FASTA(""), check.Equals, absentFASTA)
	c.Check(absent.VerboseFASTA(), check.Equals, absentVerbose)
	c.Check(absent.FusionFASTA(), check.Equals, absentFusion)
	c.Check(absent.String(), check.Equals, absentSummary)
}

func (s *S) TestWriter(c *check.C) {
	full := fullJunction(c)
	absent := absentJunction(c)
	for _, test := range []struct {
		format Format
		label  string
		want   string
	}{
		{format: FASTA, want: fullFASTA + absentFASTA},
		{format: FASTA, label: "7", want: fullLabelledFASTA + absentFASTA},
		{format: VerboseFASTA, label: "ignored", want: fullVerbose + absentVerbose},
		{format: FusionFASTA, want: fullFusion + absentFusion},
		{format: Summary, want: fullSummary + "\n" + absentSummary + "\n"},
	} {
		var buf bytes.Buffer
		w := NewWriter(&buf, test.format)
		c.Check(w.WriteLabel(full, test.label), check.Equals, nil)
		c.Check(w.Write(absent), check.Equals, nil)
		c.Check(buf.Len(), check.Equals, 0)
		c.Check(w.Flush(), check.Equals, nil)
		c.Check(buf.String(), check.Equals, test.want, check.Commentf("format %v", test.format))
	}
}

func (s *S) TestParseFormat(c *check.C) {
	for name, want := range map[string]Format{
		"fasta":   FASTA,
		"verbose": VerboseFASTA,
		"fusion":  FusionFASTA,
		"summary": Summary,
	} {
		got, err := ParseFormat(name)
		c.Check(err, check.Equals, nil)
		c.Check(got, check.Equals, want)
		c.Check(got.String(), check.Equals, name)
	}
	_, err := ParseFormat("FASTA")
	c.Check(err, check.ErrorMatches, `junction: unknown format "FASTA"`)
}
