// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package junction classifies and formats candidate splice and fusion
// junctions assembled from short read alignments.
//
// A junction is built in two phases. New returns an immutable Candidate
// holding the consensus sequence and its supporting reads. Resolving the
// Candidate against the upstream and downstream anchor alignments gives
// a Junction, all of whose methods are pure queries.
package junction

import (
	"errors"
	"fmt"

	"github.com/biogo/junction/config"
)

var (
	// ErrNoSupport is returned by New when no supporting pairs are given.
	ErrNoSupport = errors.New("junction: no supporting read pairs")

	// ErrNotInConsensus is returned by Resolve when an anchor sequence
	// is found in neither orientation in the consensus.
	ErrNotInConsensus = errors.New("junction: anchor sequence not in consensus")
)

// Candidate is an unresolved junction.
type Candidate struct {
	consensus string
	score     float64
	group     []Pair
	reversed  bool
	cfg       config.Config
	binPair   BinPair
}

// New returns a Candidate for the given consensus sequence and score
// supported by group. The bin pair of the candidate is taken from the
// first element of group. The reversed flag records whether the
// consensus was assembled from reverse complemented reads.
func New(consensus string, score float64, group []Pair, reversed bool, cfg config.Config) (*Candidate, error) {
	if len(group) == 0 {
		return nil, ErrNoSupport
	}
	return &Candidate{
		consensus: consensus,
		score:     score,
		group:     group,
		reversed:  reversed,
		cfg:       cfg,
		binPair:   group[0].Key,
	}, nil
}

// Consensus returns the consensus sequence.
func (c *Candidate) Consensus() string { return c.consensus }

// Score returns the consensus score.
func (c *Candidate) Score() float64 { return c.score }

// Support returns the supporting read pairs. The returned slice must
// not be altered.
func (c *Candidate) Support() []Pair { return c.group }

// Reversed returns whether the consensus was built from reverse
// complemented reads.
func (c *Candidate) Reversed() bool { return c.reversed }

// BinPair returns the bin pair identity of the candidate.
func (c *Candidate) BinPair() BinPair { return c.binPair }

// Config returns the run constants used by the candidate.
func (c *Candidate) Config() config.Config { return c.cfg }

// Resolve returns a Junction anchored by up and down. A nil anchor is
// absent. When both anchors are present, each anchor sequence must occur
// in the consensus in the forward or reverse complement orientation;
// the forward orientation and the first occurrence are preferred.
func (c *Candidate) Resolve(up, down *Anchor) (*Junction, error) {
	j := &Junction{Candidate: c, up: up, down: down}
	if up == nil || down == nil {
		return j, nil
	}
	start, ok := locate(c.consensus, up.Seq)
	if !ok {
		return nil, fmt.Errorf("%w: upstream %s:%d-%d", ErrNotInConsensus, up.Chrom, up.Start, up.Stop)
	}
	j.upEnd = start + len(up.Seq)
	j.downStart, ok = locate(c.consensus, down.Seq)
	if !ok {
		return nil, fmt.Errorf("%w: downstream %s:%d-%d", ErrNotInConsensus, down.Chrom, down.Start, down.Stop)
	}
	return j, nil
}

// Junction is a Candidate resolved against its anchors.
type Junction struct {
	*Candidate

	up, down *Anchor

	// upEnd and downStart are the consensus positions
	// immediately after the upstream anchor and at the
	// start of the downstream anchor. They are only
	// valid when both anchors are present.
	upEnd, downStart int
}

// Anchor returns the anchor for stream s, or nil if it is absent.
func (j *Junction) Anchor(s Stream) *Anchor {
	switch s {
	case Upstream:
		return j.up
	case Downstream:
		return j.down
	default:
		panic(fmt.Sprintf("junction: invalid stream %d", s))
	}
}

func (j *Junction) resolved() bool { return j.up != nil && j.down != nil }
