// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bundle reads junction bundles from SAM and BAM streams.
//
// A junction bundle holds, for each candidate junction, an unmapped
// consensus record, the supporting read pairs and up to two anchor
// alignments. Records are associated with a junction and given a role
// by user auxiliary tags:
//
//  XJ:Z  junction identifier (all records)
//  XR:A  role: C consensus, U upstream anchor, D downstream anchor, S support
//  XQ:Z  consensus score (consensus records)
//  XV:A  Y if the consensus was built from reverse complemented reads
//  XG:Z  comma separated gene names (anchor records)
//  XB:i  start of the nearest annotated exon (anchor records)
//  XE:i  stop of the nearest annotated exon (anchor records)
//
// Support records are paired by read name in order of appearance, the
// first record of a pair being the five prime alignment.
package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/biogo/hts/sam"
	"golang.org/x/sync/errgroup"

	"github.com/biogo/junction"
	"github.com/biogo/junction/config"
)

// Bundle auxiliary tags.
var (
	JunctionTag  = sam.NewTag("XJ")
	RoleTag      = sam.NewTag("XR")
	ScoreTag     = sam.NewTag("XQ")
	ReversedTag  = sam.NewTag("XV")
	GenesTag     = sam.NewTag("XG")
	ExonStartTag = sam.NewTag("XB")
	ExonStopTag  = sam.NewTag("XE")
)

// Record roles held in the RoleTag field.
const (
	Consensus  = 'C'
	Upstream   = 'U'
	Downstream = 'D'
	Support    = 'S'
)

var (
	ErrNoConsensus = errors.New("bundle: junction has no consensus record")
	ErrUnpaired    = errors.New("bundle: unpaired support record")
)

// Reader reads junctions from a junction bundle.
type Reader struct {
	r   sam.RecordReader
	cfg config.Config
}

// NewReader returns a Reader reading bundle records from r. The
// junctions returned share the run constants in cfg.
func NewReader(r sam.RecordReader, cfg config.Config) *Reader {
	return &Reader{r: r, cfg: cfg}
}

// group holds the records of a single junction.
type group struct {
	id        string
	consensus *sam.Record
	up, down  *sam.Record
	support   []junction.Pair
	pending   map[string]*sam.Record
}

// ReadAll reads the complete bundle and returns the resolved junctions in
// order of first appearance of their identifiers. Junctions are resolved
// using at most threads concurrent goroutines; threads less than one
// places no limit.
func (r *Reader) ReadAll(ctx context.Context, threads int) ([]*junction.Junction, error) {
	groups, err := r.groups()
	if err != nil {
		return nil, err
	}

	js := make([]*junction.Junction, len(groups))
	g, ctx := errgroup.WithContext(ctx)
	if threads > 0 {
		g.SetLimit(threads)
	}
	for i, grp := range groups {
		i, grp := i, grp
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			j, err := r.resolve(grp)
			if err != nil {
				return fmt.Errorf("bundle: junction %q: %w", grp.id, err)
			}
			js[i] = j
			return nil
		})
	}
	err = g.Wait()
	if err != nil {
		return nil, err
	}
	return js, nil
}

func (r *Reader) groups() ([]*group, error) {
	var groups []*group
	byID := make(map[string]*group)
	for {
		rec, err := r.r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		id, ok := stringTag(rec, JunctionTag)
		if !ok {
			return nil, fmt.Errorf("bundle: record %q has no %v tag", rec.Name, JunctionTag)
		}
		grp, ok := byID[id]
		if !ok {
			grp = &group{id: id, pending: make(map[string]*sam.Record)}
			byID[id] = grp
			groups = append(groups, grp)
		}
		err = r.add(grp, rec)
		if err != nil {
			return nil, fmt.Errorf("bundle: record %q: %w", rec.Name, err)
		}
	}
	for _, grp := range groups {
		for name := range grp.pending {
			return nil, fmt.Errorf("%w %q in junction %q", ErrUnpaired, name, grp.id)
		}
	}
	return groups, nil
}

func (r *Reader) add(grp *group, rec *sam.Record) error {
	aux := rec.AuxFields.Get(RoleTag)
	if aux == nil {
		return fmt.Errorf("no %v tag", RoleTag)
	}
	role, ok := aux.Value().(byte)
	if !ok {
		return fmt.Errorf("invalid %v tag: %v", RoleTag, aux)
	}
	switch role {
	case Consensus:
		return setOnce(&grp.consensus, rec, "consensus")
	case Upstream:
		return setOnce(&grp.up, rec, "upstream anchor")
	case Downstream:
		return setOnce(&grp.down, rec, "downstream anchor")
	case Support:
		five, ok := grp.pending[rec.Name]
		if !ok {
			grp.pending[rec.Name] = rec
			return nil
		}
		delete(grp.pending, rec.Name)
		p, err := junction.NewPair(five, rec, r.cfg.BinSize)
		if err != nil {
			return err
		}
		grp.support = append(grp.support, p)
		return nil
	default:
		return fmt.Errorf("unknown role %q", role)
	}
}

func setOnce(dst **sam.Record, rec *sam.Record, what string) error {
	if *dst != nil {
		return fmt.Errorf("duplicate %s", what)
	}
	*dst = rec
	return nil
}

func (r *Reader) resolve(grp *group) (*junction.Junction, error) {
	if grp.consensus == nil {
		return nil, ErrNoConsensus
	}
	if grp.consensus.Seq.Length == 0 {
		return nil, errors.New("empty consensus sequence")
	}
	score, err := scoreOf(grp.consensus)
	if err != nil {
		return nil, err
	}
	var reversed bool
	if aux := grp.consensus.AuxFields.Get(ReversedTag); aux != nil {
		reversed = aux.Value() == byte('Y')
	}
	cand, err := junction.New(string(grp.consensus.Seq.Expand()), score, grp.support, reversed, r.cfg)
	if err != nil {
		return nil, err
	}
	up, err := anchor(grp.up)
	if err != nil {
		return nil, err
	}
	down, err := anchor(grp.down)
	if err != nil {
		return nil, err
	}
	return cand.Resolve(up, down)
}

func scoreOf(rec *sam.Record) (float64, error) {
	aux := rec.AuxFields.Get(ScoreTag)
	if aux == nil {
		return 0, fmt.Errorf("consensus has no %v tag", ScoreTag)
	}
	switch v := aux.Value().(type) {
	case string:
		return strconv.ParseFloat(v, 64)
	case float32:
		return float64(v), nil
	}
	if i, ok := intValue(aux); ok {
		return float64(i), nil
	}
	return 0, fmt.Errorf("invalid %v tag: %v", ScoreTag, aux)
}

// anchor returns the annotated anchor for rec, or nil if rec is nil.
func anchor(rec *sam.Record) (*junction.Anchor, error) {
	if rec == nil {
		return nil, nil
	}
	var genes []string
	if s, ok := stringTag(rec, GenesTag); ok {
		for _, g := range strings.Split(s, ",") {
			if g != "" {
				genes = append(genes, g)
			}
		}
	}
	var exon *junction.Boundary
	start, sok := intTag(rec, ExonStartTag)
	stop, eok := intTag(rec, ExonStopTag)
	switch {
	case sok && eok:
		exon = &junction.Boundary{Start: start, Stop: stop}
	case sok != eok:
		return nil, fmt.Errorf("anchor %q has incomplete exon annotation", rec.Name)
	}
	return junction.FromRecord(rec, genes, exon)
}

func stringTag(rec *sam.Record, tag sam.Tag) (string, bool) {
	aux := rec.AuxFields.Get(tag)
	if aux == nil {
		return "", false
	}
	s, ok := aux.Value().(string)
	return s, ok
}

func intTag(rec *sam.Record, tag sam.Tag) (int, bool) {
	aux := rec.AuxFields.Get(tag)
	if aux == nil {
		return 0, false
	}
	return intValue(aux)
}

func intValue(aux sam.Aux) (int, bool) {
	if aux.Kind() != 'i' {
		return 0, false
	}
	switch v := aux.Value().(type) {
	case int8:
		return int(v), true
	case uint8:
		return int(v), true
	case int16:
		return int(v), true
	case uint16:
		return int(v), true
	case int32:
		return int(v), true
	case uint32:
		return int(v), true
	}
	return 0, false
}
