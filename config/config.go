// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the run-wide constants shared by all junctions
// of a fusion calling run.
package config

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config is the set of run-wide constants used when classifying and
// formatting junctions.
type Config struct {
	// SpliceFlankLen is the half-width of the padded
	// window written around each splice site.
	SpliceFlankLen int `mapstructure:"splice_flank_len"`

	// BinSize is the genomic bin width used to build
	// bin pair keys for supporting reads.
	BinSize int `mapstructure:"bin_size"`

	// BoundaryRadius is the maximum distance from an exon
	// boundary for an anchor to be considered at the boundary.
	BoundaryRadius int `mapstructure:"boundary_radius"`

	// SpanCutoff is the genomic span above which a pair of
	// anchors on the same chromosome and strand is a fusion.
	SpanCutoff float64 `mapstructure:"span_cutoff"`
}

// Default values for the classification constants.
const (
	DefaultBoundaryRadius = 3
	DefaultSpanCutoff     = 1e6
)

// Default returns a Config with the default classification constants.
// SpliceFlankLen and BinSize have no sensible default and are left zero.
func Default() Config {
	return Config{
		BoundaryRadius: DefaultBoundaryRadius,
		SpanCutoff:     DefaultSpanCutoff,
	}
}

// FromMap returns a Config decoded from a constants mapping. Values
// may be given as strings or numbers. Keys not described by Config are
// ignored and missing keys take their Default value.
func FromMap(m map[string]interface{}) (Config, error) {
	c := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &c,
	})
	if err != nil {
		return Config{}, err
	}
	err = dec.Decode(m)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// FromViper returns a Config decoded from the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	return FromMap(v.AllSettings())
}

// Validate returns an error if c cannot be used for junction formatting.
func (c Config) Validate() error {
	switch {
	case c.SpliceFlankLen <= 0:
		return errors.New("config: splice_flank_len must be positive")
	case c.BinSize <= 0:
		return errors.New("config: bin_size must be positive")
	case c.BoundaryRadius < 0:
		return errors.New("config: negative boundary_radius")
	case c.SpanCutoff < 0:
		return errors.New("config: negative span_cutoff")
	}
	return nil
}
