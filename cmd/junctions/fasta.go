// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"strconv"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biogo/junction"
	"github.com/biogo/junction/config"
)

// options are the output settings shared by the fasta and summary commands.
type options struct {
	format      string
	out         string
	compress    string
	fusionsOnly bool
	label       bool
	sort        bool
	index       bool
	threads     int
}

func (o *options) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.out, "out", "o", "", "output path (default stdout)")
	f.StringVar(&o.compress, "compress", "none", "output compression: none, bgzf or xz")
	f.BoolVar(&o.fusionsOnly, "fusions-only", false, "only write junctions classified as fusions")
	f.BoolVar(&o.sort, "sort", false, "write junctions in bin pair order")
	f.IntVarP(&o.threads, "threads", "t", 0, "number of concurrent readers (0 for no limit)")
}

func newFastaCmd(v *viper.Viper) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "fasta <bundle>",
		Short: "Write junctions as FASTA records with padded consensus sequences",
		Long: `Write junctions as FASTA records with padded consensus sequences

The consensus of each junction is padded with N to twice the splice flank
length, centred on the splice site. Header layouts are selected by --format:

  fasta    compact header with anchor loci, boundary distances and splice type
  verbose  labelled header with all classification fields
  fusion   header consumed by fusion validation tools`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args[0], o)
		},
	}
	o.addFlags(cmd)
	cmd.Flags().StringVarP(&o.format, "format", "f", "fasta", "FASTA header layout: fasta, verbose or fusion")
	cmd.Flags().BoolVar(&o.label, "label", false, "append a junction index to compact headers")
	cmd.Flags().BoolVar(&o.index, "index", false, "write a FASTA index next to the output file")
	return cmd
}

func newSummaryCmd(v *viper.Viper) *cobra.Command {
	o := options{format: "summary"}
	cmd := &cobra.Command{
		Use:   "summary <bundle>",
		Short: "Write human readable junction summaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args[0], o)
		},
	}
	o.addFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper, path string, o options) error {
	format, err := junction.ParseFormat(o.format)
	if err != nil {
		return err
	}
	if o.index {
		switch {
		case o.out == "" || o.out == "-":
			return errors.New("--index requires an output file")
		case o.compress != "none":
			return errors.New("--index requires uncompressed output")
		}
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	log.Debugf("run constants: %+v", cfg)

	js, err := readBundle(cmd.Context(), path, cfg, o.threads)
	if err != nil {
		return err
	}
	log.Infof("read %d junctions from %s", len(js), path)

	if o.fusionsOnly {
		fusions := js[:0]
		for _, j := range js {
			if j.Fusion() {
				fusions = append(fusions, j)
			}
		}
		js = fusions
	}
	if o.sort {
		junction.Sort(js)
	}

	out, err := create(o.out, o.compress, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	w := junction.NewWriter(out, format)
	for i, j := range js {
		var label string
		if o.label {
			label = strconv.Itoa(i)
		}
		err = w.WriteLabel(j, label)
		if err != nil {
			out.Close()
			return err
		}
	}
	err = w.Flush()
	if err != nil {
		out.Close()
		return err
	}
	err = out.Close()
	if err != nil {
		return err
	}
	log.Infof("wrote %d junctions", len(js))

	if o.index {
		err = writeIndex(o.out)
		if err != nil {
			return err
		}
		log.Infof("wrote index %s.fai", o.out)
	}
	return nil
}
