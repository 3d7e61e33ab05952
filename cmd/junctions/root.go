// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// newRootCmd returns the junctions command tree. Run constants are
// collected in v from the configuration file, JUNCTIONS_ prefixed
// environment variables and command line flags.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var (
		cfgPath  string
		logLevel string
	)
	root := &cobra.Command{
		Use:   "junctions",
		Short: "Classify and format candidate splice and fusion junctions",
		Long: `Classify and format candidate splice and fusion junctions

"junctions" reads a junction bundle, a SAM or BAM file holding the consensus
sequence, supporting read pairs and anchor alignments of each candidate
junction, and writes each junction with its splice geometry, exon boundary
distances and fusion classification.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, ok := logLevels[strings.ToLower(logLevel)]
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}
			log.SetOutput(cmd.ErrOrStderr())
			log.SetHeader("${time_rfc3339} ${level}")
			log.SetLevel(lvl)

			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
				err := v.ReadInConfig()
				if err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
				log.Debugf("read run constants from %s", v.ConfigFileUsed())
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to a run constants file (YAML, JSON or TOML)")
	pf.StringVar(&logLevel, "log-level", "info", "logging level: debug, info, warn, error or off")
	pf.Int("splice-flank-len", 0, "half-width of the padded window around each splice site")
	pf.Int("bin-size", 0, "genomic bin width used to key supporting read pairs")
	pf.Int("boundary-radius", 3, "maximum distance from an exon boundary for an anchor to be at the boundary")
	pf.Float64("span-cutoff", 1e6, "genomic span above which colinear anchors are a fusion")

	// Bind the run constants to viper using the keys of the config file.
	for key, flag := range map[string]string{
		"splice_flank_len": "splice-flank-len",
		"bin_size":         "bin-size",
		"boundary_radius":  "boundary-radius",
		"span_cutoff":      "span-cutoff",
	} {
		err := v.BindPFlag(key, pf.Lookup(flag))
		if err != nil {
			panic(err)
		}
	}
	v.SetEnvPrefix("junctions")
	v.AutomaticEnv()

	root.AddCommand(newFastaCmd(v), newSummaryCmd(v))
	return root
}
